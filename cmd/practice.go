package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scaledrill/scaledrill/catalog"
	"github.com/scaledrill/scaledrill/constants"
	"github.com/scaledrill/scaledrill/db"
	"github.com/scaledrill/scaledrill/model"
	"github.com/scaledrill/scaledrill/quiz"
	"github.com/scaledrill/scaledrill/util"
)

var practiceQuestions int
var practiceInput string
var practiceOutput string
var practiceDifficulty int
var practiceDynamo bool

func init() {
	practiceCmd.Flags().IntVarP(&practiceQuestions, "questions", "n", 5, "number of questions in this session")
	practiceCmd.Flags().StringVarP(&practiceInput, "input", "i", constants.GetScalesPath(), "path to the scales file")
	practiceCmd.Flags().StringVarP(&practiceOutput, "output", "o", "./results.csv", "path to the results file")
	practiceCmd.Flags().IntVarP(&practiceDifficulty, "difficulty", "d", 1, "difficulty (0 = Easy, 1 = Medium, 2 = Hard)")
	practiceCmd.Flags().BoolVar(&practiceDynamo, "dynamo", false, "also store results in DynamoDB")
	rootCmd.AddCommand(practiceCmd)
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Runs an interactive quiz session",
	Long:  `Runs an interactive quiz session`,
	Run: func(cmd *cobra.Command, args []string) {
		practice()
	},
}

func practice() {
	difficulty := model.Difficulty(util.Min(practiceDifficulty, int(model.Hard)))

	mgr := catalog.NewManager()
	if err := mgr.LoadFile(practiceInput); err != nil {
		log.WithError(err).Fatal("loading scales")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session, err := quiz.NewSession(mgr, practiceQuestions, difficulty, rng)
	if err != nil {
		log.WithError(err).Fatal("generating session")
	}

	reader := bufio.NewReader(os.Stdin)
	for !session.Done() {
		q, err := session.Current()
		if err != nil {
			log.WithError(err).Fatal("fetching question")
		}

		clearScreen()
		fmt.Printf("On question %d/%d\n", session.Index()+1, session.Len())
		fmt.Println(q.Scale.Scale.String())
		for i, option := range q.Options {
			fmt.Printf("%d: %s\n", i+1, option)
		}

		if _, err := session.Answer(readChoice(reader, len(q.Options))); err != nil {
			log.WithError(err).Fatal("recording answer")
		}
	}

	fmt.Printf("Session over, you scored %d%%\n", session.Score())

	if err := db.SaveResultsFile(practiceOutput, session); err != nil {
		log.WithError(err).Fatal("saving results")
	}
	if practiceDynamo {
		if err := db.PutSessionResults(session); err != nil {
			log.WithError(err).Error("storing results in DynamoDB")
		}
	}
}

// readChoice keeps prompting until it gets a number between 1 and max, then
// returns it 0-based.
func readChoice(reader *bufio.Reader, max int) int {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			log.WithError(err).Fatal("reading answer")
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= max {
			return choice - 1
		}
		fmt.Printf("Please answer with a number between 1 and %d\n", max)
	}
}

func clearScreen() {
	fmt.Print(strings.Repeat("\n", 20))
}
