package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scaledrill/scaledrill/catalog"
	"github.com/scaledrill/scaledrill/constants"
	"github.com/scaledrill/scaledrill/model"
	"github.com/scaledrill/scaledrill/util"
)

var generateCount int
var generateInput string
var generateDifficulty int

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 5, "number of scales to generate")
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", constants.GetScalesPath(), "path to the scales file")
	generateCmd.Flags().IntVarP(&generateDifficulty, "difficulty", "d", 1, "difficulty (0 = Easy, 1 = Medium, 2 = Hard)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Prints a batch of realised scales",
	Long:  `Prints a batch of realised scales`,
	Run: func(cmd *cobra.Command, args []string) {
		generate()
	},
}

func generate() {
	difficulty := model.Difficulty(util.Min(generateDifficulty, int(model.Hard)))

	mgr := catalog.NewManager()
	if err := mgr.LoadFile(generateInput); err != nil {
		log.WithError(err).Fatal("loading scales")
	}

	batch, err := mgr.Generate(generateCount, difficulty)
	if err != nil {
		log.WithError(err).Fatal("generating scales")
	}

	for _, g := range batch {
		rootName, err := g.Scale.RootName()
		if err != nil {
			log.WithError(err).Fatal("naming root")
		}
		fmt.Printf("%s %s (%s): %s\n", rootName, g.Name, g.Difficulty, g.Scale)
	}
}
