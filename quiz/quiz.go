// Package quiz turns generated scales into a multiple-choice session: each
// question shows a realised scale and asks which catalogue entry it is.
package quiz

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/scaledrill/scaledrill/catalog"
	"github.com/scaledrill/scaledrill/model"
	"github.com/scaledrill/scaledrill/util"
)

// NumChoices is how many options each question offers, correct one included.
const NumChoices = 4

var ErrNoQuestionsLeft = errors.New("no questions left in the session")

// Question pairs a generated scale with its shuffled answer options.
type Question struct {
	Scale        catalog.Generated
	Options      []string
	CorrectIndex int
}

// Result is one row of a finished session's outcome.
type Result struct {
	Label      string
	Difficulty model.Difficulty
	Correct    bool
}

// Session walks through a fixed list of questions, recording answers and a
// running score.
type Session struct {
	id        uuid.UUID
	questions []Question
	index     int
	answered  []bool
	correct   int
}

// NewSession generates n questions at the given difficulty. Decoy options
// are drawn from the names of the other loaded scales.
func NewSession(mgr *catalog.Manager, n int, difficulty model.Difficulty, rng *rand.Rand) (*Session, error) {
	generated, err := mgr.Generate(n, difficulty)
	if err != nil {
		return nil, errors.Wrap(err, "generating session scales")
	}

	allNames := mgr.Names()
	questions := make([]Question, 0, len(generated))
	for _, g := range generated {
		questions = append(questions, buildQuestion(g, allNames, rng))
	}

	return &Session{
		id:        uuid.New(),
		questions: questions,
	}, nil
}

func buildQuestion(g catalog.Generated, allNames []string, rng *rand.Rand) Question {
	// dedupe decoy names; the catalogue may list the same name at several
	// difficulties
	pool := make(map[string]struct{})
	for _, name := range allNames {
		if name != g.Name {
			pool[name] = struct{}{}
		}
	}
	decoys := util.GetKeys(pool)
	sort.Strings(decoys)
	rng.Shuffle(len(decoys), func(i, j int) {
		decoys[i], decoys[j] = decoys[j], decoys[i]
	})

	options := []string{g.Name}
	options = append(options, decoys[:util.Min(NumChoices-1, len(decoys))]...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correct := 0
	for i, o := range options {
		if o == g.Name {
			correct = i
			break
		}
	}

	return Question{Scale: g, Options: options, CorrectIndex: correct}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Len() int {
	return len(s.questions)
}

// Index returns the 0-based position of the current question.
func (s *Session) Index() int {
	return s.index
}

func (s *Session) Done() bool {
	return s.index >= len(s.questions)
}

// Current returns the question waiting for an answer.
func (s *Session) Current() (*Question, error) {
	if s.Done() {
		return nil, ErrNoQuestionsLeft
	}
	return &s.questions[s.index], nil
}

// Answer records a 0-based choice for the current question, advances to the
// next one and reports whether the choice was right.
func (s *Session) Answer(choice int) (bool, error) {
	if s.Done() {
		return false, ErrNoQuestionsLeft
	}
	right := choice == s.questions[s.index].CorrectIndex
	s.answered = append(s.answered, right)
	if right {
		s.correct++
	}
	s.index++
	return right, nil
}

// Score returns the percentage of correctly answered questions.
func (s *Session) Score() int {
	if len(s.questions) == 0 {
		return 0
	}
	return int(float64(s.correct) / float64(len(s.questions)) * 100)
}

// Results lists the outcome of every answered question, labelled by root
// name plus scale name ("C Major").
func (s *Session) Results() []Result {
	out := make([]Result, 0, len(s.answered))
	for i, right := range s.answered {
		q := s.questions[i]
		label := q.Scale.Name
		if rootName, err := q.Scale.Scale.RootName(); err == nil {
			label = rootName + " " + q.Scale.Name
		}
		out = append(out, Result{
			Label:      label,
			Difficulty: q.Scale.Difficulty,
			Correct:    right,
		})
	}
	return out
}
