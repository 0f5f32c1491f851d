package model

import "github.com/pkg/errors"

// Difficulty orders catalogue entries from Easy to Hard. Sampling "at" a
// difficulty means sampling from every level up to and including it.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

const NumDifficulties = 3

var ErrUnknownDifficulty = errors.New("unknown difficulty label")

var difficultyLabels = [NumDifficulties]string{"Easy", "Medium", "Hard"}

// ParseDifficulty matches the exact labels used in the catalogue file.
func ParseDifficulty(label string) (Difficulty, error) {
	for i, l := range difficultyLabels {
		if label == l {
			return Difficulty(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownDifficulty, "%q", label)
}

func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyLabels) {
		return "Unknown"
	}
	return difficultyLabels[d]
}
