package quiz

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/scaledrill/scaledrill/catalog"
	"github.com/scaledrill/scaledrill/model"
)

const testCatalogue = `Name;Difficulty;Degrees
Major;Easy;1,2,3,4,5,6,7
Natural Minor;Easy;1,2,b3,4,5,b6,b7
Dorian;Medium;1,2,b3,4,5,6,b7
Mixolydian;Medium;1,2,3,4,5,6,b7
Locrian;Hard;1,b2,b3,4,b5,b6,b7
`

func newTestSession(t *testing.T, n int, difficulty model.Difficulty) *Session {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	mgr := catalog.NewManagerWithRand(rng)
	assert.NoError(t, mgr.Load(strings.NewReader(testCatalogue)))

	s, err := NewSession(mgr, n, difficulty, rng)
	assert.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, 5, model.Medium)

	assert := assert.New(t)
	assert.Equal(5, s.Len())
	assert.Equal(0, s.Index())
	assert.False(s.Done())
	assert.NotEqual(uuid.Nil, s.ID())
}

func TestNewSessionOnEmptyCatalogue(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mgr := catalog.NewManagerWithRand(rng)

	_, err := NewSession(mgr, 3, model.Easy, rng)
	assert.ErrorIs(t, err, catalog.ErrNoScalesLoaded)
}

func TestQuestionOptions(t *testing.T) {
	s := newTestSession(t, 10, model.Hard)

	for !s.Done() {
		q, err := s.Current()
		assert.NoError(t, err)

		assert.Len(t, q.Options, NumChoices)
		assert.Equal(t, q.Scale.Name, q.Options[q.CorrectIndex])

		// options never repeat
		seen := make(map[string]bool)
		for _, o := range q.Options {
			assert.False(t, seen[o], "duplicate option %q", o)
			seen[o] = true
		}

		_, err = s.Answer(q.CorrectIndex)
		assert.NoError(t, err)
	}
}

func TestOptionsShrinkWithSmallCatalogue(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mgr := catalog.NewManagerWithRand(rng)
	assert.NoError(t, mgr.Load(strings.NewReader("Name;Difficulty;Degrees\nMajor;Easy;1,2,3\nMinor;Easy;1,2,b3\n")))

	s, err := NewSession(mgr, 2, model.Easy, rng)
	assert.NoError(t, err)

	q, err := s.Current()
	assert.NoError(t, err)
	// only one decoy exists, so only two options
	assert.Len(t, q.Options, 2)
}

func TestAnswerAdvancesAndScores(t *testing.T) {
	s := newTestSession(t, 4, model.Easy)
	assert := assert.New(t)

	q, err := s.Current()
	assert.NoError(err)
	right, err := s.Answer(q.CorrectIndex)
	assert.NoError(err)
	assert.True(right)
	assert.Equal(1, s.Index())

	q, err = s.Current()
	assert.NoError(err)
	wrongChoice := (q.CorrectIndex + 1) % len(q.Options)
	right, err = s.Answer(wrongChoice)
	assert.NoError(err)
	assert.False(right)

	q, _ = s.Current()
	s.Answer(q.CorrectIndex)
	q, _ = s.Current()
	s.Answer(q.CorrectIndex)

	assert.True(s.Done())
	assert.Equal(75, s.Score())
}

func TestAnswerAfterDone(t *testing.T) {
	s := newTestSession(t, 1, model.Easy)

	q, _ := s.Current()
	_, err := s.Answer(q.CorrectIndex)
	assert.NoError(t, err)

	_, err = s.Current()
	assert.ErrorIs(t, err, ErrNoQuestionsLeft)
	_, err = s.Answer(0)
	assert.ErrorIs(t, err, ErrNoQuestionsLeft)
}

func TestResults(t *testing.T) {
	s := newTestSession(t, 3, model.Easy)
	assert := assert.New(t)

	var expected []bool
	for !s.Done() {
		q, err := s.Current()
		assert.NoError(err)

		choice := q.CorrectIndex
		if s.Index() == 1 {
			choice = (q.CorrectIndex + 1) % len(q.Options)
		}
		right, err := s.Answer(choice)
		assert.NoError(err)
		expected = append(expected, right)
	}

	results := s.Results()
	assert.Len(results, 3)
	for i, r := range results {
		assert.Equal(expected[i], r.Correct)
		assert.Equal(model.Easy, r.Difficulty)
		// labels read "<root> <scale>", e.g. "C Major"
		assert.Regexp(`^[A-G][b#]? .+`, r.Label)
	}
}

func TestScoreOnEmptySession(t *testing.T) {
	s := &Session{}
	assert.Equal(t, 0, s.Score())
	assert.True(t, s.Done())
}
