package db

import (
	"bytes"
	"encoding/csv"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scaledrill/scaledrill/catalog"
	"github.com/scaledrill/scaledrill/model"
	"github.com/scaledrill/scaledrill/quiz"
)

func finishedSession(t *testing.T) *quiz.Session {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	mgr := catalog.NewManagerWithRand(rng)
	catalogue := "Name;Difficulty;Degrees\nMajor;Easy;1,2,3,4,5,6,7\nNatural Minor;Easy;1,2,b3,4,5,b6,b7\n"
	assert.NoError(t, mgr.Load(strings.NewReader(catalogue)))

	s, err := quiz.NewSession(mgr, 3, model.Easy, rng)
	assert.NoError(t, err)

	for !s.Done() {
		q, err := s.Current()
		assert.NoError(t, err)
		choice := q.CorrectIndex
		if s.Index() == 0 {
			choice = (q.CorrectIndex + 1) % len(q.Options)
		}
		_, err = s.Answer(choice)
		assert.NoError(t, err)
	}
	return s
}

func TestWriteResultsCSV(t *testing.T) {
	s := finishedSession(t)

	var buf bytes.Buffer
	assert.NoError(t, WriteResultsCSV(&buf, s))

	reader := csv.NewReader(&buf)
	reader.Comma = ';'
	records, err := reader.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	results := s.Results()
	for i, record := range records {
		assert.Len(t, record, 3)
		assert.Equal(t, results[i].Label, record[0])
		assert.Equal(t, "0", record[1]) // Easy
		want := "CORRECT"
		if !results[i].Correct {
			want = "INCORRECT"
		}
		assert.Equal(t, want, record[2])
	}

	// the first question was answered wrong on purpose
	assert.Equal(t, "INCORRECT", records[0][2])
}

func TestSaveResultsFile(t *testing.T) {
	s := finishedSession(t)
	path := t.TempDir() + "/results.csv"

	assert.NoError(t, SaveResultsFile(path, s))

	var buf bytes.Buffer
	assert.NoError(t, WriteResultsCSV(&buf, s))

	written, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, buf.String(), string(written))
}
