package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMajorTemplate(t *testing.T) {
	s, err := Parse("1,2,3,4,5,6,7")
	assert.NoError(t, err)
	assert.Len(t, s, 7)
	for i, d := range s {
		assert.Equal(t, Degree{Number: i + 1}, d)
	}
}

func TestParseAccidentals(t *testing.T) {
	s, err := Parse("1,b3,#4,bb7")
	assert.NoError(t, err)
	assert.Equal(t, Scale{
		{Number: 1, Accidentals: 0},
		{Number: 3, Accidentals: -1},
		{Number: 4, Accidentals: 1},
		{Number: 7, Accidentals: -2},
	}, s)
}

func TestParseTrimsSpaces(t *testing.T) {
	s, err := Parse("1, 2, b3")
	assert.NoError(t, err)
	assert.Equal(t, Scale{
		{Number: 1},
		{Number: 2},
		{Number: 3, Accidentals: -1},
	}, s)
}

func TestParseRejectsConflictingAccidentals(t *testing.T) {
	_, err := Parse("1,b#3")
	assert.ErrorIs(t, err, ErrConflictingAccidentals)
}

func TestParseRejectsMissingDegree(t *testing.T) {
	for _, text := range []string{"1,b", "1,", "", "1,x3"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrMissingDegree, "text %q", text)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	texts := []string{
		"1,2,3,4,5,6,7",
		"1,2,b3,4,5,b6,b7",
		"1,b2,b3,4,b5,b6,b7",
		"1,2,3,#4,#5,#6",
		"1,b3,4,b5,5,b7",
	}
	for _, text := range texts {
		parsed, err := Parse(text)
		assert.NoError(t, err, "text %q", text)

		reparsed, err := Parse(parsed.String())
		assert.NoError(t, err, "text %q", text)
		assert.Equal(t, parsed, reparsed, "text %q", text)
	}
}

func TestDegreeString(t *testing.T) {
	assert.Equal(t, "b3", Degree{Number: 3, Accidentals: -1}.String())
	assert.Equal(t, "#6", Degree{Number: 6, Accidentals: 1}.String())
	assert.Equal(t, "4", Degree{Number: 4}.String())
	assert.Equal(t, "bb7", Degree{Number: 7, Accidentals: -2}.String())
}

func TestScaleString(t *testing.T) {
	s, err := Parse("1,2,b3")
	assert.NoError(t, err)
	assert.Equal(t, "1, 2, b3", s.String())
}
