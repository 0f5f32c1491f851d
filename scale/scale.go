// Package scale models an abstract scale (an ordered run of degree tokens
// such as 1,2,b3) and the realisation of such a template at a concrete root
// note.
package scale

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/scaledrill/scaledrill/constants"
)

var (
	ErrConflictingAccidentals = errors.New("scale degree has both flats and sharps")
	ErrMissingDegree          = errors.New("no scale degree number in token")
)

// Degree is one token of a scale template: a 1-based degree number plus a
// signed accidental count.
type Degree struct {
	Number      int
	Accidentals int
}

// Scale is an ordered list of degree tokens. Degrees past 7 reach into the
// next octave (9ths and onwards).
type Scale []Degree

// flats, then sharps, then the degree number
var degreePattern = regexp.MustCompile(`^(b*)(#*)(\d+)$`)

func parseDegree(token string) (Degree, error) {
	m := degreePattern.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil || m[3] == "" {
		return Degree{}, errors.Wrapf(ErrMissingDegree, "token %q", token)
	}

	accidentals := 0
	if len(m[1]) > 0 {
		accidentals = -len(m[1])
	}
	if len(m[2]) > 0 {
		if accidentals < 0 {
			return Degree{}, errors.Wrapf(ErrConflictingAccidentals, "token %q", token)
		}
		accidentals = len(m[2])
	}

	number, err := strconv.Atoi(m[3])
	if err != nil {
		return Degree{}, errors.Wrapf(ErrMissingDegree, "token %q", token)
	}

	return Degree{Number: number, Accidentals: accidentals}, nil
}

// Parse reads a comma-separated scale text such as "1,2,b3,4,5,b6,b7".
func Parse(text string) (Scale, error) {
	var s Scale
	for _, token := range strings.Split(text, constants.DegreeSeparator) {
		d, err := parseDegree(token)
		if err != nil {
			return nil, err
		}
		s = append(s, d)
	}
	return s, nil
}

func (d Degree) String() string {
	glyph := sharpFor(d.Accidentals)
	count := d.Accidentals
	if count < 0 {
		count = -count
	}
	return strings.Repeat(glyph, count) + strconv.Itoa(d.Number)
}

func sharpFor(accidentals int) string {
	if accidentals < 0 {
		return "b"
	}
	return "#"
}

// String formats the scale back into its text form, tokens joined by the
// degree separator plus a space.
func (s Scale) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, constants.DegreeSeparator+" ")
}
