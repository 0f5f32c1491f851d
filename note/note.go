// Package note models a single musical note that may be known by absolute
// pitch, by letter-name spelling(s), or both. A note built from a raw pitch
// can carry two enharmonic spellings (C#/Db); a note built from text carries
// exactly one; a note built from a scale root and degree carries whatever
// could be derived from the root. The one invariant every constructor
// upholds is that a Note never ends up with neither piece of information.
package note

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/scaledrill/scaledrill/constants"
	"github.com/scaledrill/scaledrill/util"
)

var (
	ErrNoPitchInformation     = errors.New("note has no pitch information")
	ErrNoNameInformation      = errors.New("note has no name information")
	ErrNoNoteInformation      = errors.New("note has neither pitch nor name information")
	ErrConflictingAccidentals = errors.New("note name has both flats and sharps")
	ErrInvalidNoteName        = errors.New("note name root is not a valid letter")
	ErrZeroDegree             = errors.New("no such thing as a 0th scale degree, use 1-based indexing")
	ErrUnderspecifiedRoot     = errors.New("scale root has no pitch and no unique name to derive from")
)

// Spelling is one letter-name for a note: a 0-based index into the diatonic
// alphabet plus a signed accidental count (negative = flats).
type Spelling struct {
	Letter      int
	Accidentals int
}

func (s Spelling) String() string {
	glyph := sharpGlyph
	count := s.Accidentals
	if count < 0 {
		glyph = flatGlyph
		count = -count
	}
	return letterNames[s.Letter] + strings.Repeat(glyph, count)
}

type pitchInfo struct {
	value  int
	octave int
}

// Note holds an optional pitch and an optional ordered list of spellings.
// At least one of the two is always present. Set* methods replace the whole
// state; nothing mutates a Note partially.
type Note struct {
	pitch     *pitchInfo
	spellings []Spelling

	// lazily generated display strings
	cachedName     string
	cachedFullName string
	regenerate     bool
}

// `C`, then optional flats, then optional sharps, then an optional octave.
var noteNamePattern = regexp.MustCompile(`^([A-G])(b*)(#*)(-?\d+)?$`)

func octaveOf(pitch int) int {
	return constants.MiddleCOctave + util.FloorDiv(pitch-constants.MiddleCPitch, constants.NotesPerOctave)
}

// New returns middle C with both pitch and a single natural spelling.
func New() *Note {
	n := &Note{}
	n.SetPitch(constants.MiddleCPitch, false)
	n.spellings = []Spelling{{Letter: 0, Accidentals: 0}}
	return n
}

// DeriveSpellings returns every spelling for the pitch class of the given
// pitch, sharp-first for black keys. Always one or two entries.
func DeriveSpellings(pitch int) []Spelling {
	class := util.PosMod(pitch-constants.MiddleCPitch, constants.NotesPerOctave)
	src := pitchClassSpellings[class]
	out := make([]Spelling, len(src))
	copy(out, src)
	return out
}

// FromPitch builds a note from an absolute pitch. With generateNames set,
// the enharmonic spellings of its pitch class are attached as well.
func FromPitch(pitch int, generateNames bool) *Note {
	n := &Note{}
	n.SetPitch(pitch, generateNames)
	return n
}

// SetPitch replaces the note with the given pitch (and derived names when
// generateNames is set).
func (n *Note) SetPitch(pitch int, generateNames bool) {
	n.pitch = &pitchInfo{value: pitch, octave: octaveOf(pitch)}
	n.spellings = nil
	if generateNames {
		n.spellings = DeriveSpellings(pitch)
	}
	n.regenerate = true
}

// Parse builds a note from text such as "D", "Eb" or "F#3". The note always
// gets exactly one spelling; it only gets a pitch when an octave number is
// present.
func Parse(text string) (*Note, error) {
	n := &Note{}
	if err := n.SetText(text); err != nil {
		return nil, err
	}
	return n, nil
}

// SetText replaces the note with the parse result of the given name.
func (n *Note) SetText(text string) error {
	m := noteNamePattern.FindStringSubmatch(text)
	if m == nil {
		return errors.Wrapf(ErrInvalidNoteName, "%q", text)
	}

	letter := -1
	for i, l := range letterNames {
		if l == m[1] {
			letter = i
			break
		}
	}
	if letter < 0 {
		return errors.Wrapf(ErrInvalidNoteName, "%q", text)
	}

	accidentals := 0
	if len(m[2]) > 0 {
		accidentals = -len(m[2])
	}
	if len(m[3]) > 0 {
		if accidentals < 0 {
			return errors.Wrapf(ErrConflictingAccidentals, "%q", text)
		}
		accidentals = len(m[3])
	}

	var pi *pitchInfo
	if m[4] != "" {
		octave, err := strconv.Atoi(m[4])
		if err != nil {
			return errors.Wrapf(ErrInvalidNoteName, "%q", text)
		}
		pitch := constants.MiddleCPitch +
			(octave-constants.MiddleCOctave)*constants.NotesPerOctave +
			letterSemitones[letter] + accidentals
		// keep the written octave rather than re-deriving it, so Cb4
		// stays in octave 4 even though its pitch sits in octave 3
		pi = &pitchInfo{value: pitch, octave: octave}
	}

	n.pitch = pi
	n.spellings = []Spelling{{Letter: letter, Accidentals: accidentals}}
	n.regenerate = true
	return nil
}

// FromDegree builds the note sitting at the given 1-based scale degree above
// a root, shifted by the given accidental count. The result carries a pitch
// when the root has one, and a unique spelling when the root's own spelling
// is unique. A root with neither fails outright.
func FromDegree(root *Note, degree int, accidentals int) (*Note, error) {
	n := &Note{}
	if err := n.SetDegree(root, degree, accidentals); err != nil {
		return nil, err
	}
	return n, nil
}

// SetDegree replaces the note with the derivation result. See FromDegree.
func (n *Note) SetDegree(root *Note, degree int, accidentals int) error {
	if degree < 1 {
		return errors.Wrapf(ErrZeroDegree, "degree %d", degree)
	}
	d := degree - 1

	var pi *pitchInfo
	var spellings []Spelling

	if root.pitch != nil {
		diff := letterSemitones[d%constants.NumberOfLetters] +
			constants.NotesPerOctave*(d/constants.NumberOfLetters) +
			accidentals
		pitch := root.pitch.value + diff
		pi = &pitchInfo{value: pitch, octave: octaveOf(pitch)}
	}

	if len(root.spellings) == 1 {
		rootSpelling := root.spellings[0]
		newLetter := (rootSpelling.Letter + d) % constants.NumberOfLetters

		// Semitone distance between the two letters with accidentals
		// stripped, wrapped up an octave when the new letter sits below
		// the root letter in the alphabet.
		rootOffset := letterSemitones[rootSpelling.Letter] + rootSpelling.Accidentals
		unaccidentedOffset := letterSemitones[newLetter]
		if unaccidentedOffset < rootOffset {
			unaccidentedOffset += constants.NotesPerOctave
		}
		unaccidentedDiff := unaccidentedOffset - rootOffset

		// The distance the degree actually asks for, root-relative.
		expectedDiff := letterSemitones[d%constants.NumberOfLetters] + accidentals

		spellings = []Spelling{{
			Letter:      newLetter,
			Accidentals: expectedDiff - unaccidentedDiff,
		}}
	}

	if pi == nil && spellings == nil {
		return errors.Wrapf(ErrUnderspecifiedRoot, "root %s, degree %d", root, degree)
	}

	n.pitch = pi
	n.spellings = spellings
	n.regenerate = true
	return nil
}

func (n *Note) HasPitch() bool {
	return n.pitch != nil
}

func (n *Note) HasName() bool {
	return len(n.spellings) > 0
}

// IsAmbiguous reports whether the note carries more than one enharmonic
// spelling (raw pitch 61 is both C# and Db until someone picks).
func (n *Note) IsAmbiguous() bool {
	return len(n.spellings) > 1
}

func (n *Note) Pitch() (int, error) {
	if n.pitch == nil {
		return 0, ErrNoPitchInformation
	}
	return n.pitch.value, nil
}

func (n *Note) Octave() (int, error) {
	if n.pitch == nil {
		return 0, ErrNoPitchInformation
	}
	return n.pitch.octave, nil
}

// Spellings returns a copy of the note's spellings in order.
func (n *Note) Spellings() []Spelling {
	out := make([]Spelling, len(n.spellings))
	copy(out, n.spellings)
	return out
}

func (n *Note) generateName() string {
	parts := make([]string, 0, len(n.spellings))
	for _, s := range n.spellings {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, constants.NoteNameSeparator)
}

// Name returns the spelled name(s) without pitch information, enharmonics
// joined by the note separator. The string is cached until the note is set
// again.
func (n *Note) Name() (string, error) {
	if !n.HasName() {
		return "", ErrNoNameInformation
	}
	if n.regenerate {
		n.refreshCaches()
	}
	return n.cachedName, nil
}

// NameWithPitch returns the name suffixed with octave and bracketed pitch
// number, e.g. "C#/Db4 (61)". Fails unless both representations are present.
func (n *Note) NameWithPitch() (string, error) {
	if !n.HasPitch() || !n.HasName() {
		return "", ErrNoNoteInformation
	}
	if n.regenerate {
		n.refreshCaches()
	}
	return n.cachedFullName, nil
}

func (n *Note) refreshCaches() {
	n.cachedName = n.generateName()
	if n.pitch != nil && n.HasName() {
		n.cachedFullName = fmt.Sprintf("%s%d (%d)", n.cachedName, n.pitch.octave, n.pitch.value)
	} else {
		n.cachedFullName = ""
	}
	n.regenerate = false
}

// Display picks the richest available representation: name with pitch, bare
// pitch, or bare name.
func (n *Note) Display() (string, error) {
	switch {
	case n.HasPitch() && n.HasName():
		return n.NameWithPitch()
	case n.HasPitch():
		return strconv.Itoa(n.pitch.value), nil
	case n.HasName():
		return n.Name()
	}
	return "", ErrNoNoteInformation
}

func (n *Note) String() string {
	s, err := n.Display()
	if err != nil {
		return "<empty note>"
	}
	return s
}

// Clone returns an independent copy, preserving ambiguity rather than
// re-deriving anything.
func (n *Note) Clone() *Note {
	out := &Note{regenerate: true}
	if n.pitch != nil {
		pi := *n.pitch
		out.pitch = &pi
	}
	if n.spellings != nil {
		out.spellings = make([]Spelling, len(n.spellings))
		copy(out.spellings, n.spellings)
	}
	return out
}
