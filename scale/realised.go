package scale

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/scaledrill/scaledrill/constants"
	"github.com/scaledrill/scaledrill/note"
)

var (
	ErrEmptyScale   = errors.New("cannot realise an empty scale")
	ErrRootNotFirst = errors.New("scale template must start on degree 1")
)

// Realised is a scale template instantiated at a concrete root: "Major" at
// "C4" becomes C4 D4 E4 F4 G4 A4 B4.
type Realised struct {
	notes []note.Note
}

// Realise applies the template to the root, degree by degree. The first
// token must be degree 1; the root itself is copied into that slot rather
// than re-derived so it keeps its full information, ambiguity included.
func Realise(root *note.Note, s Scale) (*Realised, error) {
	if len(s) == 0 {
		return nil, ErrEmptyScale
	}
	if s[0].Number != 1 {
		return nil, errors.Wrapf(ErrRootNotFirst, "first token is %s", s[0])
	}

	notes := make([]note.Note, 0, len(s))
	for _, d := range s {
		if d.Number == 1 {
			notes = append(notes, *root.Clone())
			continue
		}
		n, err := note.FromDegree(root, d.Number, d.Accidentals)
		if err != nil {
			return nil, errors.Wrapf(err, "realising degree %s", d)
		}
		notes = append(notes, *n)
	}

	return &Realised{notes: notes}, nil
}

func (r *Realised) Len() int {
	return len(r.notes)
}

// At returns the note at the given position.
func (r *Realised) At(i int) *note.Note {
	return &r.notes[i]
}

// Notes returns the realised notes in scale order.
func (r *Realised) Notes() []*note.Note {
	out := make([]*note.Note, len(r.notes))
	for i := range r.notes {
		out[i] = &r.notes[i]
	}
	return out
}

// Root returns the first note of the scale. Realise guarantees this is the
// tonic.
func (r *Realised) Root() *note.Note {
	return &r.notes[0]
}

// RootName returns the spelled name of the root.
func (r *Realised) RootName() (string, error) {
	return r.Root().Name()
}

// String joins the note names with the degree separator; notes without name
// information fall back to their pitch number.
func (r *Realised) String() string {
	parts := make([]string, 0, len(r.notes))
	for i := range r.notes {
		parts = append(parts, r.notes[i].String())
	}
	return strings.Join(parts, constants.DegreeSeparator+" ")
}

// Names returns the spelled name of every note in order. Any note missing
// name information makes the whole call fail.
func (r *Realised) Names() ([]string, error) {
	out := make([]string, 0, len(r.notes))
	for i := range r.notes {
		name, err := r.notes[i].Name()
		if err != nil {
			return nil, errors.Wrapf(err, "note %d", i)
		}
		out = append(out, name)
	}
	return out, nil
}
