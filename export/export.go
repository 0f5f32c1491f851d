// Package export renders a realised scale into a Standard MIDI File so the
// answer to a question can be heard, not just read.
package export

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/scaledrill/scaledrill/scale"
)

var ErrNoPitch = errors.New("note has no pitch information to export")

const ticksPerQuarter = 960
const velocity = 100
const channel = 0

// WriteSMF writes the scale as one quarter note per degree on channel 0.
// Every note must carry pitch information.
func WriteSMF(w io.Writer, r *scale.Realised) error {
	clock := smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	for i, n := range r.Notes() {
		pitch, err := n.Pitch()
		if err != nil {
			return errors.Wrapf(ErrNoPitch, "note %d (%s)", i, n)
		}
		if pitch < 0 || pitch > 127 {
			return errors.Errorf("note %d: pitch %d outside the MIDI range", i, pitch)
		}
		track.Add(0, midi.NoteOn(channel, uint8(pitch), velocity))
		track.Add(clock.Ticks4th(), midi.NoteOff(channel, uint8(pitch)))
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(track); err != nil {
		return errors.Wrap(err, "adding track")
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing smf")
	}
	return nil
}

// WriteFile writes the scale to a .mid file at the given path.
func WriteFile(path string, r *scale.Realised) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %q", path)
	}
	defer f.Close()
	return WriteSMF(f, r)
}
