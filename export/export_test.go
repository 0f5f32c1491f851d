package export

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/scaledrill/scaledrill/note"
	"github.com/scaledrill/scaledrill/scale"
)

func realiseMajor(t *testing.T, rootText string) *scale.Realised {
	t.Helper()
	root, err := note.Parse(rootText)
	assert.NoError(t, err)
	s, err := scale.Parse("1,2,3,4,5,6,7")
	assert.NoError(t, err)
	realised, err := scale.Realise(root, s)
	assert.NoError(t, err)
	return realised
}

func TestWriteSMF(t *testing.T) {
	assert := assert.New(t)
	realised := realiseMajor(t, "C4")

	var buf bytes.Buffer
	assert.NoError(WriteSMF(&buf, realised))

	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	assert.NoError(err)
	assert.Len(parsed.Tracks, 1)

	var ons, offs []uint8
	for _, ev := range parsed.Tracks[0] {
		var ch, key, vel uint8
		if ev.Message.GetNoteStart(&ch, &key, &vel) {
			ons = append(ons, key)
		} else if ev.Message.GetNoteEnd(&ch, &key) {
			offs = append(offs, key)
		}
	}

	assert.Equal([]uint8{60, 62, 64, 65, 67, 69, 71}, ons)
	assert.Equal(ons, offs)
}

func TestWriteSMFRequiresPitches(t *testing.T) {
	// a pitchless root realises into pitchless notes
	realised := realiseMajor(t, "C")

	var buf bytes.Buffer
	err := WriteSMF(&buf, realised)
	assert.ErrorIs(t, err, ErrNoPitch)
	assert.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	realised := realiseMajor(t, "G4")
	path := t.TempDir() + "/scale.mid"

	assert.NoError(t, WriteFile(path, realised))

	dat, err := os.ReadFile(path)
	assert.NoError(t, err)
	parsed, err := smf.ReadFrom(bytes.NewReader(dat))
	assert.NoError(t, err)
	assert.Len(t, parsed.Tracks, 1)
}
