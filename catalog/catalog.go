// Package catalog loads the scale catalogue and samples it by difficulty.
//
// The catalogue is a semicolon-separated table: a header row, then one row
// per scale holding its name, a difficulty label and the scale text. Loaded
// entries live in a flat arena; the difficulty index stores positions into
// that arena rather than a second set of references.
package catalog

import (
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/scaledrill/scaledrill/constants"
	"github.com/scaledrill/scaledrill/model"
	"github.com/scaledrill/scaledrill/note"
	"github.com/scaledrill/scaledrill/scale"
	"github.com/scaledrill/scaledrill/util"
)

var (
	ErrMalformedRow   = errors.New("catalogue row does not have exactly 3 non-empty fields")
	ErrNoScalesLoaded = errors.New("no scales loaded")
	ErrTooManySamples = errors.New("too many samples requested")
)

// Entry is one loaded catalogue row.
type Entry struct {
	Name       string
	Difficulty model.Difficulty
	Scale      scale.Scale
}

// Generated bundles a realised scale with the catalogue name and difficulty
// of the template it came from.
type Generated struct {
	Scale      *scale.Realised
	Name       string
	Difficulty model.Difficulty
}

// Manager owns the loaded catalogue and the random sampling over it.
type Manager struct {
	entries      []Entry
	byDifficulty [model.NumDifficulties][]int
	rng          *rand.Rand
}

// NewManager seeds sampling from the clock. Use NewManagerWithRand for
// deterministic behaviour in tests.
func NewManager() *Manager {
	return NewManagerWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewManagerWithRand(rng *rand.Rand) *Manager {
	return &Manager{rng: rng}
}

// LoadFile reads a catalogue file from disk.
func (m *Manager) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening catalogue %q", path)
	}
	defer f.Close()
	return m.Load(f)
}

// Load parses the catalogue. The first row is a header and is skipped. A bad
// row aborts the whole load; nothing is committed to the manager on failure.
func (m *Manager) Load(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.Comma = constants.CatalogueSeparator
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var pending []Entry
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "reading catalogue row %d", row)
		}
		if row == 0 {
			row++
			continue
		}

		if len(record) != 3 || record[0] == "" || record[1] == "" || record[2] == "" {
			return errors.Wrapf(ErrMalformedRow, "row %d", row)
		}

		difficulty, err := model.ParseDifficulty(record[1])
		if err != nil {
			return errors.Wrapf(err, "row %d, column 2", row)
		}

		s, err := scale.Parse(record[2])
		if err != nil {
			return errors.Wrapf(err, "parsing scale on row %d", row)
		}

		pending = append(pending, Entry{Name: record[0], Difficulty: difficulty, Scale: s})
		row++
	}

	for _, e := range pending {
		m.byDifficulty[e.Difficulty] = append(m.byDifficulty[e.Difficulty], len(m.entries))
		m.entries = append(m.entries, e)
	}
	return nil
}

func (m *Manager) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the loaded catalogue in load order.
func (m *Manager) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Names returns the names of every loaded scale, in load order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		names = append(names, e.Name)
	}
	return names
}

// RandomEntries samples n distinct entries uniformly, ignoring difficulty.
func (m *Manager) RandomEntries(n int) ([]Entry, error) {
	if len(m.entries) == 0 {
		return nil, ErrNoScalesLoaded
	}
	if n > len(m.entries) {
		return nil, errors.Wrapf(ErrTooManySamples, "%d requested, %d loaded", n, len(m.entries))
	}

	out := make([]Entry, 0, n)
	for _, i := range m.rng.Perm(len(m.entries))[:n] {
		out = append(out, m.entries[i])
	}
	return out, nil
}

// EntriesByDifficulty samples n entries with replacement. Each draw first
// picks a difficulty uniformly from Easy up to the requested one, redrawing
// whenever the picked bucket is empty, then picks uniformly inside the
// bucket.
func (m *Manager) EntriesByDifficulty(n int, difficulty model.Difficulty) ([]Entry, error) {
	if len(m.entries) == 0 {
		return nil, ErrNoScalesLoaded
	}

	available := false
	for d := model.Easy; d <= difficulty; d++ {
		if len(m.byDifficulty[d]) > 0 {
			available = true
			break
		}
	}
	if !available {
		return nil, errors.Wrapf(ErrNoScalesLoaded, "no scales at or below %s", difficulty)
	}

	out := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		var bucket []int
		for len(bucket) == 0 {
			bucket = m.byDifficulty[m.rng.Intn(int(difficulty)+1)]
		}
		out = append(out, m.entries[bucket[m.rng.Intn(len(bucket))]])
	}
	return out, nil
}

// RootsByDifficulty samples n root notes from the fixed root table using the
// weight vector for the given difficulty. The returned pointers alias the
// fixed table, which never changes after process start.
func (m *Manager) RootsByDifficulty(n int, difficulty model.Difficulty) []*note.Note {
	weights := rootWeights[difficulty]
	total := util.Sum(weights)

	out := make([]*note.Note, 0, n)
	for i := 0; i < n; i++ {
		target := m.rng.Float64() * total
		idx := -1
		for j, w := range weights {
			target -= w
			if w > 0 && target < 0 {
				idx = j
				break
			}
		}
		if idx < 0 {
			// float rounding pushed target past the final span; take
			// the last positive-weight root
			for j := len(weights) - 1; j >= 0; j-- {
				if weights[j] > 0 {
					idx = j
					break
				}
			}
		}
		out = append(out, &possibleRoots[idx])
	}
	return out
}

// Generate samples n templates and n roots independently at the given
// difficulty, pairs them up by position and realises each pair.
func (m *Manager) Generate(n int, difficulty model.Difficulty) ([]Generated, error) {
	templates, err := m.EntriesByDifficulty(n, difficulty)
	if err != nil {
		return nil, err
	}
	roots := m.RootsByDifficulty(n, difficulty)

	out := make([]Generated, 0, n)
	for i := 0; i < n; i++ {
		realised, err := scale.Realise(roots[i], templates[i].Scale)
		if err != nil {
			return nil, errors.Wrapf(err, "realising %q", templates[i].Name)
		}
		out = append(out, Generated{
			Scale:      realised,
			Name:       templates[i].Name,
			Difficulty: templates[i].Difficulty,
		})
	}
	return out, nil
}
