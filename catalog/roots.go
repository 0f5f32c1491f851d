package catalog

import (
	"github.com/scaledrill/scaledrill/model"
	"github.com/scaledrill/scaledrill/note"
)

// The common scale roots, built as scale degrees of middle C. Fb major is
// not in here because E major exists; the quiz is not about the most obscure
// enharmonics.
var rootDegrees = []struct {
	degree      int
	accidentals int
}{
	{1, 0},  // C
	{2, -1}, // Db
	{2, 0},  // D
	{3, -1}, // Eb
	{3, 0},  // E
	{4, 0},  // F
	{4, 1},  // F#
	{5, -1}, // Gb
	{5, 0},  // G
	{6, -1}, // Ab
	{6, 0},  // A
	{7, -1}, // Bb
	{7, 0},  // B
}

// Roots with more accidentals or less exposure only show up at higher
// difficulties; weight zero means never sampled at that level.
var rootWeights = [model.NumDifficulties][]float64{
	{1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0},
	{1, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0},
	{2, 1, 2, 2, 2, 2, 1, 1, 2, 1, 2, 2, 1},
}

// possibleRoots is built once and never mutated, so handing out pointers
// into it across samples is safe.
var possibleRoots = buildRoots()

func buildRoots() []note.Note {
	middleC := note.New()
	roots := make([]note.Note, 0, len(rootDegrees))
	for _, rd := range rootDegrees {
		n, err := note.FromDegree(middleC, rd.degree, rd.accidentals)
		if err != nil {
			panic("building fixed root table: " + err.Error())
		}
		roots = append(roots, *n)
	}
	return roots
}
