package note

// The diatonic alphabet. Swapping this (and nothing else) is how a
// different naming locale would be built.
var letterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

const flatGlyph = "b"
const sharpGlyph = "#"

// Semitone offset of each unaltered letter from C, 0-based letter index.
var letterSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// Spellings for each semitone within the octave. Black keys get the sharp
// spelling first, then the flat one. The generator never goes past a single
// accidental; doubles are representable but never produced here.
var pitchClassSpellings = [12][]Spelling{
	{{Letter: 0, Accidentals: 0}},
	{{Letter: 0, Accidentals: 1}, {Letter: 1, Accidentals: -1}},
	{{Letter: 1, Accidentals: 0}},
	{{Letter: 1, Accidentals: 1}, {Letter: 2, Accidentals: -1}},
	{{Letter: 2, Accidentals: 0}},
	{{Letter: 3, Accidentals: 0}},
	{{Letter: 3, Accidentals: 1}, {Letter: 4, Accidentals: -1}},
	{{Letter: 4, Accidentals: 0}},
	{{Letter: 4, Accidentals: 1}, {Letter: 5, Accidentals: -1}},
	{{Letter: 5, Accidentals: 0}},
	{{Letter: 5, Accidentals: 1}, {Letter: 6, Accidentals: -1}},
	{{Letter: 6, Accidentals: 0}},
}
