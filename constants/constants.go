package constants

import "os"

func GetScalesPath() string {
	path := os.Getenv("SCALES_PATH")
	if path != "" {
		return path
	}
	return "./scales.csv"
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

// Middle C is the reference pitch for everything: pitch number 60, octave 4.
const MiddleCPitch = 60
const MiddleCOctave = 4

const NotesPerOctave = 12
const NumberOfLetters = 7

// Separator between enharmonic names when printing a note (C#/Db).
const NoteNameSeparator = "/"

// Separator between degree tokens in a scale text (1,2,b3).
const DegreeSeparator = ","

// Column separator in the catalogue file. Must differ from DegreeSeparator
// so a scale text can live inside one column.
const CatalogueSeparator = ';'

const ResultsTable = "scaledrill-results"
