package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scaledrill/scaledrill/catalog"
	"github.com/scaledrill/scaledrill/constants"
	"github.com/scaledrill/scaledrill/export"
	"github.com/scaledrill/scaledrill/note"
	"github.com/scaledrill/scaledrill/scale"
)

var exportScale string
var exportRoot string
var exportInput string
var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportScale, "scale", "s", "", "catalogue name of the scale to export")
	exportCmd.Flags().StringVarP(&exportRoot, "root", "r", "C4", "root note, octave included")
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", constants.GetScalesPath(), "path to the scales file")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "./scale.mid", "path to the output .mid file")
	exportCmd.MarkFlagRequired("scale")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes a realised scale as a MIDI file",
	Long:  `Writes a realised scale as a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		exportMidi()
	},
}

func exportMidi() {
	mgr := catalog.NewManager()
	if err := mgr.LoadFile(exportInput); err != nil {
		log.WithError(err).Fatal("loading scales")
	}

	entry, ok := findEntry(mgr, exportScale)
	if !ok {
		log.WithField("scale", exportScale).Fatal("scale not found in catalogue")
	}

	root, err := note.Parse(exportRoot)
	if err != nil {
		log.WithError(err).Fatal("parsing root note")
	}
	if !root.HasPitch() {
		log.Fatal("root note needs an octave so the scale has pitches, e.g. C4")
	}

	realised, err := scale.Realise(root, entry.Scale)
	if err != nil {
		log.WithError(err).Fatal("realising scale")
	}

	if err := export.WriteFile(exportOutput, realised); err != nil {
		log.WithError(err).Fatal("writing MIDI file")
	}
	log.WithField("path", exportOutput).Info("wrote scale")
}

func findEntry(mgr *catalog.Manager, name string) (catalog.Entry, bool) {
	for _, e := range mgr.Entries() {
		if e.Name == name {
			return e, true
		}
	}
	return catalog.Entry{}, false
}
