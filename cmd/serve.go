package cmd

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scaledrill/scaledrill/catalog"
	"github.com/scaledrill/scaledrill/constants"
	"github.com/scaledrill/scaledrill/model"
)

var serveAddr string
var serveInput string

var serveMgr *catalog.Manager
var serveMu sync.Mutex

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVarP(&serveInput, "input", "i", constants.GetScalesPath(), "path to the scales file")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves generated scales over HTTP",
	Long:  `Serves generated scales over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// LoadServeScales loads the catalogue the HTTP handlers generate from.
func LoadServeScales(path string) error {
	serveMgr = catalog.NewManager()
	return serveMgr.LoadFile(path)
}

func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var input model.GenerateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}

	if input.Count < 1 {
		writeError(w, http.StatusBadRequest, "count must be at least 1")
		return
	}
	difficulty, err := model.ParseDifficulty(input.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// the manager's random generator is not safe for concurrent use
	serveMu.Lock()
	batch, err := serveMgr.Generate(input.Count, difficulty)
	serveMu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	res := make([]model.GeneratedScale, 0, len(batch))
	for _, g := range batch {
		rootName, err := g.Scale.RootName()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		names, err := g.Scale.Names()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		res = append(res, model.GeneratedScale{
			Name:       g.Name,
			Difficulty: g.Difficulty.String(),
			Root:       rootName,
			Notes:      names,
		})
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	if err := LoadServeScales(serveInput); err != nil {
		log.WithError(err).Fatal("loading scales")
	}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/generate", HandleGenerate).Methods("POST")

	log.WithFields(log.Fields{
		"addr":   serveAddr,
		"scales": serveMgr.Len(),
	}).Info("listening")
	log.Fatal(http.ListenAndServe(serveAddr, cors.Default().Handler(router)))
}
