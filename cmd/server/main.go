// Command server exposes the analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/parse?word=<word>[&formatted=true]
//	POST /api/parse/line   body: {"line":"..."}
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	verborum "github.com/cours-de-latin/verborum"
)

// ---- JSON response types ------------------------------------------------

type inflJSON struct {
	Ending string `json:"ending"`
	POS    string `json:"pos"`
	Form   any    `json:"form"`
}

type analysisJSON struct {
	Orth   []string   `json:"orth"`
	Senses []string   `json:"senses"`
	Infls  []inflJSON `json:"infls"`
}

type parseResponse struct {
	Word string         `json:"word"`
	Defs []analysisJSON `json:"defs"`
}

type lineResponse struct {
	Results []parseResponse `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toAnalysesJSON(defs []verborum.FormattedAnalysis) []analysisJSON {
	out := make([]analysisJSON, 0, len(defs))
	for _, d := range defs {
		infls := make([]inflJSON, 0, len(d.Infls))
		for _, i := range d.Infls {
			infls = append(infls, inflJSON{Ending: i.Ending, POS: i.POS, Form: i.Form})
		}
		out = append(out, analysisJSON{Orth: d.Orth, Senses: d.Senses, Infls: infls})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -------------------------------------------------------------

func handleParse(a *verborum.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		formatted, _ := strconv.ParseBool(r.URL.Query().Get("formatted"))

		result, err := a.Parse(word, verborum.LatinToEnglish, formatted)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		status := http.StatusOK
		if len(result.Defs) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, parseResponse{Word: result.Word, Defs: toAnalysesJSON(result.Defs)})
	}
}

func handleParseLine(a *verborum.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Line string `json:"line"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Line == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'line' field")
			return
		}

		results, err := a.ParseLine(body.Line)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]parseResponse, 0, len(results))
		for _, res := range results {
			out = append(out, parseResponse{Word: res.Word, Defs: toAnalysesJSON(res.Defs)})
		}
		writeJSON(w, http.StatusOK, lineResponse{Results: out})
	}
}

// ---- main -------------------------------------------------------------

func main() {
	dataDir := flag.String("data", "data", "path to the lexicon data directory")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Printf("loading lexicon from %s …", *dataDir)
	a, err := verborum.New(*dataDir)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	log.Println("lexicon loaded")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse/line", handleParseLine(a))
	mux.HandleFunc("/api/parse", handleParse(a))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
