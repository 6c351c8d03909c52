// Package httpapi exposes a compiled transition graph over HTTP.
//
// The graph is compiled once at startup and shared read-only across all
// requests; parsing never mutates it, so no locking is involved. Handlers
// are thin wrappers over the core operations: classify one input, batch a
// list of inputs, report graph statistics, and export the DOT view.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/lexway/lexway/pkg/batch"
	"github.com/lexway/lexway/pkg/cache"
	"github.com/lexway/lexway/pkg/fst"
	"github.com/lexway/lexway/pkg/render"
)

// Server serves parse requests against one immutable graph.
type Server struct {
	graph       *fst.Graph
	fingerprint string // ruleset fingerprint, scopes cache keys
	cache       cache.Cache
	logger      *log.Logger
}

// NewServer creates a server for a compiled graph. fingerprint identifies
// the ruleset the graph was compiled from (see cache.Hash); c may be nil to
// disable result caching, and logger may be nil for the default logger.
func NewServer(g *fst.Graph, fingerprint string, c cache.Cache, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{graph: g, fingerprint: fingerprint, cache: c, logger: logger}
}

// Handler builds the HTTP route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Post("/parse", s.handleParse)
	r.Post("/batch", s.handleBatch)
	r.Get("/stats", s.handleStats)
	r.Get("/graph.dot", s.handleGraphDOT)
	r.Get("/healthz", s.handleHealthz)
	return r
}

type parseRequest struct {
	Input string `json:"input"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	key := cache.ResultKey(s.fingerprint, req.Input)
	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
		return
	}

	res := s.graph.Parse(req.Input)
	s.logger.Debug("parsed input", "input", req.Input, "kind", res.Kind.String())

	data, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "encode result", http.StatusInternalServerError)
		return
	}
	_ = s.cache.Set(r.Context(), key, data, cache.DefaultTTL)

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

type batchRequest struct {
	Inputs  []string `json:"inputs"`
	Workers int      `json:"workers"`
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report, err := batch.Run(r.Context(), s.graph, req.Inputs, req.Workers)
	if err != nil {
		// Client went away mid-batch; there is nobody to answer.
		s.logger.Warn("batch cancelled", "id", report.ID, "err", err)
		return
	}
	s.logger.Info("batch complete",
		"id", report.ID,
		"inputs", len(req.Inputs),
		"matched", report.Matched,
		"ambiguous", report.Ambiguous,
		"failed", report.Failed,
		"elapsed", report.Elapsed)

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.graph.Stats())
}

func (s *Server) handleGraphDOT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write([]byte(render.ToDOT(s.graph)))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
