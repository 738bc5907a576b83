package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/lmittmann/tint"

	"github.com/JMMarchant/dnd-demographics/pkg/demographics"
	"github.com/JMMarchant/dnd-demographics/pkg/spec"
	"github.com/JMMarchant/dnd-demographics/pkg/validation"
)

// Server is the local development server for interactive exploration of a
// world project.
type Server struct {
	projectPath string
	port        int
	log         *slog.Logger
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		log: slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		})),
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/demographics", s.handleResolve)
	mux.HandleFunc("POST /api/demographic", s.handleDemographic)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("dndpop server starting", "addr", fmt.Sprintf("http://localhost%s", addr))
	s.log.Info("serving project", "path", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>dndpop</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>dndpop</h1>
<p>Try <code>GET /api/demographics</code> or <code>POST /api/demographic</code>.</p>
</div>
</body></html>`)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	worldSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		s.jsonError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, worldSpec)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	worldSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		s.jsonError(w, http.StatusInternalServerError, err)
		return
	}

	report := validation.ValidateSchema(worldSpec)
	if report.Valid {
		_, resolveReport := demographics.Resolve(worldSpec, nil)
		report.Merge(resolveReport)
	}
	s.writeJSON(w, report)
}

func (s *Server) handleResolve(w http.ResponseWriter, _ *http.Request) {
	worldSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		s.jsonError(w, http.StatusInternalServerError, err)
		return
	}

	report := validation.ValidateSchema(worldSpec)
	if !report.Valid {
		s.writeJSONStatus(w, http.StatusUnprocessableEntity, report)
		return
	}

	resolved, resolveReport := demographics.Resolve(worldSpec, nil)
	if resolved == nil {
		s.writeJSONStatus(w, http.StatusUnprocessableEntity, resolveReport)
		return
	}
	s.writeJSON(w, map[string]any{
		"demographics": resolved,
		"validation":   resolveReport,
	})
}

// demographicRequest is the body of POST /api/demographic. Levels and ratio
// are optional and fall back to the 20-level, one-in-a-million defaults.
type demographicRequest struct {
	Population int     `json:"population"`
	Levels     int     `json:"levels,omitempty"`
	Ratio      float64 `json:"ratio,omitempty"`
}

func (s *Server) handleDemographic(w http.ResponseWriter, r *http.Request) {
	var req demographicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}
	if req.Population < 0 {
		s.jsonError(w, http.StatusBadRequest, fmt.Errorf("population must be non-negative (got %d)", req.Population))
		return
	}

	cfg := demographics.DefaultConfig()
	if req.Levels != 0 {
		cfg.NumLevels = req.Levels
	}
	if req.Ratio != 0 {
		cfg.TopLevelRatio = req.Ratio
	}

	breakdown, err := demographics.Allocate(req.Population, cfg, nil)
	if err != nil {
		s.jsonError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.log.Info("demographic computed",
		"population", req.Population,
		"levels", cfg.NumLevels,
		"ratio", cfg.TopLevelRatio)
	s.writeJSON(w, map[string]any{
		"population": req.Population,
		"config":     cfg,
		"levels":     breakdown,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	s.writeJSONStatus(w, http.StatusOK, v)
}

func (s *Server) writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "err", err)
	}
}

func (s *Server) jsonError(w http.ResponseWriter, status int, err error) {
	s.log.Error("request failed", "err", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
