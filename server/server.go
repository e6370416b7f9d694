// Package server exposes the office over HTTP: a JSON API for projects,
// tasks, and agents, plus a server-sent-events stream of observations.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aioffice/aioffice/office"
	"github.com/aioffice/aioffice/task"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr              string
	JWTSecret         string
	AdminUser         string
	AdminPasswordHash string
	TokenTTL          time.Duration
}

// Server is the HTTP front of the simulation.
type Server struct {
	office *office.Office
	hub    *Hub
	auth   *authenticator
	logger *slog.Logger
	http   *http.Server

	// baseCtx bounds background project pipelines; Shutdown cancels it.
	baseCtx context.Context
	stop    context.CancelFunc
}

// New wires the API around an office. hub should be the same sink the
// office reports to, so /events mirrors the simulation.
func New(o *office.Office, hub *Hub, cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		office: o,
		hub:    hub,
		auth:   newAuthenticator(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPasswordHash, cfg.TokenTTL),
		logger: logger,
	}
	s.baseCtx, s.stop = context.WithCancel(context.Background())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/projects", s.auth.requireAuth(s.handleSubmitProject))
	mux.HandleFunc("POST /api/tasks", s.auth.requireAuth(s.handleCreateTask))
	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("GET /api/tasks/{id}", s.handleGetTask)
	mux.HandleFunc("GET /api/agents", s.handleListAgents)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /events", s.handleEvents)

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the route table, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// ListenAndServe runs the server until it fails or Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown cancels any background pipelines and stops the server
// gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stop()
	return s.http.Shutdown(ctx)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.auth.enabled() {
		writeError(w, http.StatusNotFound, "authentication is not configured")
		return
	}
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.auth.checkPassword(req.Username, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := s.auth.issueToken(req.Username)
	if err != nil {
		s.logger.Error("failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleSubmitProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "title and description are required")
		return
	}
	priority, err := parsePriority(req.Priority)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The pipeline takes a while; run it in the background and let the
	// caller follow progress on /events. Shutdown cancels it.
	go func() {
		summary, err := s.office.SubmitProject(s.baseCtx, req.Title, req.Description, priority)
		if err != nil {
			s.logger.Error("project failed", "title", req.Title, "error", err)
			s.hub.Status(fmt.Sprintf("Project failed: %s (%v)", req.Title, err))
			return
		}
		s.hub.Status(fmt.Sprintf("Final product ready for: %s (%d bytes)", req.Title, len(summary)))
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{
		"status": "accepted",
		"title":  req.Title,
	})
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	priority, err := parsePriority(req.Priority)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, err := s.office.CreateTask(req.Title, req.Description, "api", priority)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleListTasks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.office.Tasks().List())
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	t, ok := s.office.Tasks().Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleListAgents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.office.Agents())
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	completed := 0
	for _, t := range s.office.Tasks().List() {
		if t.Status == task.StatusCompleted {
			completed++
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"agents":           len(s.office.Agents()),
		"tasks":            s.office.Tasks().Len(),
		"completed_tasks":  completed,
		"pending_messages": s.office.Bus().Pending(),
		"dropped_messages": s.office.Bus().Dropped(),
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}
	events, cancel := s.hub.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
			flusher.Flush()
		}
	}
}

func parsePriority(s string) (task.Priority, error) {
	switch s {
	case "", "medium":
		return task.PriorityMedium, nil
	case "low":
		return task.PriorityLow, nil
	case "high":
		return task.PriorityHigh, nil
	case "critical":
		return task.PriorityCritical, nil
	}
	return 0, fmt.Errorf("unknown priority %q", s)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
