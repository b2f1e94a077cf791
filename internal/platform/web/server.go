// Package web serves the stored rounds as a read-only JSON leaderboard.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/treat-hunt/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// RoundSource is the storage the API reads from. *storage.Store implements it.
type RoundSource interface {
	TopRounds(gameID string, limit int) ([]storage.RoundRecord, error)
	RoundByID(id string) (storage.RoundRecord, error)
	Stats(gameID string) (storage.GameStats, error)
}

// Server exposes rounds of one game over HTTP.
type Server struct {
	source RoundSource
	gameID string
	logger *log.Logger
	router *mux.Router
}

// NewServer creates the API for gameID.
func NewServer(source RoundSource, gameID string, logger *log.Logger) *Server {
	s := &Server{
		source: source,
		gameID: gameID,
		logger: logger.WithPrefix("http"),
		router: mux.NewRouter(),
	}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rounds", s.handleRounds).Methods(http.MethodGet)
	api.HandleFunc("/rounds/{id}", s.handleRound).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	s.router.Use(s.logRequests)

	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on addr until ctx is cancelled, then shuts down.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.logger.Info("starting HTTP server", "address", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleRounds(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	rounds, err := s.source.TopRounds(s.gameID, limit)
	if err != nil {
		s.internalError(w, err)
		return
	}
	if rounds == nil {
		rounds = []storage.RoundRecord{}
	}
	writeJSON(w, http.StatusOK, rounds)
}

func (s *Server) handleRound(w http.ResponseWriter, r *http.Request) {
	round, err := s.source.RoundByID(mux.Vars(r)["id"])
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "round not found")
	case err != nil:
		s.internalError(w, err)
	default:
		writeJSON(w, http.StatusOK, round)
	}
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	stats, err := s.source.Stats(s.gameID)
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // The client may have gone away; nothing to do.
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
