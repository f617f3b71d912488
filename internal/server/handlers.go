package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"dartsleague/internal/events"
	"dartsleague/internal/games"
	"dartsleague/internal/roster"
	"dartsleague/internal/stats"
	"dartsleague/internal/wshub"

	"go.uber.org/zap"
)

type Server struct {
	Games          games.Store
	Roster         roster.Roster
	Bus            *events.Bus // nil disables the live feed
	Hub            *wshub.Hub  // nil disables the live feed
	Metrics        *Metrics
	Log            *zap.Logger
	AllowedOrigins []string
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Warn("writing response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, message string, err error) {
	s.Log.Error(message, zap.String("path", r.URL.Path), zap.Error(err))
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Message: message, Error: err.Error()})
}

// handleSaveGame stores one game record. Decode failures are reported as 500
// like any other save failure. An empty body saves an empty record.
func (s *Server) handleSaveGame(w http.ResponseWriter, r *http.Request) {
	var g games.Game
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, r, "Error saving game", err)
		return
	}
	g.ID = ""

	id, err := s.Games.Insert(r.Context(), &g)
	if err != nil {
		s.writeError(w, r, "Error saving game", err)
		return
	}
	g.ID = id
	g.Normalize()
	s.Metrics.gamesSaved.Inc()
	s.Log.Debug("game saved", zap.String("id", id), zap.Int("player1", g.Player1ID), zap.Int("player2", g.Player2ID))

	if s.Bus != nil && !s.Bus.PublishGameSaved(g) {
		s.Log.Warn("live feed busy, dropping game event", zap.String("id", id))
	}

	s.writeJSON(w, http.StatusCreated, messageResponse{Message: "Game saved successfully"})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	list, err := s.Games.All(r.Context())
	if err != nil {
		s.writeError(w, r, "Error retrieving games", err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	list, err := s.Games.All(r.Context())
	if err != nil {
		s.writeError(w, r, "Error retrieving player stats", err)
		return
	}

	start := time.Now()
	out, err := stats.Compute(list, s.Roster)
	s.Metrics.statsDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.writeError(w, r, "Error retrieving player stats", err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.Games.Ping(ctx); err != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "db_error", "error": err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
