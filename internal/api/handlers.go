package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/scores"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

// HealthResponse reports liveness.
type HealthResponse struct {
	Status   string `json:"status"`
	Games    int    `json:"games"`
	Sessions int    `json:"sessions"`
	Uptime   string `json:"uptime"`
	History  bool   `json:"history"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Games:    len(registry.List()),
		Sessions: s.sessions.len(),
		Uptime:   time.Since(s.started).Round(time.Second).String(),
		History:  s.store != nil,
	})
}

// GamesResponse lists the registered games.
type GamesResponse struct {
	Games []registry.GameInfo `json:"games"`
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, GamesResponse{Games: registry.List()})
}

// RecordView is one game's best record.
type RecordView struct {
	Game      string `json:"game"`
	BestScore int    `json:"bestScore"`
	BestStars int    `json:"bestStars"`
}

// ScoresResponse lists the best record of every game that has one.
type ScoresResponse struct {
	Records []RecordView `json:"records"`
}

func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	all := s.book.All()
	out := make([]RecordView, 0, len(all))
	for id, rec := range all {
		out = append(out, RecordView{Game: id, BestScore: rec.BestScore, BestStars: rec.BestStars})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Game < out[j].Game })
	s.writeJSON(w, http.StatusOK, ScoresResponse{Records: out})
}

// RoundView is one recorded round from the history table.
type RoundView struct {
	Score    int       `json:"score"`
	Stars    int       `json:"stars"`
	PlayedAt time.Time `json:"playedAt"`
}

// GameScoresResponse is one game's record plus its recent rounds.
type GameScoresResponse struct {
	RecordView
	Recent []RoundView `json:"recent"`
}

func (s *Server) handleGameScores(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "game")
	if !registry.Exists(id) {
		s.writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown game %q", id))
		return
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			s.writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	rec := s.book.Get(id)
	resp := GameScoresResponse{
		RecordView: RecordView{Game: id, BestScore: rec.BestScore, BestStars: rec.BestStars},
		Recent:     []RoundView{},
	}
	if s.store != nil {
		entries, err := s.store.RecentScores(id, limit)
		if err != nil {
			s.logger.Warn("could not read round history", "game", id, "error", err)
		}
		resp.Recent = roundViews(entries)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func roundViews(entries []storage.ScoreEntry) []RoundView {
	out := make([]RoundView, 0, len(entries))
	for _, e := range entries {
		out = append(out, RoundView{Score: e.Score, Stars: e.Stars, PlayedAt: e.CreatedAt})
	}
	return out
}

// SimulateRequest asks for a headless, deterministic round.
type SimulateRequest struct {
	Game   string           `json:"game"`
	Seed   int64            `json:"seed"`
	Preset string           `json:"preset,omitempty"`
	Ticks  int              `json:"ticks"`
	Inputs []registry.Input `json:"inputs,omitempty"`
}

// SimulateResponse is the final snapshot of a simulated round and the
// stars it would earn. Simulated rounds are never recorded.
type SimulateResponse struct {
	Game     string          `json:"game"`
	Seed     int64           `json:"seed"`
	Stars    int             `json:"stars"`
	Snapshot engine.Snapshot `json:"snapshot"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if _, err := parsePreset(req.Preset); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	g, err := registry.Create(req.Game)
	if errors.Is(err, registry.ErrUnknownGame) {
		s.writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown game %q", req.Game))
		return
	}

	cfg := core.DefaultConfig()
	cfg.Seed = req.Seed
	cfg.Preset = req.Preset
	snap, err := registry.Replay(g, cfg, req.Ticks, req.Inputs)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	stars := 0
	if snap.Phase.Terminal() {
		stars = starsFor(g.Scale(), snap.Score)
	}
	s.writeJSON(w, http.StatusOK, SimulateResponse{
		Game:     req.Game,
		Seed:     req.Seed,
		Stars:    stars,
		Snapshot: snap,
	})
}

// starsFor rates a final score; rounds that would not be recorded earn none.
func starsFor(scale scores.StarScale, score int) int {
	if score <= 0 {
		return 0
	}
	return scale.Stars(score)
}
