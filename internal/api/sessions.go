package api

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/scores"
)

var (
	errUnknownSession = errors.New("api: unknown session")
	errTooManyLive    = errors.New("api: too many live sessions")
)

// liveSession is one game played over HTTP. Its clock calls game.Step with
// the input queued since the previous tick.
type liveSession struct {
	id      string
	game    registry.Game
	cfg     core.RuntimeConfig
	clock   *engine.Clock
	tracker *scores.Tracker
	created time.Time
	// fixedSeed keeps the requested seed for every round.
	fixedSeed bool

	// life serialises restart and stop; it is never taken on the clock
	// goroutine.
	life sync.Mutex

	mu       sync.Mutex
	pending  core.InputFrame
	result   *scores.Result
	finished time.Time
}

func (ls *liveSession) onTick(time.Time) {
	ls.mu.Lock()
	frame := ls.pending
	ls.pending = core.NewInputFrame()
	ls.mu.Unlock()
	ls.game.Step(frame)
}

// onTerminal records the round and stops the clock. It runs on the clock
// goroutine.
func (ls *liveSession) onTerminal(snap engine.Snapshot) {
	res, ok := ls.tracker.Submit(snap.Score)
	ls.mu.Lock()
	if ok {
		ls.result = &res
	}
	ls.finished = time.Now()
	ls.mu.Unlock()
	ls.clock.Stop()
}

// start begins a fresh round on a fresh clock run.
func (ls *liveSession) start() {
	ls.life.Lock()
	defer ls.life.Unlock()

	ls.clock.Stop()
	<-ls.clock.Done()

	if !ls.fixedSeed {
		ls.mu.Lock()
		ls.cfg.Seed = time.Now().UnixNano()
		ls.mu.Unlock()
	}
	ls.game.Reset(ls.cfg)
	ls.tracker.Arm()
	ls.mu.Lock()
	ls.pending = core.NewInputFrame()
	ls.result = nil
	ls.finished = time.Time{}
	ls.mu.Unlock()

	ls.game.Session().Start()
	ls.clock.Start(ls.game.TickInterval())
}

func (ls *liveSession) stop() {
	ls.life.Lock()
	defer ls.life.Unlock()
	ls.clock.Stop()
	<-ls.clock.Done()
}

func (ls *liveSession) queue(a core.Action) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.pending.Set(a)
}

func (ls *liveSession) expired(now time.Time, ttl time.Duration) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return !ls.finished.IsZero() && now.Sub(ls.finished) > ttl
}

// sessionTable holds the live sessions by ID.
type sessionTable struct {
	mu    sync.Mutex
	items map[string]*liveSession
	limit int
	ttl   time.Duration
}

func newSessionTable(limit int, ttl time.Duration) *sessionTable {
	return &sessionTable{items: make(map[string]*liveSession), limit: limit, ttl: ttl}
}

// add stores ls after sweeping finished sessions older than the TTL.
func (t *sessionTable) add(ls *liveSession) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	for id, old := range t.items {
		if old.expired(now, t.ttl) {
			delete(t.items, id)
		}
	}
	if len(t.items) >= t.limit {
		return errTooManyLive
	}
	t.items[ls.id] = ls
	return nil
}

func (t *sessionTable) get(id string) (*liveSession, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ls, ok := t.items[id]
	if !ok {
		return nil, errUnknownSession
	}
	return ls, nil
}

func (t *sessionTable) remove(id string) (*liveSession, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ls, ok := t.items[id]
	if !ok {
		return nil, errUnknownSession
	}
	delete(t.items, id)
	return ls, nil
}

func (t *sessionTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

func (t *sessionTable) closeAll() {
	t.mu.Lock()
	items := make([]*liveSession, 0, len(t.items))
	for id, ls := range t.items {
		items = append(items, ls)
		delete(t.items, id)
	}
	t.mu.Unlock()

	for _, ls := range items {
		ls.stop()
	}
}

func parsePreset(name string) (config.DifficultyPreset, error) {
	p, err := config.ParsePreset(name)
	if err != nil {
		return p, fmt.Errorf("unknown preset %q", name)
	}
	return p, nil
}

// CreateSessionRequest starts a live session.
type CreateSessionRequest struct {
	Game   string `json:"game"`
	Seed   int64  `json:"seed,omitempty"`
	Preset string `json:"preset,omitempty"`
}

// SessionResponse describes a live session.
type SessionResponse struct {
	ID       string          `json:"id"`
	Game     string          `json:"game"`
	Seed     int64           `json:"seed"`
	Created  time.Time       `json:"created"`
	Snapshot engine.Snapshot `json:"snapshot"`
	Stars    int             `json:"stars,omitempty"`
	NewBest  bool            `json:"newBest,omitempty"`
}

func (ls *liveSession) view() SessionResponse {
	ls.mu.Lock()
	res := ls.result
	seed := ls.cfg.Seed
	ls.mu.Unlock()

	resp := SessionResponse{
		ID:       ls.id,
		Game:     ls.game.ID(),
		Seed:     seed,
		Created:  ls.created,
		Snapshot: ls.game.Session().Snapshot(),
	}
	if res != nil {
		resp.Stars = res.Stars
		resp.NewBest = res.NewBest
	}
	return resp
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Preset == "" {
		req.Preset = s.preset
	}
	if _, err := parsePreset(req.Preset); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	g, err := registry.Create(req.Game)
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown game %q", req.Game))
		return
	}

	cfg := core.DefaultConfig()
	cfg.Preset = req.Preset
	cfg.Seed = req.Seed
	g.Reset(cfg)

	ls := &liveSession{
		id:        uuid.NewString(),
		game:      g,
		cfg:       cfg,
		clock:     engine.NewClock(),
		tracker:   scores.NewTracker(s.book, g.ID(), g.Scale()),
		created:   time.Now(),
		fixedSeed: req.Seed != 0,
		pending:   core.NewInputFrame(),
	}
	if s.store != nil {
		ls.tracker = ls.tracker.WithHistory(s.store)
	}
	ls.clock.OnTick(ls.onTick)
	g.Session().OnTerminal(ls.onTerminal)

	if err := s.sessions.add(ls); err != nil {
		s.writeError(w, r, http.StatusTooManyRequests, err.Error())
		return
	}
	ls.start()
	s.logger.Info("live session started", "id", ls.id, "game", g.ID())

	s.writeJSON(w, http.StatusCreated, ls.view())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	ls, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, ls.view())
}

// InputRequest carries one action name: up, down, left, right, tap, start
// or restart.
type InputRequest struct {
	Action string `json:"action"`
}

func (s *Server) handleSessionInput(w http.ResponseWriter, r *http.Request) {
	ls, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, err.Error())
		return
	}

	var req InputRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	action, ok := core.ParseAction(req.Action)
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, fmt.Sprintf("unknown action %q", req.Action))
		return
	}

	switch action {
	case core.ActionStart, core.ActionRestart:
		if !ls.game.State().Over() {
			s.writeError(w, r, http.StatusConflict, "round is still playing")
			return
		}
		ls.start()
	case core.ActionBack, core.ActionQuit:
		s.writeError(w, r, http.StatusBadRequest, "use DELETE to end a session")
		return
	default:
		if !ls.game.State().Playing() {
			s.writeError(w, r, http.StatusConflict, "round is not playing")
			return
		}
		ls.queue(action)
	}
	s.writeJSON(w, http.StatusAccepted, ls.view())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ls, err := s.sessions.remove(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, err.Error())
		return
	}
	ls.stop()
	ls.game.Session().Reset()
	s.logger.Info("live session closed", "id", ls.id, "game", ls.game.ID())
	w.WriteHeader(http.StatusNoContent)
}
