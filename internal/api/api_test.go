package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kids-arcade/internal/engine"
	_ "github.com/vovakirdan/kids-arcade/internal/games/jump"
	_ "github.com/vovakirdan/kids-arcade/internal/games/memory"
	_ "github.com/vovakirdan/kids-arcade/internal/games/snake"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/scores"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

func newTestServer(t *testing.T, opts Options) (*Server, http.Handler) {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	srv := NewServer(opts)
	t.Cleanup(srv.Close)
	return srv, srv.Routes()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out), w.Body.String())
	return out
}

func TestHealthEndpoint(t *testing.T) {
	_, h := newTestServer(t, Options{})

	w := do(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[HealthResponse](t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.GreaterOrEqual(t, resp.Games, 3)
	assert.False(t, resp.History)
}

func TestGamesEndpoint(t *testing.T) {
	_, h := newTestServer(t, Options{})

	w := do(t, h, http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[GamesResponse](t, w)
	assert.Equal(t, registry.List(), resp.Games)
}

func TestScoresEndpoints(t *testing.T) {
	book := scores.NewBook(nil, log.New(io.Discard))
	book.Submit("snake", 7, 1, scores.HigherIsBetter)
	book.Submit("snake", 4, 2, scores.HigherIsBetter)
	_, h := newTestServer(t, Options{Book: book})

	w := do(t, h, http.MethodGet, "/api/v1/scores", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[ScoresResponse](t, w)
	assert.Equal(t, []RecordView{{Game: "snake", BestScore: 7, BestStars: 2}}, all.Records)

	w = do(t, h, http.MethodGet, "/api/v1/scores/snake", nil)
	require.Equal(t, http.StatusOK, w.Code)
	one := decode[GameScoresResponse](t, w)
	assert.Equal(t, 7, one.BestScore)
	assert.Empty(t, one.Recent)

	w = do(t, h, http.MethodGet, "/api/v1/scores/pinball", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, decode[ErrorResponse](t, w).Error)

	w = do(t, h, http.MethodGet, "/api/v1/scores/snake?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScoresWithHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	_, err = store.SaveScore("jump", 12, 1)
	require.NoError(t, err)

	_, h := newTestServer(t, Options{Store: store})
	w := do(t, h, http.MethodGet, "/api/v1/scores/jump", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[GameScoresResponse](t, w)
	require.Len(t, resp.Recent, 1)
	assert.Equal(t, 12, resp.Recent[0].Score)
}

func TestSimulateIsDeterministic(t *testing.T) {
	_, h := newTestServer(t, Options{})
	req := SimulateRequest{
		Game:  "jump",
		Seed:  9,
		Ticks: 1000,
		Inputs: []registry.Input{
			{Tick: 3, Action: "tap"}, {Tick: 6, Action: "tap"}, {Tick: 9, Action: "jump"},
		},
	}

	first := do(t, h, http.MethodPost, "/api/v1/simulate", req)
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	second := do(t, h, http.MethodPost, "/api/v1/simulate", req)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	resp := decode[SimulateResponse](t, first)
	assert.True(t, resp.Snapshot.Phase.Terminal())
	assert.Equal(t, 3, resp.Snapshot.Counters["taps"])
}

func TestSimulateRejectsBadRequests(t *testing.T) {
	_, h := newTestServer(t, Options{})

	tests := []struct {
		name string
		body any
		code int
	}{
		{"unknown game", SimulateRequest{Game: "pinball", Ticks: 10}, http.StatusNotFound},
		{"no ticks", SimulateRequest{Game: "jump"}, http.StatusBadRequest},
		{"too many ticks", SimulateRequest{Game: "jump", Ticks: registry.MaxReplayTicks + 1}, http.StatusBadRequest},
		{"unknown action", SimulateRequest{Game: "jump", Ticks: 5, Inputs: []registry.Input{{Tick: 1, Action: "fly"}}}, http.StatusBadRequest},
		{"unknown preset", SimulateRequest{Game: "jump", Ticks: 5, Preset: "nightmare"}, http.StatusBadRequest},
		{"unknown field", map[string]any{"game": "jump", "ticks": 5, "speed": 9}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/api/v1/simulate", tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestLiveSessionLifecycle(t *testing.T) {
	_, h := newTestServer(t, Options{})

	w := do(t, h, http.MethodPost, "/api/v1/sessions", CreateSessionRequest{Game: "snake", Seed: 3})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[SessionResponse](t, w)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "snake", created.Game)
	assert.Equal(t, int64(3), created.Seed)
	assert.Equal(t, engine.PhasePlaying, created.Snapshot.Phase)

	path := "/api/v1/sessions/" + created.ID
	assert.Eventually(t, func() bool {
		w := do(t, h, http.MethodGet, path, nil)
		return w.Code == http.StatusOK && decode[SessionResponse](t, w).Snapshot.Tick > 0
	}, 2*time.Second, 20*time.Millisecond, "the server clock advances the session")

	w = do(t, h, http.MethodPost, path+"/input", InputRequest{Action: "left"})
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = do(t, h, http.MethodPost, path+"/input", InputRequest{Action: "fly"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, path+"/input", InputRequest{Action: "restart"})
	assert.Equal(t, http.StatusConflict, w.Code, "restart needs a finished round")

	w = do(t, h, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, h, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLiveSessionRecordsFinishedRound(t *testing.T) {
	book := scores.NewBook(nil, log.New(io.Discard))
	_, h := newTestServer(t, Options{Book: book})

	// Snake heads up from the start cell and hits the wall without input.
	w := do(t, h, http.MethodPost, "/api/v1/sessions", CreateSessionRequest{Game: "snake", Seed: 1, Preset: "hard"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[SessionResponse](t, w).ID

	var final SessionResponse
	require.Eventually(t, func() bool {
		w := do(t, h, http.MethodGet, "/api/v1/sessions/"+id, nil)
		final = decode[SessionResponse](t, w)
		return final.Snapshot.Phase.Terminal()
	}, 10*time.Second, 50*time.Millisecond)
	assert.Equal(t, engine.PhaseGameOver, final.Snapshot.Phase)

	// A zero score is never recorded.
	assert.Equal(t, scores.Record{}, book.Get("snake"))

	w = do(t, h, http.MethodPost, "/api/v1/sessions/"+id+"/input", InputRequest{Action: "start"})
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, engine.PhasePlaying, decode[SessionResponse](t, w).Snapshot.Phase)
}

func TestSessionLimit(t *testing.T) {
	_, h := newTestServer(t, Options{MaxSessions: 1})

	w := do(t, h, http.MethodPost, "/api/v1/sessions", CreateSessionRequest{Game: "memory"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, h, http.MethodPost, "/api/v1/sessions", CreateSessionRequest{Game: "memory"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = do(t, h, http.MethodPost, "/api/v1/sessions", CreateSessionRequest{Game: "pinball"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
