package tui

import (
	"io"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/games/base"
	_ "github.com/vovakirdan/kids-arcade/internal/games/jump"
	_ "github.com/vovakirdan/kids-arcade/internal/games/memory"
	"github.com/vovakirdan/kids-arcade/internal/haptics"
	"github.com/vovakirdan/kids-arcade/internal/scores"
)

// tapper scores one point per tap and is won at three.
type tapper struct {
	base.Game
}

func newTapper() *tapper {
	return &tapper{Game: base.New("tapper", "Tapper", "Tap three times")}
}

func (g *tapper) Reset(rc core.RuntimeConfig) {
	common := config.Common{
		TickMs: 10,
		Stars:  scores.StarScale{Thresholds: []int{1, 2, 3}},
	}
	g.Configure(rc, common, engine.Config{
		Field:  engine.Field{W: 10, H: 10},
		Player: engine.Entity{Kind: engine.KindPlayer, W: 1, H: 1, Active: true},
		Motion: engine.MotionFunc(func(w *engine.World, _ *engine.Entity) {
			if w.Intent().Tap {
				w.AddScore(1)
			}
		}),
		Rules: engine.Rules{Won: func(w *engine.World) bool { return w.Score() >= 3 }},
	})
}

func (g *tapper) Render(dst *core.Screen) {
	base.DrawHUD(dst, g.Title(), g.Session().Snapshot(), "")
}

type recorder struct {
	mu       sync.Mutex
	patterns []haptics.Pattern
}

func (r *recorder) Vibrate(p haptics.Pattern) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns = append(r.patterns, p)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func quietDeps() (Deps, *recorder) {
	logger := log.New(io.Discard)
	rec := &recorder{}
	return Deps{
		Book:     scores.NewBook(nil, logger),
		Vibrator: rec,
		Logger:   logger,
	}, rec
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func send(t *testing.T, m GameModel, msgs ...tea.Msg) GameModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(GameModel)
		require.True(t, ok)
	}
	return m
}

func tick(m GameModel) TickMsg {
	return TickMsg{Model: m.id}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		want   core.Action
		isQuit bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{" ", core.ActionTap, false},
		{"enter", core.ActionStart, false},
		{"r", core.ActionRestart, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}
	for _, tt := range tests {
		action, isQuit := km.MapKey(key(tt.key))
		assert.Equal(t, tt.want, action, tt.key)
		assert.Equal(t, tt.isQuit, isQuit, tt.key)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(key("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(key("down")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(key("enter")))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(key("tab")))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(key("b")))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(key("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(key("x")))
}

func TestGameModelIdleUntilStart(t *testing.T) {
	deps, _ := quietDeps()
	m := NewGameModel(newTapper(), deps, testConfig())
	assert.Equal(t, core.PhaseIdle, m.gameState.Phase)

	m = send(t, m, key(" "), tick(m), tick(m))
	assert.Equal(t, core.PhaseIdle, m.game.State().Phase, "ticks before Enter do nothing")
	assert.Contains(t, m.View(), "Press Enter to start")

	m = send(t, m, key("enter"))
	assert.True(t, m.gameState.Playing())
	assert.NotContains(t, m.View(), "Press Enter to start")
}

func TestGameModelRoundIsRecordedOnce(t *testing.T) {
	deps, rec := quietDeps()
	m := NewGameModel(newTapper(), deps, testConfig())

	m = send(t, m, key("enter"))
	for range 3 {
		m = send(t, m, key(" "), tick(m))
	}
	require.Equal(t, core.PhaseWon, m.gameState.Phase)
	assert.Equal(t, 3, m.gameState.Score)

	require.NotNil(t, m.round.result)
	assert.Equal(t, 3, m.round.result.Stars)
	assert.True(t, m.round.result.NewBest)
	assert.Equal(t, scores.Record{BestScore: 3, BestStars: 3}, deps.Book.Get("tapper"))

	// Two scoring ticks buzz Success; the winning tick buzzes Victory.
	rec.mu.Lock()
	assert.Equal(t, []haptics.Pattern{haptics.Success, haptics.Success, haptics.Victory}, rec.patterns)
	rec.mu.Unlock()

	view := m.View()
	assert.Contains(t, view, "You won!")
	assert.Contains(t, view, "★★★")
	assert.Contains(t, view, "New best!")

	// More ticks after the end change nothing.
	m = send(t, m, tick(m), tick(m))
	assert.Equal(t, scores.Record{BestScore: 3, BestStars: 3}, deps.Book.Get("tapper"))
}

func TestGameModelRestart(t *testing.T) {
	deps, _ := quietDeps()
	m := NewGameModel(newTapper(), deps, testConfig())
	m = send(t, m, key("enter"))
	for range 3 {
		m = send(t, m, key(" "), tick(m))
	}
	require.True(t, m.gameState.Over())

	m = send(t, m, key("r"))
	assert.True(t, m.gameState.Playing())
	assert.Zero(t, m.gameState.Score)
	assert.Nil(t, m.round.result)
	assert.Equal(t, int64(1), m.config.Seed, "an explicit seed is kept across restarts")

	m = send(t, m, key(" "), tick(m))
	assert.Equal(t, 1, m.gameState.Score)
}

func TestGameModelStaleTicksAreDropped(t *testing.T) {
	deps, _ := quietDeps()
	m := NewGameModel(newTapper(), deps, testConfig())
	m = send(t, m, key("enter"), key(" "))

	next, cmd := m.Update(TickMsg{Model: m.id + 1000})
	m = next.(GameModel)
	assert.Nil(t, cmd, "a foreign tick does not continue its loop")
	assert.Zero(t, m.game.Session().Snapshot().Tick)
}

func TestGameModelBackAndQuit(t *testing.T) {
	deps, _ := quietDeps()
	m := NewGameModel(newTapper(), deps, testConfig())
	m = send(t, m, key("enter"), key("esc"))
	assert.True(t, m.BackToMenu())
	assert.Equal(t, engine.PhaseIdle, m.game.Session().Phase())

	m = NewGameModel(newTapper(), deps, testConfig())
	next, cmd := m.Update(key("q"))
	assert.True(t, next.(GameModel).IsQuitting())
	assert.NotNil(t, cmd)
}

func TestMenuListsGamesWithRecords(t *testing.T) {
	deps, _ := quietDeps()
	deps.Book.Submit("memory", 12, 3, scores.LowerIsBetter)

	m := NewMenuModel(deps.Book, testConfig())
	view := m.View()
	assert.Contains(t, view, "Fish Jump")
	assert.Contains(t, view, "★★★ 12")

	next, _ := m.Update(key("tab"))
	assert.True(t, next.(MenuModel).WantsScoreboard())
}

func TestSessionModelFlow(t *testing.T) {
	deps, _ := quietDeps()
	var model tea.Model = NewSessionModel(deps, testConfig(), "kid")

	update := func(msg tea.Msg) {
		model, _ = model.Update(msg)
	}

	update(key("enter"))
	s := model.(SessionModel)
	require.Equal(t, screenGame, s.current)
	assert.Contains(t, s.View(), "Press Enter to start")

	update(key("esc"))
	s = model.(SessionModel)
	assert.Equal(t, screenMenu, s.current)

	update(key("tab"))
	s = model.(SessionModel)
	require.Equal(t, screenScores, s.current)
	assert.Contains(t, s.View(), "HIGH SCORES")

	update(key("esc"))
	assert.Equal(t, screenMenu, model.(SessionModel).current)

	update(key("q"))
	assert.Empty(t, model.View())
}

func TestScoreboardShowsRecord(t *testing.T) {
	deps, _ := quietDeps()
	deps.Book.Submit("jump", 25, 2, scores.HigherIsBetter)

	sb := NewScoreboardModel(deps.Book, nil, 100, 30)
	for i, g := range sb.games {
		if g.ID == "jump" {
			sb.gameCursor = i
			sb.loadScores(g.ID)
		}
	}
	view := sb.View()
	assert.Contains(t, view, "Best: 25  ★★☆")
	assert.Contains(t, view, "No rounds recorded yet.")
	assert.Equal(t, scores.LowerIsBetter, sb.directions["memory"])
}

func TestScoreboardListsEveryGame(t *testing.T) {
	deps, _ := quietDeps()
	deps.Book.Submit("memory", 6, 3, scores.LowerIsBetter)

	sb := NewScoreboardModel(deps.Book, nil, 100, 40)
	view := sb.View()
	for _, g := range sb.games {
		assert.Contains(t, view, g.Title)
	}

	// walk down to memory; the highlight wraps past the last game
	for i := 0; i < len(sb.games) && sb.games[sb.gameCursor].ID != "memory"; i++ {
		next, _ := sb.Update(key("down"))
		sb = next.(ScoreboardModel)
	}
	require.Equal(t, "memory", sb.games[sb.gameCursor].ID)
	assert.Equal(t, sb.gameCursor, sb.table.Cursor())
	assert.Contains(t, sb.View(), "Best: 6  ★★★  (fewer is better)")

	for range sb.games {
		next, _ := sb.Update(key("down"))
		sb = next.(ScoreboardModel)
	}
	assert.Equal(t, "memory", sb.games[sb.gameCursor].ID)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.Clear()
	s.DrawTextColored(0, 0, "hi", core.ColorPink)
	s.DrawTextColored(3, 1, "there", core.ColorBrown)
	out := RenderScreen(s)
	assert.Contains(t, out, "hi")
	assert.Contains(t, out, "there")
	assert.Equal(t, 2, len(strings.Split(out, "\n")))
}

func TestStarLine(t *testing.T) {
	assert.Equal(t, "☆☆☆", starLine(0))
	assert.Equal(t, "★★☆", starLine(2))
	assert.Equal(t, "★★★", starLine(7))
}
