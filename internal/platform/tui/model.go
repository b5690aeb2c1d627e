package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/haptics"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/scores"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

// Deps are the collaborators shared by every game model. Any field may be
// nil: without a Book records stay in memory, without a Store there is no
// round history, without a Vibrator there is no feedback.
type Deps struct {
	Book     *scores.Book
	Store    *storage.Store
	Vibrator haptics.Vibrator
	Logger   *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	if d.Book == nil {
		var kv scores.KV
		if d.Store != nil {
			kv = d.Store
		}
		d.Book = scores.NewBook(kv, d.Logger)
	}
	if d.Vibrator == nil {
		d.Vibrator = haptics.Nop{}
	}
	return d
}

// round is the part of a game model that the session's terminal callback
// writes to. It is shared by pointer so every copy of the model sees it.
type round struct {
	tracker  *scores.Tracker
	vibrator haptics.Vibrator
	logger   *log.Logger
	result   *scores.Result
}

func (r *round) finish(snap engine.Snapshot) {
	if res, ok := r.tracker.Submit(snap.Score); ok {
		r.result = &res
	}
	pattern := haptics.GameOver
	if snap.Phase == engine.PhaseWon {
		pattern = haptics.Victory
	}
	haptics.Fire(r.vibrator, pattern, r.logger)
	r.logger.Debug("round over", "phase", snap.Phase, "score", snap.Score, "reason", snap.Reason)
}

// GameModel runs one game: idle until Enter, playing on a tea.Tick loop at
// the game's own interval, then a result screen with restart and back.
type GameModel struct {
	id         uint64
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	fixedSeed  bool
	round      *round
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	quitOnBack bool
}

// NewGameModel creates a game model and prepares an idle round.
func NewGameModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) GameModel {
	deps = deps.withDefaults()
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)
	tracker := scores.NewTracker(deps.Book, game.ID(), game.Scale())
	if deps.Store != nil {
		tracker = tracker.WithHistory(deps.Store)
	}
	r := &round{
		tracker:  tracker,
		vibrator: deps.Vibrator,
		logger:   deps.Logger.WithPrefix(game.ID()),
	}
	game.Session().OnTerminal(r.finish)

	return GameModel{
		id:         modelSeq.Add(1),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps,
		config:     cfg,
		fixedSeed:  fixed,
		round:      r,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the tick loop. Ticks keep arriving while idle or finished;
// the session ignores them.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval(), m.id)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Model != m.id {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input. Lifecycle keys act at once; game
// actions are collected into the frame for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.deps.Logger.Warn("could not save screenshot", "error", err)
		} else {
			m.deps.Logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionStart:
		if m.gameState.Phase == core.PhaseIdle {
			m.start()
		} else if m.gameState.Over() {
			m.restart()
		}
	case core.ActionRestart:
		if m.gameState.Over() {
			m.restart()
		}
	case core.ActionBack:
		m.game.Session().Reset()
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m *GameModel) start() {
	m.round.tracker.Arm()
	m.round.result = nil
	m.game.Session().Start()
	m.inputFrame.Clear()
	m.gameState = m.game.State()
}

// restart reconfigures the game, with a fresh seed unless one was given,
// and starts a new round right away.
func (m *GameModel) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.start()
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.Playing() {
		before := m.gameState.Score
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		if m.gameState.Playing() && m.gameState.Score > before {
			haptics.Fire(m.deps.Vibrator, haptics.Success, m.deps.Logger)
		}
	}
	m.inputFrame.Clear()
	return m, tickCmd(m.game.TickInterval(), m.id)
}

// saveScreenshot saves the current screen to ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() (string, error) {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// render draws the game and, outside play, the phase overlay.
func (m GameModel) render() {
	m.screen.Clear()
	m.game.Render(m.screen)
	drawOverlay(m.screen, m.overlay())
}

func (m GameModel) overlay() []overlayLine {
	switch {
	case m.gameState.Phase == core.PhaseIdle:
		lines := []overlayLine{
			{m.game.Title(), core.ColorCyan},
			{m.game.Description(), core.ColorDefault},
		}
		if best := m.round.tracker.Best(); !best.Empty() {
			lines = append(lines, overlayLine{
				fmt.Sprintf("Best: %d %s", best.BestScore, starLine(best.BestStars)), core.ColorYellow,
			})
		}
		return append(lines, overlayLine{"Press Enter to start", core.ColorGreen})

	case m.gameState.Over():
		title := overlayLine{"Game over", core.ColorRed}
		if m.gameState.Phase == core.PhaseWon {
			title = overlayLine{"You won!", core.ColorGreen}
		}
		lines := []overlayLine{title, {fmt.Sprintf("Score: %d", m.gameState.Score), core.ColorYellow}}
		if res := m.round.result; res != nil {
			lines = append(lines, overlayLine{starLine(res.Stars), core.ColorYellow})
			if res.NewBest {
				lines = append(lines, overlayLine{"New best!", core.ColorMagenta})
			}
		}
		return append(lines, overlayLine{"R: play again   B: menu   Q: quit", core.ColorGray})
	}
	return nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits or goes
// back.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, deps, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
