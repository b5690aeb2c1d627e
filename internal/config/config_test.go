package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/kids-arcade/internal/scores"
)

func decodeDefault[T any](t *testing.T, gameID string) T {
	t.Helper()
	data := GetDefaultYAML(gameID)
	require.NotNil(t, data, "missing embedded defaults for %s", gameID)
	var out T
	require.NoError(t, yaml.Unmarshal(data, &out))
	return out
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	assert.Equal(t, DefaultRunner(), decodeDefault[RunnerConfig](t, "runner"))
	assert.Equal(t, DefaultMaze(), decodeDefault[MazeConfig](t, "maze"))
	assert.Equal(t, DefaultSnake(), decodeDefault[SnakeConfig](t, "snake"))
	assert.Equal(t, DefaultJump(), decodeDefault[JumpConfig](t, "jump"))
	assert.Equal(t, DefaultOrchard(), decodeDefault[OrchardConfig](t, "orchard"))
	assert.Equal(t, DefaultMemory(), decodeDefault[MemoryConfig](t, "memory"))
	assert.Equal(t, DefaultMachines(), decodeDefault[MemoryConfig](t, "machines"))
	assert.Equal(t, DefaultToss(), decodeDefault[TossConfig](t, "toss"))
	assert.Equal(t, DefaultQuiz(), decodeDefault[QuizConfig](t, "quiz"))
	assert.Equal(t, DefaultTractor(), decodeDefault[TractorConfig](t, "tractor"))
	assert.Equal(t, DefaultFiretruck(), decodeDefault[FiretruckConfig](t, "firetruck"))
	assert.Equal(t, DefaultCarwash(), decodeDefault[CarwashConfig](t, "carwash"))
	assert.Equal(t, DefaultDigger(), decodeDefault[DiggerConfig](t, "digger"))
}

func TestMissingDefaultYAML(t *testing.T) {
	assert.Nil(t, GetDefaultYAML("pinball"))
}

func TestMazeLayoutIsSquare(t *testing.T) {
	cfg := DefaultMaze()
	for i, row := range cfg.Layout {
		assert.Len(t, row, len(cfg.Layout), "row %d", i)
	}
	at := func(p [2]int) byte { return cfg.Layout[p[1]][p[0]] }
	assert.NotEqual(t, byte('#'), at(cfg.PlayerStart))
	assert.NotEqual(t, byte('#'), at(cfg.GhostHome))
	for _, g := range cfg.GhostStarts {
		assert.NotEqual(t, byte('#'), at(g))
	}
}

func TestMemoryStarsAreLowerIsBetter(t *testing.T) {
	scale := DefaultMemory().Stars
	assert.Equal(t, scores.LowerIsBetter, scale.Direction)
	assert.Equal(t, 3, scale.Stars(12))
	assert.Equal(t, 2, scale.Stars(20))
	assert.Equal(t, 1, scale.Stars(21))
}

func TestMachinesStars(t *testing.T) {
	scale := DefaultMachines().Stars
	assert.Equal(t, 3, scale.Stars(5))
	assert.Equal(t, 2, scale.Stars(7))
	assert.Equal(t, 1, scale.Stars(8))
}

func TestQuizStarsNeverBelowOne(t *testing.T) {
	scale := DefaultQuiz().Stars
	assert.Equal(t, 1, scale.Stars(0))
	assert.Equal(t, 2, scale.Stars(7))
	assert.Equal(t, 3, scale.Stars(10))
}

func TestCarwashLayoutsFitTheCar(t *testing.T) {
	cfg := DefaultCarwash()
	for i, layout := range cfg.Layouts {
		seen := map[[2]int]bool{}
		for _, c := range layout {
			assert.Less(t, c[0], cfg.Columns, "layout %d", i)
			assert.Less(t, c[1], cfg.Rows, "layout %d", i)
			assert.False(t, seen[c], "layout %d repeats %v", i, c)
			seen[c] = true
		}
	}
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: 10\nbase_interval_ms: 300\n"), 0o644))

	cfg, err := LoadSnake(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Grid)
	assert.Equal(t, 300, cfg.BaseIntervalMs)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultSnake().MinIntervalMs, cfg.MinIntervalMs)
	assert.Equal(t, DefaultSnake().Stars, cfg.Stars)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("field: [not, a, map"), 0o644))
	cfg, err := LoadRunner(bad)
	assert.Error(t, err)
	assert.Equal(t, DefaultRunner(), cfg)
}

func TestLoadWithoutOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadMemory("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMemory(), cfg)
}

func TestLoadFromWorkingDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "jump.yaml"), []byte("charge_ms: 4000\n"), 0o644))
	t.Chdir(dir)

	cfg, err := LoadJump("")
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.ChargeMs)
	assert.Equal(t, DefaultJump().FlightMs, cfg.FlightMs)
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", DifficultyNormal, true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			assert.NoError(t, err, tt.in)
		}
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestRampScaled(t *testing.T) {
	r := DefaultRunner().Ramp

	assert.Equal(t, r, r.Scaled(DifficultyNormal))

	fixed := r.Scaled(DifficultyFixed)
	assert.Zero(t, fixed.PerTick)
	assert.Equal(t, r.Initial, fixed.Initial)

	easy := r.Scaled(DifficultyEasy)
	assert.Less(t, easy.Initial, r.Initial)
	assert.Less(t, easy.PerTick, r.PerTick)

	capped := RampConfig{Initial: 5, Max: 5.5, PerTick: 0.1}.Scaled(DifficultyHard)
	assert.GreaterOrEqual(t, capped.Max, capped.Initial)
}

func TestSnakePreset(t *testing.T) {
	cfg := DefaultSnake()
	cfg.ApplyPreset(DifficultyFixed)
	assert.Zero(t, cfg.IntervalStepMs)
	assert.Equal(t, 250, cfg.BaseIntervalMs)

	hard := DefaultSnake()
	hard.ApplyPreset(DifficultyHard)
	assert.Less(t, hard.BaseIntervalMs, 250)
	assert.LessOrEqual(t, hard.MinIntervalMs, hard.BaseIntervalMs)
}

func TestMazePreset(t *testing.T) {
	cfg := DefaultMaze()
	cfg.ApplyPreset(DifficultyEasy)
	assert.Equal(t, 6, cfg.GhostEvery)

	cfg = MazeConfig{GhostEvery: 1}
	cfg.ApplyPreset(DifficultyHard)
	assert.Equal(t, 1, cfg.GhostEvery)
}
