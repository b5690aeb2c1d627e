package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a game's configuration.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml
// -> embedded default -> fallback. Files are decoded on top of the fallback,
// so a partial file only overrides the keys it names.
func Load[T any](gameID, customPath string, fallback func() T) (T, error) {
	cfg := fallback()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fromFile T = fallback()
		if err := yaml.Unmarshal(data, &fromFile); err == nil {
			return fromFile, nil
		}
	}

	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadRunner loads the auto-runner configuration.
func LoadRunner(customPath string) (RunnerConfig, error) {
	return Load("runner", customPath, DefaultRunner)
}

// LoadMaze loads the maze chase configuration.
func LoadMaze(customPath string) (MazeConfig, error) {
	return Load("maze", customPath, DefaultMaze)
}

// LoadSnake loads the snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return Load("snake", customPath, DefaultSnake)
}

// LoadJump loads the jump configuration.
func LoadJump(customPath string) (JumpConfig, error) {
	return Load("jump", customPath, DefaultJump)
}

// LoadOrchard loads the orchard configuration.
func LoadOrchard(customPath string) (OrchardConfig, error) {
	return Load("orchard", customPath, DefaultOrchard)
}

// LoadMemory loads the memory configuration.
func LoadMemory(customPath string) (MemoryConfig, error) {
	return Load("memory", customPath, DefaultMemory)
}

// LoadMachines loads the machines edition of memory.
func LoadMachines(customPath string) (MemoryConfig, error) {
	return Load("machines", customPath, DefaultMachines)
}

// LoadToss loads the ball toss configuration.
func LoadToss(customPath string) (TossConfig, error) {
	return Load("toss", customPath, DefaultToss)
}

// LoadQuiz loads the guessing game configuration.
func LoadQuiz(customPath string) (QuizConfig, error) {
	return Load("quiz", customPath, DefaultQuiz)
}

// LoadTractor loads the harvest configuration.
func LoadTractor(customPath string) (TractorConfig, error) {
	return Load("tractor", customPath, DefaultTractor)
}

// LoadFiretruck loads the fire truck configuration.
func LoadFiretruck(customPath string) (FiretruckConfig, error) {
	return Load("firetruck", customPath, DefaultFiretruck)
}

// LoadCarwash loads the car wash configuration.
func LoadCarwash(customPath string) (CarwashConfig, error) {
	return Load("carwash", customPath, DefaultCarwash)
}

// LoadDigger loads the digger configuration.
func LoadDigger(customPath string) (DiggerConfig, error) {
	return Load("digger", customPath, DefaultDigger)
}
