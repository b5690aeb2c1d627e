package config

import (
	"embed"

	"github.com/vovakirdan/kids-arcade/internal/scores"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
func GetDefaultYAML(gameID string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}

func higher(thresholds ...int) scores.StarScale {
	return scores.StarScale{Direction: scores.HigherIsBetter, Thresholds: thresholds}
}

// DefaultRunner returns the built-in auto-runner configuration.
func DefaultRunner() RunnerConfig {
	return RunnerConfig{
		Common: Common{TickMs: 16, Stars: higher(5, 10, 20)},
		Field:  FieldConfig{Width: 400, Height: 232, Margin: 60},
		Player: RunnerPlayer{X: 60, Width: 44, Height: 44},
		Physics: RunnerPhysics{
			Gravity:     0.55,
			JumpImpulse: 14,
		},
		Ramp: RampConfig{Initial: 2.2, Max: 5, PerTick: 0.0002},
		Spawn: RunnerSpawn{
			Threshold:    220,
			HazardWeight: 0.65,
			Edge:         410,
			HazardLanes:  []float64{0},
			CollectLanes: []float64{0, 50},
			ScaleMin:     0.7,
			ScaleMax:     1.3,
		},
		Hazards: []RunnerHazard{
			{Variant: "boulder", Size: 38},
			{Variant: "mole", Size: 30},
		},
		Collectible: RunnerCollectible{Variant: "ball", Width: 24, Height: 44, Reward: 1},
		Collision:   RunnerCollision{HazardShrink: 0.25},
	}
}

// DefaultMaze returns the built-in maze chase configuration.
func DefaultMaze() MazeConfig {
	return MazeConfig{
		Common: Common{
			TickMs: 100,
			Rules:  RulesConfig{Won: "counters.pellets == 0 && score > 0"},
			Stars:  higher(50, 200, 500),
		},
		Layout: []string{
			"###############",
			"#o.....#.....o#",
			"#.##.#.#.#.##.#",
			"#.............#",
			"#.##.#####.##.#",
			"#......#......#",
			"####.#   #.####",
			"   #.# # #.#   ",
			"####.#   #.####",
			"#...... ......#",
			"#.##.#####.##.#",
			"#......#......#",
			"#.##.#.#.#.##.#",
			"#o...........o#",
			"###############",
		},
		PlayerStart:  [2]int{7, 9},
		GhostStarts:  [][2]int{{6, 7}, {8, 7}},
		GhostHome:    [2]int{7, 6},
		PlayerEvery:  2,
		GhostEvery:   5,
		PowerTicks:   100,
		CandyPoints:  10,
		PowerPoints:  50,
		GhostPoints:  200,
		TunnelsWrapX: true,
	}
}

// DefaultSnake returns the built-in snake configuration.
func DefaultSnake() SnakeConfig {
	return SnakeConfig{
		Common: Common{
			TickMs: 25,
			Rules:  RulesConfig{Won: "counters.length >= counters.cells"},
			Stars:  higher(3, 8, 15),
		},
		Grid:           15,
		Start:          [2]int{7, 7},
		Food:           [2]int{3, 3},
		BaseIntervalMs: 250,
		IntervalStepMs: 2,
		MinIntervalMs:  150,
		FoodReward:     1,
	}
}

// DefaultJump returns the built-in jump configuration.
func DefaultJump() JumpConfig {
	return JumpConfig{
		Common: Common{
			TickMs: 50,
			Rules: RulesConfig{
				Won:  "counters.landed == 1 && score > 0",
				Lost: "counters.landed == 1 && score == 0",
			},
			Stars: higher(8, 20, 40),
		},
		ChargeMs:     8000,
		FlightMs:     3000,
		TapHeight:    2,
		RandomHeight: 5,
	}
}

// DefaultOrchard returns the built-in orchard configuration.
func DefaultOrchard() OrchardConfig {
	return OrchardConfig{
		Common: Common{
			TickMs: 50,
			Rules: RulesConfig{
				Won:  "counters.apples > 0 && counters.ripe == counters.apples",
				Lost: "counters.apples == 0",
			},
			Stars: higher(1, 4, 6),
		},
		Apples:         6,
		RipenPerTick:   0.125,
		BirdIntervalMs: 5000,
		ApproachSpeed:  1.0,
		FleeSpeed:      2.0,
		EatTicks:       10,
		ReachFromRight: 65,
		ReachFromLeft:  25,
		Praise:         []string{"Great!", "Nice!", "Super!", "Good!"},
	}
}

// DefaultMemory returns the built-in memory configuration.
func DefaultMemory() MemoryConfig {
	return MemoryConfig{
		Common: Common{
			TickMs: 50,
			Rules:  RulesConfig{Won: "counters.pairs > 0 && counters.matched == counters.pairs"},
			Stars: scores.StarScale{
				Direction:  scores.LowerIsBetter,
				Thresholds: []int{20, 12},
				Floor:      1,
			},
		},
		Columns: 4,
		Symbols: []string{"fox", "owl", "frog", "bee", "cat", "fish", "duck", "bear"},
		HideMs:  1000,
	}
}

// DefaultMachines returns the machines edition of memory: four vehicle
// pairs around a star in a three by three grid.
func DefaultMachines() MemoryConfig {
	return MemoryConfig{
		Common: Common{
			TickMs: 50,
			Rules:  RulesConfig{Won: "counters.pairs > 0 && counters.matched == counters.pairs"},
			Stars: scores.StarScale{
				Direction:  scores.LowerIsBetter,
				Thresholds: []int{7, 5},
				Floor:      1,
			},
		},
		Columns: 3,
		Symbols: []string{"tractor", "firetruck", "train", "plane"},
		Wild:    "star",
		HideMs:  1000,
	}
}

// DefaultToss returns the built-in ball toss configuration.
func DefaultToss() TossConfig {
	return TossConfig{
		Common: Common{
			TickMs: 50,
			Rules: RulesConfig{
				Won:  "counters.finished == 1 && score > 0",
				Lost: "counters.finished == 1 && score == 0",
			},
			Stars: higher(1, 3, 5),
		},
		Rounds:    5,
		Attempts:  3,
		CycleMs:   2500,
		SweetHalf: 15,
		Near:      0.4,
		Far:       0.9,
		ThrowMs:   1000,
		ShakeMs:   1500,
		PauseMs:   1200,
		Targets:   []string{"bunny", "fox", "duck", "frog", "owl", "hedgehog", "squirrel", "mouse"},
	}
}

// DefaultQuiz returns the built-in guessing game configuration.
func DefaultQuiz() QuizConfig {
	return QuizConfig{
		Common: Common{
			TickMs: 50,
			Rules:  RulesConfig{Won: "counters.finished == 1"},
			Stars: scores.StarScale{
				Direction:  scores.HigherIsBetter,
				Thresholds: []int{7, 10},
				Floor:      1,
			},
		},
		Rounds:   10,
		Choices:  4,
		RevealMs: 1500,
		Animals: []QuizAnimal{
			{Name: "cat", Clue: "says meow"},
			{Name: "dog", Clue: "wags its tail"},
			{Name: "cow", Clue: "gives milk"},
			{Name: "duck", Clue: "says quack"},
			{Name: "owl", Clue: "hoots at night"},
			{Name: "frog", Clue: "jumps in the pond"},
			{Name: "bee", Clue: "makes honey"},
			{Name: "fish", Clue: "swims all day"},
			{Name: "horse", Clue: "says neigh"},
			{Name: "sheep", Clue: "has a woolly coat"},
			{Name: "pig", Clue: "rolls in the mud"},
			{Name: "lion", Clue: "has a big mane"},
			{Name: "snail", Clue: "carries its house"},
			{Name: "bear", Clue: "sleeps all winter"},
		},
	}
}

// DefaultTractor returns the built-in harvest configuration.
func DefaultTractor() TractorConfig {
	return TractorConfig{
		Common: Common{
			TickMs: 50,
			Rules:  RulesConfig{Won: "counters.crops > 0 && score == counters.crops"},
			Stars:  higher(3, 6, 9),
		},
		Grid:  5,
		Crops: 9,
		Start: [2]int{0, 0},
	}
}

// DefaultFiretruck returns the built-in fire truck configuration.
func DefaultFiretruck() FiretruckConfig {
	return FiretruckConfig{
		Common: Common{
			TickMs: 50,
			Rules:  RulesConfig{Won: "counters.goal > 0 && score >= counters.goal"},
			Stars:  higher(4, 7, 10),
		},
		Columns:      4,
		Spots:        8,
		MaxFires:     3,
		GrowTicks:    80,
		DouseTicks:   10,
		RespawnTicks: 40,
		Goal:         10,
	}
}

// DefaultCarwash returns the built-in car wash configuration.
func DefaultCarwash() CarwashConfig {
	return CarwashConfig{
		Common: Common{
			TickMs: 50,
			Rules:  RulesConfig{Won: "counters.cars > 0 && score >= counters.cars"},
			Stars:  higher(1, 2, 3),
		},
		Cars:    3,
		Columns: 8,
		Rows:    3,
		Layouts: [][][2]int{
			{{1, 1}, {2, 0}, {3, 2}, {5, 0}, {5, 1}, {6, 1}},
			{{0, 1}, {2, 2}, {4, 0}, {4, 2}, {6, 0}, {7, 2}},
			{{1, 2}, {2, 0}, {3, 1}, {4, 1}, {5, 2}, {6, 0}},
		},
		Colors:   []string{"red", "blue", "purple"},
		DepartMs: 1250,
	}
}

// DefaultDigger returns the built-in digger configuration.
func DefaultDigger() DiggerConfig {
	return DiggerConfig{
		Common: Common{
			TickMs: 50,
			Rules:  RulesConfig{Won: "counters.goal > 0 && counters.trucks >= counters.goal"},
			Stars:  higher(1, 2, 4),
		},
		Slots:         3,
		LoadsPerTruck: 2,
		Trucks:        2,
		ScoopMs:       1500,
		RefillMs:      600,
		Items:         []string{"dinosaur", "frog", "teddy", "pizza", "rocket", "star", "diamond", "rock"},
		Praise:        []string{"Great!", "Nice!", "Super!", "Good!"},
	}
}
