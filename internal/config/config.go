// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "github.com/vovakirdan/kids-arcade/internal/scores"

// Common holds the settings every game has.
type Common struct {
	// TickMs is the simulation tick interval in milliseconds.
	TickMs int `yaml:"tick_ms"`
	// Rules are optional expressions that end a round; see engine.CompilePredicate.
	Rules RulesConfig      `yaml:"rules"`
	Stars scores.StarScale `yaml:"stars"`
}

// RulesConfig holds win/loss expressions.
type RulesConfig struct {
	Won  string `yaml:"won"`
	Lost string `yaml:"lost"`
}

// RampConfig is a linear speed schedule.
type RampConfig struct {
	Initial float64 `yaml:"initial"`
	Max     float64 `yaml:"max"`
	PerTick float64 `yaml:"per_tick"`
}

// FieldConfig is the size of a continuous play field.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

// RunnerConfig configures the auto-runner.
type RunnerConfig struct {
	Common      `yaml:",inline"`
	Field       FieldConfig       `yaml:"field"`
	Player      RunnerPlayer      `yaml:"player"`
	Physics     RunnerPhysics     `yaml:"physics"`
	Ramp        RampConfig        `yaml:"ramp"`
	Spawn       RunnerSpawn       `yaml:"spawn"`
	Hazards     []RunnerHazard    `yaml:"hazards"`
	Collectible RunnerCollectible `yaml:"collectible"`
	Collision   RunnerCollision   `yaml:"collision"`
}

// RunnerPlayer places the runner.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerPhysics defines jump physics.
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// RunnerSpawn defines the spawn cadence and placement.
type RunnerSpawn struct {
	Threshold    float64   `yaml:"threshold"`
	HazardWeight float64   `yaml:"hazard_weight"`
	Edge         float64   `yaml:"edge"`
	HazardLanes  []float64 `yaml:"hazard_lanes"`
	CollectLanes []float64 `yaml:"collect_lanes"`
	ScaleMin     float64   `yaml:"scale_min"`
	ScaleMax     float64   `yaml:"scale_max"`
}

// RunnerHazard is one obstacle variant.
type RunnerHazard struct {
	Variant string  `yaml:"variant"`
	Size    float64 `yaml:"size"`
}

// RunnerCollectible is the pickup.
type RunnerCollectible struct {
	Variant string  `yaml:"variant"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Reward  int     `yaml:"reward"`
}

// RunnerCollision defines hitbox forgiveness.
type RunnerCollision struct {
	HazardShrink  float64 `yaml:"hazard_shrink"`
	CollectShrink float64 `yaml:"collect_shrink"`
}

// MazeConfig configures the maze chase.
type MazeConfig struct {
	Common `yaml:",inline"`
	// Layout rows: '#' wall, '.' candy, 'o' power ball, ' ' empty.
	Layout       []string `yaml:"layout"`
	PlayerStart  [2]int   `yaml:"player_start"`
	GhostStarts  [][2]int `yaml:"ghost_starts"`
	GhostHome    [2]int   `yaml:"ghost_home"`
	PlayerEvery  int      `yaml:"player_every"`
	GhostEvery   int      `yaml:"ghost_every"`
	PowerTicks   int      `yaml:"power_ticks"`
	CandyPoints  int      `yaml:"candy_points"`
	PowerPoints  int      `yaml:"power_points"`
	GhostPoints  int      `yaml:"ghost_points"`
	TunnelsWrapX bool     `yaml:"tunnels_wrap_x"`
}

// SnakeConfig configures the snake.
type SnakeConfig struct {
	Common         `yaml:",inline"`
	Grid           int    `yaml:"grid"`
	Start          [2]int `yaml:"start"`
	Food           [2]int `yaml:"food"`
	BaseIntervalMs int    `yaml:"base_interval_ms"`
	IntervalStepMs int    `yaml:"interval_step_ms"`
	MinIntervalMs  int    `yaml:"min_interval_ms"`
	FoodReward     int    `yaml:"food_reward"`
}

// JumpConfig configures the tap-to-charge jump.
type JumpConfig struct {
	Common       `yaml:",inline"`
	ChargeMs     int     `yaml:"charge_ms"`
	FlightMs     int     `yaml:"flight_ms"`
	TapHeight    float64 `yaml:"tap_height"`
	RandomHeight float64 `yaml:"random_height"`
}

// OrchardConfig configures the apple-tree guarding game.
type OrchardConfig struct {
	Common         `yaml:",inline"`
	Apples         int      `yaml:"apples"`
	RipenPerTick   float64  `yaml:"ripen_per_tick"`
	BirdIntervalMs int      `yaml:"bird_interval_ms"`
	ApproachSpeed  float64  `yaml:"approach_speed"`
	FleeSpeed      float64  `yaml:"flee_speed"`
	EatTicks       int      `yaml:"eat_ticks"`
	ReachFromRight float64  `yaml:"reach_from_right"`
	ReachFromLeft  float64  `yaml:"reach_from_left"`
	Praise         []string `yaml:"praise"`
}

// MemoryConfig configures the pair-matching game.
type MemoryConfig struct {
	Common  `yaml:",inline"`
	Columns int      `yaml:"columns"`
	Symbols []string `yaml:"symbols"`
	// Wild, when set, is a face-up card dealt into the middle of the grid.
	Wild   string `yaml:"wild,omitempty"`
	HideMs int    `yaml:"hide_ms"`
}

// TossConfig configures the ball toss.
type TossConfig struct {
	Common   `yaml:",inline"`
	Rounds   int `yaml:"rounds"`
	Attempts int `yaml:"attempts"`
	// CycleMs is one full power swing, 0 up to 100 and back.
	CycleMs   int      `yaml:"cycle_ms"`
	SweetHalf int      `yaml:"sweet_half"`
	Near      float64  `yaml:"near"`
	Far       float64  `yaml:"far"`
	ThrowMs   int      `yaml:"throw_ms"`
	ShakeMs   int      `yaml:"shake_ms"`
	PauseMs   int      `yaml:"pause_ms"`
	Targets   []string `yaml:"targets"`
}

// QuizConfig configures the guessing game.
type QuizConfig struct {
	Common   `yaml:",inline"`
	Rounds   int          `yaml:"rounds"`
	Choices  int          `yaml:"choices"`
	RevealMs int          `yaml:"reveal_ms"`
	Animals  []QuizAnimal `yaml:"animals"`
}

// QuizAnimal is one answer and the clue shown for it.
type QuizAnimal struct {
	Name string `yaml:"name"`
	Clue string `yaml:"clue"`
}

// TractorConfig configures the harvest field.
type TractorConfig struct {
	Common `yaml:",inline"`
	Grid   int    `yaml:"grid"`
	Crops  int    `yaml:"crops"`
	Start  [2]int `yaml:"start"`
}

// FiretruckConfig configures the fire truck.
type FiretruckConfig struct {
	Common  `yaml:",inline"`
	Columns int `yaml:"columns"`
	Spots   int `yaml:"spots"`
	// MaxFires caps how many fires burn at once.
	MaxFires     int `yaml:"max_fires"`
	GrowTicks    int `yaml:"grow_ticks"`
	DouseTicks   int `yaml:"douse_ticks"`
	RespawnTicks int `yaml:"respawn_ticks"`
	Goal         int `yaml:"goal"`
}

// CarwashConfig configures the car wash.
type CarwashConfig struct {
	Common  `yaml:",inline"`
	Cars    int `yaml:"cars"`
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
	// Layouts are the dirt cells of each car, used in turn.
	Layouts  [][][2]int `yaml:"layouts"`
	Colors   []string   `yaml:"colors"`
	DepartMs int        `yaml:"depart_ms"`
}

// DiggerConfig configures the digger.
type DiggerConfig struct {
	Common        `yaml:",inline"`
	Slots         int      `yaml:"slots"`
	LoadsPerTruck int      `yaml:"loads_per_truck"`
	Trucks        int      `yaml:"trucks"`
	ScoopMs       int      `yaml:"scoop_ms"`
	RefillMs      int      `yaml:"refill_ms"`
	Items         []string `yaml:"items"`
	Praise        []string `yaml:"praise"`
}
