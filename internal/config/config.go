// Package config provides YAML-based game configuration loading and
// difficulty management for EcoSort.
package config

// EcoSortConfig contains all tunable constants of the game.
// Times are in seconds, distances in play-field units.
type EcoSortConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Phases     []PhaseConfig    `yaml:"phases"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Boss       BossConfig       `yaml:"boss"`
	Events     EventsConfig     `yaml:"events"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the virtual play field and entity sizes.
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	WasteSize   float64 `yaml:"waste_size"`
	TouchMargin float64 `yaml:"touch_margin"` // Added around items when hit-testing
	BinWidth    float64 `yaml:"bin_width"`
	BinHeight   float64 `yaml:"bin_height"`
	BinY        float64 `yaml:"bin_y"`
}

// SpawnConfig defines waste spawn cadence and fall speeds.
type SpawnConfig struct {
	BaseInterval float64 `yaml:"base_interval"`
	IntervalStep float64 `yaml:"interval_step"` // Subtracted per phase index
	MinInterval  float64 `yaml:"min_interval"`
	BaseCap      int     `yaml:"base_cap"`
	CapStep      int     `yaml:"cap_step"` // Added per phase index
	MinFallSpeed float64 `yaml:"min_fall_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	SpeedStep    float64 `yaml:"speed_step"` // Fall speeds are multiples of this value
}

// ScoringConfig defines points and resource rules.
type ScoringConfig struct {
	BasePoints       int     `yaml:"base_points"`
	ComboBonus       int     `yaml:"combo_bonus"`
	ComboTimeout     float64 `yaml:"combo_timeout"`
	CorrectGain      int     `yaml:"correct_gain"`
	IncorrectPenalty int     `yaml:"incorrect_penalty"`
	MissPenalty      int     `yaml:"miss_penalty"`
	MaxResource      int     `yaml:"max_resource"`
}

// PhaseConfig is one row of the per-phase table.
type PhaseConfig struct {
	Name          string  `yaml:"name"`
	Title         string  `yaml:"title"`
	Unlocked      int     `yaml:"unlocked"`  // Number of waste categories available
	Threshold     int     `yaml:"threshold"` // Cumulative score ending the phase, 0 = none
	PowerUpChance float64 `yaml:"powerup_chance"`
	Background    string  `yaml:"background"`
}

// PowerUpConfig defines pickup spawning and effect parameters.
type PowerUpConfig struct {
	Interval        float64 `yaml:"interval"`
	Lifetime        float64 `yaml:"lifetime"`
	FallSpeed       float64 `yaml:"fall_speed"`
	Size            float64 `yaml:"size"`
	ComboMultiplier float64 `yaml:"combo_multiplier"`
	ComboDuration   float64 `yaml:"combo_duration"`
	FreezeFactor    float64 `yaml:"freeze_factor"`
	FreezeDuration  float64 `yaml:"freeze_duration"`
	FreezeRamp      float64 `yaml:"freeze_ramp"`
	MagnetDuration  float64 `yaml:"magnet_duration"`
	MagnetRadius    float64 `yaml:"magnet_radius"`
	MagnetSpeed     float64 `yaml:"magnet_speed"`
	ShieldCharges   int     `yaml:"shield_charges"`
}

// BossConfig defines the boss encounter.
type BossConfig struct {
	PlayerLife   int `yaml:"player_life"`
	BossLife     int `yaml:"boss_life"`
	HitDamage    int `yaml:"hit_damage"`    // Boss damage per correct sort
	PickupDamage int `yaml:"pickup_damage"` // Boss damage per BossDamage pickup
	StreakReward int `yaml:"streak_reward"` // Every Nth consecutive hit drops a BossDamage pickup
}

// EventsConfig defines the random special events of the Megacenter phase.
type EventsConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Interval      float64 `yaml:"interval"`
	Chance        int     `yaml:"chance"` // Percent
	Duration      float64 `yaml:"duration"`
	StrikeSpeedup float64 `yaml:"strike_speedup"`
}

// DifficultyConfig defines the fall-speed progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to fall speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
