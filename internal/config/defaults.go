package config

import (
	_ "embed"
)

//go:embed defaults/ecosort.yaml
var defaultEcoSortYAML []byte

// DefaultEcoSortConfig returns the hard-coded EcoSort configuration.
// It mirrors defaults/ecosort.yaml and is used when the embedded file cannot be parsed.
func DefaultEcoSortConfig() EcoSortConfig {
	return EcoSortConfig{
		Field: FieldConfig{
			Width:       800,
			Height:      600,
			WasteSize:   48,
			TouchMargin: 10,
			BinWidth:    70,
			BinHeight:   90,
			BinY:        500,
		},
		Spawn: SpawnConfig{
			BaseInterval: 2.0,
			IntervalStep: 0.5,
			MinInterval:  0.5,
			BaseCap:      5,
			CapStep:      2,
			MinFallSpeed: 60,
			MaxFallSpeed: 180,
			SpeedStep:    60,
		},
		Scoring: ScoringConfig{
			BasePoints:       5,
			ComboBonus:       2,
			ComboTimeout:     5.0,
			CorrectGain:      2,
			IncorrectPenalty: 10,
			MissPenalty:      5,
			MaxResource:      100,
		},
		Phases: []PhaseConfig{
			{Name: "community", Title: "Community Center", Unlocked: 3, Threshold: 20, PowerUpChance: 0.15, Background: "community"},
			{Name: "industrial", Title: "Industrial Expansion", Unlocked: 5, Threshold: 40, PowerUpChance: 0.25, Background: "industrial"},
			{Name: "megacenter", Title: "Urban Megacenter", Unlocked: 7, Threshold: 60, PowerUpChance: 0.35, Background: "megacenter"},
			{Name: "boss", Title: "The Landfill Baron", Unlocked: 7, Threshold: 0, PowerUpChance: 0.45, Background: "boss"},
		},
		PowerUps: PowerUpConfig{
			Interval:        3.0,
			Lifetime:        6.0,
			FallSpeed:       40,
			Size:            40,
			ComboMultiplier: 2.0,
			ComboDuration:   10.0,
			FreezeFactor:    0.3,
			FreezeDuration:  6.0,
			FreezeRamp:      0.75,
			MagnetDuration:  5.0,
			MagnetRadius:    40,
			MagnetSpeed:     320,
			ShieldCharges:   2,
		},
		Boss: BossConfig{
			PlayerLife:   100,
			BossLife:     100,
			HitDamage:    4,
			PickupDamage: 20,
			StreakReward: 5,
		},
		Events: EventsConfig{
			Enabled:       true,
			Interval:      10.0,
			Chance:        30,
			Duration:      3.0,
			StrikeSpeedup: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 120,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEcoSortYAML
}
