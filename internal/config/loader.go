package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// phaseCount is the number of rows the phase table must have:
// Community, Industrial, Megacenter and Boss.
const phaseCount = 4

// maxCategories is the number of waste categories in the game.
const maxCategories = 7

// Load loads the EcoSort configuration.
// Search order: customPath -> ~/.ecosort/configs/ecosort.yaml -> ./configs/ecosort.yaml -> embedded default
func Load(customPath string) (EcoSortConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("ecosort.yaml"), filepath.Join("configs", "ecosort.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultEcoSortConfig()
	if err := yaml.Unmarshal(defaultEcoSortYAML, &cfg); err != nil {
		return DefaultEcoSortConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads a YAML file on top of the hard-coded defaults so that
// partial files only override what they mention.
func loadFile(path string) (EcoSortConfig, error) {
	cfg := DefaultEcoSortConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ecosort", "configs", filename)
}

// Validate checks the invariants the game relies on.
func (c EcoSortConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, errors.New("field size must be positive"))
	}
	if c.Field.WasteSize <= 0 || c.Field.BinWidth <= 0 || c.Field.BinHeight <= 0 {
		errs = append(errs, errors.New("entity sizes must be positive"))
	}
	if c.Spawn.MinInterval <= 0 {
		errs = append(errs, errors.New("spawn.min_interval must be positive"))
	}
	if c.Spawn.MinFallSpeed <= 0 || c.Spawn.MaxFallSpeed < c.Spawn.MinFallSpeed {
		errs = append(errs, errors.New("spawn fall speeds must satisfy 0 < min <= max"))
	}
	if c.Scoring.MaxResource <= 0 {
		errs = append(errs, errors.New("scoring.max_resource must be positive"))
	}
	if c.Scoring.ComboTimeout <= 0 {
		errs = append(errs, errors.New("scoring.combo_timeout must be positive"))
	}
	if c.PowerUps.ComboMultiplier <= 1 {
		errs = append(errs, errors.New("powerups.combo_multiplier must be greater than 1"))
	}
	if c.PowerUps.Interval <= 0 {
		errs = append(errs, errors.New("powerups.interval must be positive"))
	}
	if c.PowerUps.FreezeRamp < 0 || 2*c.PowerUps.FreezeRamp > c.PowerUps.FreezeDuration {
		errs = append(errs, errors.New("powerups.freeze_ramp must be in 0..freeze_duration/2"))
	}
	if c.Boss.PlayerLife <= 0 || c.Boss.PlayerLife > c.Scoring.MaxResource {
		errs = append(errs, errors.New("boss.player_life must be in 1..scoring.max_resource"))
	}
	if c.Boss.BossLife <= 0 {
		errs = append(errs, errors.New("boss.boss_life must be positive"))
	}

	if len(c.Phases) != phaseCount {
		errs = append(errs, fmt.Errorf("expected %d phases, got %d", phaseCount, len(c.Phases)))
	} else {
		prevThreshold, prevUnlocked := 0, 0
		for i, p := range c.Phases {
			if p.Unlocked < 1 || p.Unlocked > maxCategories {
				errs = append(errs, fmt.Errorf("phase %q: unlocked must be in 1..%d", p.Name, maxCategories))
			}
			if p.Unlocked < prevUnlocked {
				errs = append(errs, fmt.Errorf("phase %q: unlocked categories cannot shrink", p.Name))
			}
			prevUnlocked = p.Unlocked

			// The boss phase ends on boss defeat, not on score
			if i == phaseCount-1 {
				continue
			}
			if p.Threshold <= prevThreshold {
				errs = append(errs, fmt.Errorf("phase %q: threshold must increase monotonically", p.Name))
			}
			prevThreshold = p.Threshold
		}
	}

	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *EcoSortConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust penalties based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.IncorrectPenalty = 6
		cfg.Scoring.MissPenalty = 3
		cfg.PowerUps.ShieldCharges = 3
	case DifficultyHard:
		cfg.Scoring.IncorrectPenalty = 15
		cfg.Scoring.MissPenalty = 8
		cfg.Boss.BossLife = 150
	}
}

// Marshal renders the configuration as YAML.
func Marshal(cfg EcoSortConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
