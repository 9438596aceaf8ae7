package ecosort

import (
	"github.com/vovakirdan/ecosort/internal/config"
)

// Phase is a difficulty tier. Phases are ordered: Community < Industrial < Megacenter < Boss.
type Phase int

const (
	PhaseCommunity Phase = iota
	PhaseIndustrial
	PhaseMegacenter
	PhaseBoss
	PhaseCount // Sentinel for counting phases
)

// String returns the short name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCommunity:
		return "community"
	case PhaseIndustrial:
		return "industrial"
	case PhaseMegacenter:
		return "megacenter"
	case PhaseBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Next returns the phase after p. The boss phase has no successor.
func (p Phase) Next() (Phase, bool) {
	if p >= PhaseBoss {
		return p, false
	}
	return p + 1, true
}

// PhaseSpec is one row of the phase table.
// Every phase-dependent rule (bins, spawning, thresholds) reads from here.
type PhaseSpec struct {
	Phase         Phase
	Title         string
	Categories    []Category // Spawnable categories; also the bin set
	Threshold     int        // Cumulative score ending the phase, 0 = none
	SpawnInterval float64    // Seconds between waste spawns
	MaxActive     int        // Cap on simultaneously active wastes
	PowerUpChance float64    // Probability per power-up roll
	Background    string
}

// PhaseTable holds the spec of every phase, indexed by Phase.
type PhaseTable [PhaseCount]PhaseSpec

// NewPhaseTable builds the table from configuration.
// The config is expected to be validated; missing rows fall back to
// the previous row so the table is always complete.
func NewPhaseTable(cfg config.EcoSortConfig) PhaseTable {
	var table PhaseTable
	for i := range PhaseCount {
		var pc config.PhaseConfig
		switch {
		case int(i) < len(cfg.Phases):
			pc = cfg.Phases[i]
		case len(cfg.Phases) > 0:
			pc = cfg.Phases[len(cfg.Phases)-1]
		default:
			pc = config.PhaseConfig{Unlocked: int(CategoryCount)}
		}

		level := float64(i)
		interval := cfg.Spawn.BaseInterval - cfg.Spawn.IntervalStep*level
		if interval < cfg.Spawn.MinInterval {
			interval = cfg.Spawn.MinInterval
		}

		unlocked := pc.Unlocked
		if unlocked < 1 {
			unlocked = 1
		}
		if unlocked > int(CategoryCount) {
			unlocked = int(CategoryCount)
		}
		categories := make([]Category, unlocked)
		for c := range categories {
			categories[c] = Category(c)
		}

		title := pc.Title
		if title == "" {
			title = i.String()
		}

		table[i] = PhaseSpec{
			Phase:         i,
			Title:         title,
			Categories:    categories,
			Threshold:     pc.Threshold,
			SpawnInterval: interval,
			MaxActive:     cfg.Spawn.BaseCap + cfg.Spawn.CapStep*int(i),
			PowerUpChance: pc.PowerUpChance,
			Background:    pc.Background,
		}
	}
	return table
}

// Spec returns the row for phase p.
func (t *PhaseTable) Spec(p Phase) PhaseSpec {
	if p < 0 || p >= PhaseCount {
		return t[PhaseCommunity]
	}
	return t[p]
}

// Allows reports whether category c can spawn (and has a bin) in this phase.
func (s PhaseSpec) Allows(c Category) bool {
	for _, cat := range s.Categories {
		if cat == c {
			return true
		}
	}
	return false
}
