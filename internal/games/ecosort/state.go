package ecosort

import (
	"math"

	"github.com/vovakirdan/ecosort/internal/config"
	"github.com/vovakirdan/ecosort/internal/core"
)

// Rules are the scoring constants a State is mutated under.
type Rules struct {
	BasePoints       int
	ComboBonus       int
	ComboTimeout     float64
	CorrectGain      int
	IncorrectPenalty int
	MissPenalty      int
	MaxResource      int
}

// RulesFromConfig extracts the scoring rules from configuration.
func RulesFromConfig(sc config.ScoringConfig) Rules {
	return Rules{
		BasePoints:       sc.BasePoints,
		ComboBonus:       sc.ComboBonus,
		ComboTimeout:     sc.ComboTimeout,
		CorrectGain:      sc.CorrectGain,
		IncorrectPenalty: sc.IncorrectPenalty,
		MissPenalty:      sc.MissPenalty,
		MaxResource:      sc.MaxResource,
	}
}

// Points returns the award for a correct sort: floor((base + bonus*combo) * multiplier).
func (r Rules) Points(combo int, multiplier float64) int {
	return int(math.Floor(float64(r.BasePoints+r.ComboBonus*combo) * multiplier))
}

// State is the complete mutable state of one run.
// Everything here is reset when the game returns to the start screen.
type State struct {
	Screen Screen
	Phase  Phase

	Score      int
	Reputation int // Resource outside the boss fight, 0..MaxResource
	PlayerLife int // Resource inside the boss fight, 0..MaxResource
	BossLife   int

	Combo      int
	ComboIdle  float64 // Seconds since the last correct sort
	BossStreak int     // Consecutive correct sorts in the boss fight

	Selected WasteID
	Effects  Effects

	Paused    bool
	Won       bool // The boss has been defeated
	StoryPage int
	Message   []string // Transition screen text
}

// NewState returns the state of a fresh run sitting on the start screen.
func NewState(r Rules) State {
	return State{
		Screen:     ScreenStart,
		Phase:      PhaseCommunity,
		Reputation: r.MaxResource,
		PlayerLife: r.MaxResource,
	}
}

// InBoss reports whether the boss fight rules are in effect.
func (s *State) InBoss() bool {
	return s.Phase == PhaseBoss
}

// Resource returns the active life resource: player life in the boss
// fight, reputation otherwise.
func (s *State) Resource() int {
	if s.InBoss() {
		return s.PlayerLife
	}
	return s.Reputation
}

func (s *State) adjustResource(delta, maxValue int) {
	if s.InBoss() {
		s.PlayerLife = core.Clamp(s.PlayerLife+delta, 0, maxValue)
		return
	}
	s.Reputation = core.Clamp(s.Reputation+delta, 0, maxValue)
}

// Depleted reports whether the active resource has run out.
func (s *State) Depleted() bool {
	return s.Resource() <= 0
}

// ScoreCorrect applies a correct sort and returns the points awarded.
// Points use the combo value before it is incremented.
func (s *State) ScoreCorrect(r Rules) int {
	pts := r.Points(s.Combo, s.Effects.Multiplier())
	s.Score += pts
	s.Combo++
	s.ComboIdle = 0
	s.adjustResource(r.CorrectGain, r.MaxResource)
	return pts
}

// ScoreIncorrect applies a wrong-bin sort.
func (s *State) ScoreIncorrect(r Rules) {
	s.Combo = 0
	s.ComboIdle = 0
	s.BossStreak = 0
	s.adjustResource(-r.IncorrectPenalty, r.MaxResource)
}

// ApplyMisses charges n missed items. Shield charges absorb misses first;
// absorbed misses cost nothing. Returns the number absorbed.
func (s *State) ApplyMisses(n int, r Rules) int {
	if n <= 0 {
		return 0
	}
	absorbed := min(n, s.Effects.ShieldCharges)
	s.Effects.ShieldCharges -= absorbed

	if rest := n - absorbed; rest > 0 {
		s.Combo = 0
		s.ComboIdle = 0
		s.BossStreak = 0
		s.adjustResource(-r.MissPenalty*rest, r.MaxResource)
	}
	return absorbed
}

// TickCombo advances the combo idle timer and drops the combo after
// ComboTimeout seconds without a correct sort.
func (s *State) TickCombo(dt float64, r Rules) {
	if s.Combo == 0 {
		s.ComboIdle = 0
		return
	}
	s.ComboIdle += dt
	if s.ComboIdle >= r.ComboTimeout {
		s.Combo = 0
		s.ComboIdle = 0
	}
}

// DamageBoss lowers boss life, never below zero.
func (s *State) DamageBoss(n, maxLife int) {
	s.BossLife = core.Clamp(s.BossLife-n, 0, maxLife)
}
