package ecosort

import (
	"testing"

	"github.com/vovakirdan/ecosort/internal/config"
)

func defaultRules() Rules {
	return RulesFromConfig(config.DefaultEcoSortConfig().Scoring)
}

func TestPoints(t *testing.T) {
	r := defaultRules()

	tests := []struct {
		name       string
		combo      int
		multiplier float64
		want       int
	}{
		{"no combo", 0, 1, 5},
		{"combo 1", 1, 1, 7},
		{"combo 4", 4, 1, 13},
		{"combo 4 boosted x3", 4, 3, 39},
		{"fractional multiplier floors", 1, 1.5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Points(tt.combo, tt.multiplier); got != tt.want {
				t.Errorf("Points(%d, %g) = %d, want %d", tt.combo, tt.multiplier, got, tt.want)
			}
		})
	}
}

func TestScoreCorrectUsesComboBeforeIncrement(t *testing.T) {
	r := defaultRules()
	s := NewState(r)
	s.Combo = 4
	s.Effects.ActivateComboBoost(3, 10)

	pts := s.ScoreCorrect(r)

	if pts != 39 {
		t.Errorf("points = %d, want 39", pts)
	}
	if s.Score != 39 {
		t.Errorf("score = %d, want 39", s.Score)
	}
	if s.Combo != 5 {
		t.Errorf("combo = %d, want 5", s.Combo)
	}
}

func TestResourceStaysInRange(t *testing.T) {
	r := defaultRules()
	s := NewState(r)

	s.ScoreCorrect(r)
	if s.Reputation != 100 {
		t.Errorf("reputation after gain at max = %d, want 100", s.Reputation)
	}

	for range 15 {
		s.ScoreIncorrect(r)
		if s.Reputation < 0 || s.Reputation > r.MaxResource {
			t.Fatalf("reputation %d out of range", s.Reputation)
		}
	}
	if s.Reputation != 0 {
		t.Errorf("reputation = %d, want 0", s.Reputation)
	}
	if !s.Depleted() {
		t.Error("expected depleted state")
	}
}

func TestBossUsesPlayerLife(t *testing.T) {
	r := defaultRules()
	s := NewState(r)
	s.Phase = PhaseBoss
	s.PlayerLife = 50
	s.Reputation = 70

	s.ScoreIncorrect(r)

	if s.PlayerLife != 40 {
		t.Errorf("player life = %d, want 40", s.PlayerLife)
	}
	if s.Reputation != 70 {
		t.Errorf("reputation changed during boss fight: %d", s.Reputation)
	}
}

func TestComboResets(t *testing.T) {
	r := defaultRules()

	tests := []struct {
		name  string
		apply func(s *State)
		want  int
	}{
		{"incorrect sort", func(s *State) { s.ScoreIncorrect(r) }, 0},
		{"unabsorbed miss", func(s *State) { s.ApplyMisses(1, r) }, 0},
		{"timeout", func(s *State) { s.TickCombo(r.ComboTimeout, r) }, 0},
		{"short idle keeps combo", func(s *State) { s.TickCombo(r.ComboTimeout/2, r) }, 3},
		{"absorbed miss keeps combo", func(s *State) {
			s.Effects.AddShield(1)
			s.ApplyMisses(1, r)
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(r)
			s.Combo = 3
			tt.apply(&s)
			if s.Combo != tt.want {
				t.Errorf("combo = %d, want %d", s.Combo, tt.want)
			}
		})
	}
}

func TestComboIdleResetsOnCorrect(t *testing.T) {
	r := defaultRules()
	s := NewState(r)
	s.Combo = 2
	s.TickCombo(4, r)
	s.ScoreCorrect(r)
	s.TickCombo(4, r)

	if s.Combo != 3 {
		t.Errorf("combo = %d, want 3 (idle timer should restart on a correct sort)", s.Combo)
	}
}

func TestShieldAbsorbsMisses(t *testing.T) {
	r := defaultRules()
	s := NewState(r)
	s.Effects.AddShield(2)

	absorbed := s.ApplyMisses(3, r)

	if absorbed != 2 {
		t.Errorf("absorbed = %d, want 2", absorbed)
	}
	if s.Effects.ShieldCharges != 0 {
		t.Errorf("shield = %d, want 0", s.Effects.ShieldCharges)
	}
	if want := 100 - r.MissPenalty; s.Reputation != want {
		t.Errorf("reputation = %d, want %d", s.Reputation, want)
	}
}

func TestMissesScaleWithCount(t *testing.T) {
	r := defaultRules()
	s := NewState(r)

	if absorbed := s.ApplyMisses(4, r); absorbed != 0 {
		t.Errorf("absorbed = %d, want 0", absorbed)
	}
	if want := 100 - 4*r.MissPenalty; s.Reputation != want {
		t.Errorf("reputation = %d, want %d", s.Reputation, want)
	}
}

func TestDamageBossClamps(t *testing.T) {
	s := NewState(defaultRules())
	s.BossLife = 10
	s.DamageBoss(20, 100)
	if s.BossLife != 0 {
		t.Errorf("boss life = %d, want 0", s.BossLife)
	}
}
