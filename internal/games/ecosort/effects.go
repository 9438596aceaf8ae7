package ecosort

import (
	"fmt"

	"github.com/vovakirdan/ecosort/internal/core"
)

// Effects holds the timed power-up effects and the shield bank.
// Activating an effect overwrites any running instance of the same effect.
type Effects struct {
	// Time freeze: falling entities move at a reduced speed
	FreezeTarget    float64 // Speed factor at full strength
	FreezeDuration  float64 // Total window length
	FreezeRemaining float64
	FreezeRamp      float64 // Ease in/out length at each end of the window

	// Combo boost: score multiplier
	ComboMultiplier float64
	ComboRemaining  float64

	// Magnet: wastes are steered to their bins
	MagnetRemaining float64

	// Shield: each charge absorbs one miss; not time-limited
	ShieldCharges int
}

// ActivateFreeze starts (or restarts) the time-freeze window.
func (e *Effects) ActivateFreeze(target, duration, ramp float64) {
	e.FreezeTarget = target
	e.FreezeDuration = duration
	e.FreezeRemaining = duration
	e.FreezeRamp = ramp
}

// ActivateComboBoost sets the score multiplier for duration seconds.
func (e *Effects) ActivateComboBoost(multiplier, duration float64) {
	e.ComboMultiplier = multiplier
	e.ComboRemaining = duration
}

// ActivateMagnet turns on the magnet for duration seconds.
func (e *Effects) ActivateMagnet(duration float64) {
	e.MagnetRemaining = duration
}

// AddShield banks additional miss-absorbing charges.
func (e *Effects) AddShield(charges int) {
	e.ShieldCharges += charges
}

// Tick counts every timed effect down by dt and reverts expired ones.
func (e *Effects) Tick(dt float64) {
	if e.FreezeRemaining > 0 {
		e.FreezeRemaining -= dt
		if e.FreezeRemaining <= 0 {
			e.FreezeRemaining = 0
			e.FreezeDuration = 0
		}
	}
	if e.ComboRemaining > 0 {
		e.ComboRemaining -= dt
		if e.ComboRemaining <= 0 {
			e.ComboRemaining = 0
			e.ComboMultiplier = 0
		}
	}
	if e.MagnetRemaining > 0 {
		e.MagnetRemaining -= dt
		if e.MagnetRemaining < 0 {
			e.MagnetRemaining = 0
		}
	}
}

// SpeedFactor returns the global speed factor for falling entities.
// Inside the freeze window the factor eases from 1 down to the target,
// holds, then eases back to 1 as the window closes.
func (e *Effects) SpeedFactor() float64 {
	if e.FreezeRemaining <= 0 {
		return 1
	}

	strength := 1.0
	if e.FreezeRamp > 0 {
		elapsed := e.FreezeDuration - e.FreezeRemaining
		switch {
		case elapsed < e.FreezeRamp:
			strength = core.SmoothStep(elapsed / e.FreezeRamp)
		case e.FreezeRemaining < e.FreezeRamp:
			strength = core.SmoothStep(e.FreezeRemaining / e.FreezeRamp)
		}
	}
	return core.Lerp(1, e.FreezeTarget, strength)
}

// Multiplier returns the active score multiplier (1 when no boost is active).
func (e *Effects) Multiplier() float64 {
	if e.ComboRemaining <= 0 || e.ComboMultiplier <= 0 {
		return 1
	}
	return e.ComboMultiplier
}

// MagnetActive reports whether the magnet is running.
func (e *Effects) MagnetActive() bool {
	return e.MagnetRemaining > 0
}

// Clear removes every effect, including banked shield charges.
func (e *Effects) Clear() {
	*e = Effects{}
}

// Summary renders the active effects for the HUD, e.g. "x2(7) FRZ(3) SH:2".
func (e *Effects) Summary() string {
	result := ""
	add := func(s string) {
		if result != "" {
			result += " "
		}
		result += s
	}

	if e.ComboRemaining > 0 {
		add(fmt.Sprintf("x%g(%d)", e.ComboMultiplier, ceilSecs(e.ComboRemaining)))
	}
	if e.FreezeRemaining > 0 {
		add(fmt.Sprintf("FRZ(%d)", ceilSecs(e.FreezeRemaining)))
	}
	if e.MagnetRemaining > 0 {
		add(fmt.Sprintf("MAG(%d)", ceilSecs(e.MagnetRemaining)))
	}
	if e.ShieldCharges > 0 {
		add(fmt.Sprintf("SH:%d", e.ShieldCharges))
	}
	return result
}

func ceilSecs(s float64) int {
	n := int(s)
	if float64(n) < s {
		n++
	}
	return n
}
