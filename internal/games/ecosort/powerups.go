package ecosort

import "github.com/vovakirdan/ecosort/internal/core"

// PowerUpKind represents different types of power-up pickups.
type PowerUpKind int

const (
	PowerUpComboBoost PowerUpKind = iota // Score multiplier for a while
	PowerUpTimeFreeze                    // Slows every falling entity
	PowerUpMagnet                        // Pulls wastes into their bins
	PowerUpShield                        // Banks miss-absorbing charges
	PowerUpBossDamage                    // Hurts the boss; boss fight reward only
	PowerUpKindCount                     // Sentinel for counting kinds
)

// randomKinds are the kinds the timed spawner may pick from.
// BossDamage is deliberately absent; it is only granted for hit streaks.
var randomKinds = []PowerUpKind{
	PowerUpComboBoost,
	PowerUpTimeFreeze,
	PowerUpMagnet,
	PowerUpShield,
}

// Glyph returns the display character for a pickup kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpComboBoost:
		return 'x'
	case PowerUpTimeFreeze:
		return '*'
	case PowerUpMagnet:
		return 'U'
	case PowerUpShield:
		return '#'
	case PowerUpBossDamage:
		return '!'
	default:
		return '?'
	}
}

// String returns the name of the pickup kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpComboBoost:
		return "Combo"
	case PowerUpTimeFreeze:
		return "Freeze"
	case PowerUpMagnet:
		return "Magnet"
	case PowerUpShield:
		return "Shield"
	case PowerUpBossDamage:
		return "Strike"
	default:
		return "?"
	}
}

// Color returns the display color for a pickup kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpComboBoost:
		return core.ColorBrightYellow
	case PowerUpTimeFreeze:
		return core.ColorBrightCyan
	case PowerUpMagnet:
		return core.ColorBrightMagenta
	case PowerUpShield:
		return core.ColorBrightBlue
	case PowerUpBossDamage:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// PickupID identifies a power-up pickup.
type PickupID uint64

// Pickup is a falling power-up the player can tap.
type Pickup struct {
	ID       PickupID
	Kind     PowerUpKind
	Pos      core.Vec // Top-left corner
	VY       float64  // Fall speed in units per second
	Size     float64
	Lifetime float64 // Seconds left before it disappears
}

// Bounds returns the pickup's bounding box.
func (p *Pickup) Bounds() core.Box {
	return core.NewBox(p.Pos.X, p.Pos.Y, p.Size, p.Size)
}

// Update moves the pickup and burns lifetime.
// Returns false once the pickup has expired or left the field.
func (p *Pickup) Update(dt, speedFactor, fieldH float64) bool {
	p.Pos.Y += p.VY * dt * speedFactor
	p.Lifetime -= dt
	return p.Lifetime > 0 && p.Pos.Y <= fieldH
}
