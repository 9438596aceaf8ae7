package ecosort

import "github.com/vovakirdan/ecosort/internal/core"

// EventKind is a random special event of the Megacenter phase.
type EventKind int

const (
	EventNone EventKind = iota
	EventCollectorStrike
	EventHeavyRain
	EventSystemFailure
)

// Message returns the banner shown while the event is active.
func (k EventKind) Message() string {
	switch k {
	case EventCollectorStrike:
		return "COLLECTOR STRIKE! Waste falls faster!"
	case EventHeavyRain:
		return "HEAVY RAIN! Hazardous waste washed in!"
	case EventSystemFailure:
		return "SYSTEM FAILURE! Combo lost!"
	default:
		return ""
	}
}

// eventState tracks the special event clock.
type eventState struct {
	timer  float64 // Seconds since the last roll or since the event started
	active EventKind
}

// updateEvents rolls for a special event every interval while in the
// Megacenter phase and expires the active one after its duration.
func (g *Game) updateEvents(dt float64) {
	ec := g.cfg.Events
	if !ec.Enabled || g.state.Phase != PhaseMegacenter {
		g.events = eventState{}
		return
	}

	g.events.timer += dt
	if g.events.active != EventNone {
		if g.events.timer >= ec.Duration {
			g.events = eventState{}
		}
		return
	}

	if g.events.timer < ec.Interval {
		return
	}
	g.events.timer = 0
	if g.rng.Intn(100) >= ec.Chance {
		return
	}
	g.triggerEvent(EventKind(1 + g.rng.Intn(3)))
}

// triggerEvent applies the one-off effect of an event and shows its banner.
func (g *Game) triggerEvent(kind EventKind) {
	g.events.active = kind
	g.events.timer = 0

	switch kind {
	case EventCollectorStrike:
		for _, w := range g.field.Wastes() {
			w.FallSpeed *= g.cfg.Events.StrikeSpeedup
		}
	case EventHeavyRain:
		// Hazard drop ignores the active cap. It is the most recently
		// unlocked category, batteries with the default table.
		cats := g.table.Spec(g.state.Phase).Categories
		size := g.cfg.Field.WasteSize
		x := g.rng.Float64() * (g.field.Width() - size)
		g.field.AddWaste(cats[len(cats)-1], core.Vec{X: x, Y: -size}, g.rollFallSpeed())
	case EventSystemFailure:
		g.state.Combo = 0
		g.state.ComboIdle = 0
	}
}
