package ecosort

import "math"

// Snapshot contains the complete run state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Screen     int
	Phase      int
	Score      int
	Reputation int
	PlayerLife int
	BossLife   int
	Combo      int
	BossStreak int
	Selected   uint64
	Shield     int

	// Wastes, 5 values each: ID, Category, X, Y, FallSpeed (positions in milli-units)
	WasteCount int
	WasteData  []int64

	// Pickups, 4 values each: ID, Kind, X, Y
	PickupCount int
	PickupData  []int64

	Event    int
	RNGState uint64
}

func milli(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := &g.state

	wastes := g.field.Wastes()
	wasteData := make([]int64, 0, len(wastes)*5)
	for _, w := range wastes {
		wasteData = append(wasteData,
			int64(w.ID), //#nosec G115 -- IDs are small
			int64(w.Category),
			milli(w.Pos.X),
			milli(w.Pos.Y),
			milli(w.FallSpeed),
		)
	}

	pickups := g.field.Pickups()
	pickupData := make([]int64, 0, len(pickups)*4)
	for _, p := range pickups {
		pickupData = append(pickupData,
			int64(p.ID), //#nosec G115 -- IDs are small
			int64(p.Kind),
			milli(p.Pos.X),
			milli(p.Pos.Y),
		)
	}

	return Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is never negative
		Screen:      int(s.Screen),
		Phase:       int(s.Phase),
		Score:       s.Score,
		Reputation:  s.Reputation,
		PlayerLife:  s.PlayerLife,
		BossLife:    s.BossLife,
		Combo:       s.Combo,
		BossStreak:  s.BossStreak,
		Selected:    uint64(s.Selected),
		Shield:      s.Effects.ShieldCharges,
		WasteCount:  len(wastes),
		WasteData:   wasteData,
		PickupCount: len(pickups),
		PickupData:  pickupData,
		Event:       int(g.events.active),
		RNGState:    g.rng.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Screen)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Reputation)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerLife)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossLife)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossStreak)  //#nosec G115 -- hash computation
	h = h*31 + snap.Selected
	h = h*31 + uint64(snap.Shield)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.WasteCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PickupCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Event)       //#nosec G115 -- hash computation

	for _, v := range snap.WasteData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PickupData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	return h
}
