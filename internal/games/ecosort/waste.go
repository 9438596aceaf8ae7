package ecosort

import "github.com/vovakirdan/ecosort/internal/core"

// WasteID identifies a waste item. IDs are never reused within a game,
// so a stale selection can never point at a different item.
type WasteID uint64

// NoWaste is the zero WasteID, meaning "nothing selected".
const NoWaste WasteID = 0

// Waste is a falling item to be sorted.
type Waste struct {
	ID        WasteID
	Category  Category
	Pos       core.Vec // Top-left corner in field units
	Vel       core.Vec // Units per second
	FallSpeed float64  // Straight-down speed used whenever no magnet is steering
	Size      float64
}

// Bounds returns the item's bounding box.
func (w *Waste) Bounds() core.Box {
	return core.NewBox(w.Pos.X, w.Pos.Y, w.Size, w.Size)
}

// Center returns the center of the item.
func (w *Waste) Center() core.Vec {
	return w.Bounds().Center()
}

// Fall resets the velocity to falling straight down.
func (w *Waste) Fall() {
	w.Vel = core.Vec{Y: w.FallSpeed}
}

// Update advances the item by dt seconds scaled by the global speed factor.
func (w *Waste) Update(dt, speedFactor float64) {
	w.Pos = w.Pos.Add(w.Vel.Scale(dt * speedFactor))
}
