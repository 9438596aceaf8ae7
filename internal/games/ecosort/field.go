package ecosort

import (
	"github.com/vovakirdan/ecosort/internal/config"
	"github.com/vovakirdan/ecosort/internal/core"
)

// Field is the spatial registry of everything on the play field.
// Wastes and pickups are kept in spawn order, which is also hit-test order.
type Field struct {
	cfg     config.FieldConfig
	wastes  []*Waste
	pickups []*Pickup
	bins    []Bin
	nextID  uint64 // Shared by wastes and pickups; survives Clear
}

// NewField creates an empty field.
func NewField(cfg config.FieldConfig) *Field {
	return &Field{cfg: cfg}
}

// Width returns the field width in units.
func (f *Field) Width() float64 { return f.cfg.Width }

// Height returns the field height in units.
func (f *Field) Height() float64 { return f.cfg.Height }

func (f *Field) newID() uint64 {
	f.nextID++
	return f.nextID
}

// AddWaste spawns a waste item falling straight down.
func (f *Field) AddWaste(cat Category, pos core.Vec, fallSpeed float64) *Waste {
	w := &Waste{
		ID:        WasteID(f.newID()),
		Category:  cat,
		Pos:       pos,
		FallSpeed: fallSpeed,
		Size:      f.cfg.WasteSize,
	}
	w.Fall()
	f.wastes = append(f.wastes, w)
	return w
}

// Wastes returns the active wastes in spawn order.
func (f *Field) Wastes() []*Waste {
	return f.wastes
}

// Waste looks an item up by ID. Returns nil if it is gone.
func (f *Field) Waste(id WasteID) *Waste {
	if id == NoWaste {
		return nil
	}
	for _, w := range f.wastes {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// RemoveWaste deletes an item. Returns false if it was already gone.
func (f *Field) RemoveWaste(id WasteID) bool {
	for i, w := range f.wastes {
		if w.ID == id {
			f.wastes = append(f.wastes[:i], f.wastes[i+1:]...)
			return true
		}
	}
	return false
}

// WasteAt returns the first item, in spawn order, whose touch area contains p.
// The item with ID skip is ignored.
func (f *Field) WasteAt(p core.Vec, skip WasteID) *Waste {
	for _, w := range f.wastes {
		if w.ID == skip {
			continue
		}
		if w.Bounds().Expand(f.cfg.TouchMargin).Contains(p) {
			return w
		}
	}
	return nil
}

// AddPickup spawns a power-up pickup.
func (f *Field) AddPickup(kind PowerUpKind, pos core.Vec, vy, size, lifetime float64) *Pickup {
	p := &Pickup{
		ID:       PickupID(f.newID()),
		Kind:     kind,
		Pos:      pos,
		VY:       vy,
		Size:     size,
		Lifetime: lifetime,
	}
	f.pickups = append(f.pickups, p)
	return p
}

// Pickups returns the active pickups in spawn order.
func (f *Field) Pickups() []*Pickup {
	return f.pickups
}

// PickupAt returns the first pickup whose touch area contains p.
func (f *Field) PickupAt(p core.Vec) *Pickup {
	for _, pk := range f.pickups {
		if pk.Bounds().Expand(f.cfg.TouchMargin).Contains(p) {
			return pk
		}
	}
	return nil
}

// RemovePickup deletes a pickup. Returns false if it was already gone.
func (f *Field) RemovePickup(id PickupID) bool {
	for i, pk := range f.pickups {
		if pk.ID == id {
			f.pickups = append(f.pickups[:i], f.pickups[i+1:]...)
			return true
		}
	}
	return false
}

// SetBins installs one bin per category.
func (f *Field) SetBins(categories []Category) {
	f.bins = LayoutBins(categories, f.cfg)
}

// Bins returns the installed bins, left to right.
func (f *Field) Bins() []Bin {
	return f.bins
}

// BinAt returns the bin containing p.
func (f *Field) BinAt(p core.Vec) (Bin, bool) {
	for _, b := range f.bins {
		if b.Bounds.Contains(p) {
			return b, true
		}
	}
	return Bin{}, false
}

// BinFor returns the bin accepting category c.
func (f *Field) BinFor(c Category) (Bin, bool) {
	for _, b := range f.bins {
		if b.Category == c {
			return b, true
		}
	}
	return Bin{}, false
}

// SweepMissed removes every waste whose top edge has passed the bottom
// of the field and returns the removed IDs.
func (f *Field) SweepMissed() []WasteID {
	var missed []WasteID
	kept := f.wastes[:0]
	for _, w := range f.wastes {
		if w.Pos.Y > f.cfg.Height {
			missed = append(missed, w.ID)
			continue
		}
		kept = append(kept, w)
	}
	clear(f.wastes[len(kept):])
	f.wastes = kept
	return missed
}

// UpdatePickups moves pickups and drops expired ones.
func (f *Field) UpdatePickups(dt, speedFactor float64) {
	kept := f.pickups[:0]
	for _, p := range f.pickups {
		if p.Update(dt, speedFactor, f.cfg.Height) {
			kept = append(kept, p)
		}
	}
	clear(f.pickups[len(kept):])
	f.pickups = kept
}

// Clear removes all wastes and pickups. Bins and the ID counter are kept.
func (f *Field) Clear() {
	f.wastes = nil
	f.pickups = nil
}
