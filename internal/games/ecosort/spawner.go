package ecosort

import "github.com/vovakirdan/ecosort/internal/core"

// Spawner holds the spawn timers. Timers run in real time; a time freeze
// slows falling entities but not the arrival of new ones.
type Spawner struct {
	wasteTimer  float64
	pickupTimer float64
}

// Reset zeroes both timers.
func (s *Spawner) Reset() {
	*s = Spawner{}
}

// updateSpawns advances the spawn timers and spawns wastes and pickups
// for the current phase.
func (g *Game) updateSpawns(dt float64) {
	spec := g.table.Spec(g.state.Phase)

	g.spawner.wasteTimer += dt
	// The timer keeps running while the cap is reached, so a slot freed
	// late is filled on the next tick.
	if g.spawner.wasteTimer >= spec.SpawnInterval && len(g.field.Wastes()) < spec.MaxActive {
		g.spawnWaste(spec.Categories[g.rng.Intn(len(spec.Categories))])
		g.spawner.wasteTimer = 0
	}

	g.spawner.pickupTimer += dt
	if g.spawner.pickupTimer >= g.cfg.PowerUps.Interval {
		g.spawner.pickupTimer = 0
		if g.rng.Chance(spec.PowerUpChance) {
			g.spawnPickup(randomKinds[g.rng.Intn(len(randomKinds))])
		}
	}
}

// spawnWaste drops a waste of the given category from a random x just
// above the field.
func (g *Game) spawnWaste(cat Category) *Waste {
	size := g.cfg.Field.WasteSize
	x := g.rng.Float64() * (g.field.Width() - size)
	return g.field.AddWaste(cat, core.Vec{X: x, Y: -size}, g.rollFallSpeed())
}

// rollFallSpeed picks a fall speed among the configured speed steps and
// applies difficulty and event scaling.
func (g *Game) rollFallSpeed() float64 {
	sc := g.cfg.Spawn
	speed := sc.MinFallSpeed
	if sc.SpeedStep > 0 && sc.MaxFallSpeed > sc.MinFallSpeed {
		steps := int((sc.MaxFallSpeed-sc.MinFallSpeed)/sc.SpeedStep) + 1
		speed += float64(g.rng.Intn(steps)) * sc.SpeedStep
	}
	speed *= g.difficulty.SpeedFactor(g.state.Score, g.tickCount)
	if g.events.active == EventCollectorStrike {
		speed *= g.cfg.Events.StrikeSpeedup
	}
	return speed
}

// spawnPickup drops a pickup of the given kind from a random x.
func (g *Game) spawnPickup(kind PowerUpKind) *Pickup {
	pc := g.cfg.PowerUps
	x := g.rng.Float64() * (g.field.Width() - pc.Size)
	return g.field.AddPickup(kind, core.Vec{X: x, Y: -pc.Size}, pc.FallSpeed, pc.Size, pc.Lifetime)
}
