package ecosort

// updateMagnet steers every waste toward its bin while the magnet runs.
// Wastes whose center is within the capture radius of their bin center
// are removed and scored as correct sorts. Returns the number captured.
// Without an active magnet all wastes fall straight down.
func (g *Game) updateMagnet() int {
	if !g.state.Effects.MagnetActive() {
		for _, w := range g.field.Wastes() {
			w.Fall()
		}
		return 0
	}

	pc := g.cfg.PowerUps
	var captured []WasteID
	for _, w := range g.field.Wastes() {
		bin, ok := g.field.BinFor(w.Category)
		if !ok {
			w.Fall()
			continue
		}
		delta := bin.Bounds.Center().Sub(w.Center())
		if delta.Len() <= pc.MagnetRadius {
			captured = append(captured, w.ID)
			continue
		}
		w.Vel = delta.Normalize().Scale(pc.MagnetSpeed)
	}

	for _, id := range captured {
		// Removal happens before scoring so an item can only ever score once
		if !g.field.RemoveWaste(id) {
			continue
		}
		if g.state.Selected == id {
			g.state.Selected = NoWaste
		}
		g.onCorrect()
	}
	return len(captured)
}
