package ecosort

import "github.com/vovakirdan/ecosort/internal/core"

// uiLayout holds the clickable regions of the menu screens in field units.
type uiLayout struct {
	start core.Box
	next  core.Box
	mute  core.Box
}

func newUILayout(fieldW float64) uiLayout {
	return uiLayout{
		start: core.NewBox(fieldW/2-110, 300, 220, 60),
		next:  core.NewBox(fieldW/2-110, 350, 220, 60),
		mute:  core.NewBox(fieldW-70, 20, 50, 40),
	}
}

// handleInput routes one frame of input to the active screen.
// Input is applied before the simulation update of the same tick.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionMute) {
		g.toggleMute()
	}
	if in.Has(core.ActionPause) && g.state.Screen.Playing() {
		g.state.Paused = !g.state.Paused
		if g.state.Paused {
			g.audio.PauseMusic()
		} else {
			g.audio.PlayMusic()
		}
	}

	// Presses after a screen change belong to the old screen and are dropped.
	screen := g.state.Screen
	for _, p := range in.Pointers {
		if g.state.Screen != screen {
			return
		}
		switch p.Kind {
		case core.PointerMove:
			g.hover = p.Pos
		case core.PointerDown:
			g.hover = p.Pos
			g.pointerDown(p.Pos)
		}
	}

	if in.Has(core.ActionConfirm) && g.state.Screen == screen {
		g.confirm()
	}
}

// pointerDown dispatches a press by screen.
func (g *Game) pointerDown(p core.Vec) {
	switch g.state.Screen {
	case ScreenStart:
		switch {
		case g.layout.mute.Contains(p):
			g.toggleMute()
		case g.layout.start.Contains(p):
			g.confirm()
		}
	case ScreenIntro, ScreenBossIntro, ScreenDefeat:
		g.confirm()
	case ScreenLevelTransition:
		if g.layout.next.Contains(p) {
			g.confirm()
		}
	case ScreenGameplay, ScreenBossFight:
		if !g.state.Paused {
			g.playTap(p)
		}
	}
}

// confirm presses the primary button of the active screen.
func (g *Game) confirm() {
	s := &g.state
	switch s.Screen {
	case ScreenStart:
		if g.mode == ModeCampaign {
			s.StoryPage = 0
			g.setScreen(ScreenIntro)
			return
		}
		g.startRun()
	case ScreenIntro:
		s.StoryPage++
		if s.StoryPage >= len(introPages) {
			g.startRun()
		}
	case ScreenLevelTransition:
		g.continueFromTransition()
	case ScreenBossIntro:
		g.enterBossFight()
	case ScreenDefeat:
		g.returnToStart()
	}
}

// playTap handles a press during play. Pickups take priority and leave
// the selection alone. Otherwise the press selects an item, re-selects a
// different one, sorts the selection into a bin, or clears it.
func (g *Game) playTap(p core.Vec) {
	s := &g.state

	if pk := g.field.PickupAt(p); pk != nil {
		g.collectPickup(pk)
		return
	}

	selected := g.field.Waste(s.Selected)
	if selected == nil {
		s.Selected = NoWaste
		if w := g.field.WasteAt(p, NoWaste); w != nil {
			s.Selected = w.ID
			g.audio.PlayCue(CueSelect)
		}
		return
	}

	if w := g.field.WasteAt(p, selected.ID); w != nil {
		s.Selected = w.ID
		g.audio.PlayCue(CueSelect)
		return
	}

	bin, ok := g.field.BinAt(p)
	if !ok {
		s.Selected = NoWaste
		return
	}

	g.field.RemoveWaste(selected.ID)
	s.Selected = NoWaste
	if bin.Category == selected.Category {
		g.onCorrect()
	} else {
		g.onIncorrect()
	}
	g.checkOutcome()
}

// collectPickup removes a pickup and applies its effect.
func (g *Game) collectPickup(pk *Pickup) {
	if !g.field.RemovePickup(pk.ID) {
		return
	}
	pc := g.cfg.PowerUps
	e := &g.state.Effects

	switch pk.Kind {
	case PowerUpComboBoost:
		e.ActivateComboBoost(pc.ComboMultiplier, pc.ComboDuration)
	case PowerUpTimeFreeze:
		e.ActivateFreeze(pc.FreezeFactor, pc.FreezeDuration, pc.FreezeRamp)
	case PowerUpMagnet:
		e.ActivateMagnet(pc.MagnetDuration)
	case PowerUpShield:
		e.AddShield(pc.ShieldCharges)
	case PowerUpBossDamage:
		if g.state.InBoss() {
			g.state.DamageBoss(g.cfg.Boss.PickupDamage, g.cfg.Boss.BossLife)
		}
	}
	g.audio.PlayCue(CuePowerUp)
	g.checkOutcome()
}

// onCorrect scores a correct sort.
func (g *Game) onCorrect() {
	g.state.ScoreCorrect(g.rules)
	if g.state.InBoss() {
		g.onBossHit()
	}
	g.audio.PlayCue(CueCorrect)
}

// onIncorrect penalizes a wrong-bin sort.
func (g *Game) onIncorrect() {
	g.state.ScoreIncorrect(g.rules)
	g.audio.PlayCue(CueIncorrect)
}

func (g *Game) toggleMute() {
	g.muted = !g.muted
	g.audio.SetMuted(g.muted)
}
