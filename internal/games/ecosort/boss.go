package ecosort

import "github.com/vovakirdan/ecosort/internal/core"

// enterBossFight starts the boss encounter with fresh lives and no
// leftover combo or power-up state from the previous phase.
// Player life starts at boss.player_life, kept within 1..MaxResource.
func (g *Game) enterBossFight() {
	s := &g.state
	s.Phase = PhaseBoss
	s.PlayerLife = core.Clamp(g.cfg.Boss.PlayerLife, 1, g.rules.MaxResource)
	s.BossLife = g.cfg.Boss.BossLife
	s.Combo = 0
	s.ComboIdle = 0
	s.BossStreak = 0
	s.Selected = NoWaste
	s.Effects.Clear()

	g.installPhase(PhaseBoss)
	g.setScreen(ScreenBossFight)
	g.audio.PlayMusic()
}

// onBossHit applies boss-side effects of a correct sort: chip damage and
// the streak reward.
func (g *Game) onBossHit() {
	bc := g.cfg.Boss
	s := &g.state
	s.DamageBoss(bc.HitDamage, bc.BossLife)
	s.BossStreak++
	if bc.StreakReward > 0 && s.BossStreak%bc.StreakReward == 0 {
		g.spawnBossStrike()
	}
}

// spawnBossStrike drops a BossDamage pickup over the middle of the field.
func (g *Game) spawnBossStrike() *Pickup {
	pc := g.cfg.PowerUps
	x := (g.field.Width() - pc.Size) / 2
	return g.field.AddPickup(PowerUpBossDamage, core.Vec{X: x, Y: -pc.Size}, pc.FallSpeed, pc.Size, pc.Lifetime)
}

// bossDefeated ends the campaign with a victory transition screen.
func (g *Game) bossDefeated() {
	s := &g.state
	s.Won = true
	s.Message = []string{
		"The Landfill Baron is defeated!",
		"The city is clean again.",
		"",
		scoreLine(s.Score),
	}
	g.field.Clear()
	g.audio.PauseMusic()
	g.audio.PlayCue(CueVictory)
	g.setScreen(ScreenLevelTransition)
}
