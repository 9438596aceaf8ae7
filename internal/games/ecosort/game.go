// Package ecosort implements the EcoSort waste-sorting game: falling waste
// is picked up and dropped into the matching bin across three escalating
// phases and a final boss fight.
package ecosort

import (
	"fmt"

	"github.com/vovakirdan/ecosort/internal/config"
	"github.com/vovakirdan/ecosort/internal/core"
	"github.com/vovakirdan/ecosort/internal/registry"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Story screens before phase one and the boss
	ModeArcade                   // Straight into the action, no story screens
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements EcoSort.
type Game struct {
	mode GameMode

	// Configuration
	runtime    core.RuntimeConfig
	fixedCfg   *config.EcoSortConfig // Used instead of loading when set
	cfg        config.EcoSortConfig
	rules      Rules
	table      PhaseTable
	difficulty *config.DifficultyManager
	layout     uiLayout

	// Simulation
	state     State
	field     *Field
	spawner   Spawner
	events    eventState
	rng       *SimpleRNG
	tickCount int

	// Presentation
	audio Audio
	muted bool
	hover core.Vec // Last known pointer position
}

// New creates a new EcoSort game in campaign mode.
func New() *Game {
	return &Game{mode: ModeCampaign, audio: silentAudio{}}
}

// NewArcade creates a new EcoSort game in arcade mode.
func NewArcade() *Game {
	return &Game{mode: ModeArcade, audio: silentAudio{}}
}

// NewWithConfig creates a game that uses cfg instead of loading
// configuration from disk.
func NewWithConfig(mode GameMode, cfg config.EcoSortConfig) *Game {
	return &Game{mode: mode, fixedCfg: &cfg, audio: silentAudio{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeArcade {
		return "ecosort_arcade"
	}
	return "ecosort"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeArcade {
		return "EcoSort (Arcade)"
	}
	return "EcoSort"
}

// SetAudio attaches a sound backend. A nil backend silences the game.
func (g *Game) SetAudio(a Audio) {
	if a == nil {
		a = silentAudio{}
	}
	g.audio = a
	g.audio.SetMuted(g.muted)
}

// SetMuted sets the mute preference. It survives Reset.
func (g *Game) SetMuted(muted bool) {
	g.muted = muted
	g.audio.SetMuted(muted)
}

// FieldSize returns the play field dimensions in field units.
func (g *Game) FieldSize() core.Vec {
	return core.Vec{X: g.cfg.Field.Width, Y: g.cfg.Field.Height}
}

// Reset initializes the game and shows the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.EcoSortConfig
	if g.fixedCfg != nil {
		cfg = *g.fixedCfg
	} else {
		loaded, err := config.Load(configPath)
		if err != nil {
			loaded = config.DefaultEcoSortConfig()
		}
		cfg = loaded
	}

	if difficultyPreset != "" && g.fixedCfg == nil {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.rules = RulesFromConfig(cfg.Scoring)
	g.table = NewPhaseTable(cfg)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.layout = newUILayout(cfg.Field.Width)
	g.rng = NewSimpleRNG(runtime.Seed)
	g.field = NewField(cfg.Field)
	if g.audio == nil {
		g.audio = silentAudio{}
	}

	g.state = NewState(g.rules)
	g.tickCount = 0
	g.installPhase(PhaseCommunity)
	g.audio.SetMuted(g.muted)
	g.audio.PlayMusic()
}

// Resize adapts rendering to a new terminal size without touching the
// simulation, which runs in field units.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.handleInput(in)

	if !g.state.Screen.Playing() || g.state.Paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.update(g.runtime.Timestep())

	return core.StepResult{State: g.State()}
}

// update runs one simulation tick of dt seconds on a play screen.
func (g *Game) update(dt float64) {
	s := &g.state

	s.Effects.Tick(dt)
	s.TickCombo(dt, g.rules)
	g.updateEvents(dt)
	g.updateSpawns(dt)

	g.updateMagnet()

	factor := s.Effects.SpeedFactor()
	for _, w := range g.field.Wastes() {
		w.Update(dt, factor)
	}
	g.field.UpdatePickups(dt, factor)

	missed := g.field.SweepMissed()
	for _, id := range missed {
		if s.Selected == id {
			s.Selected = NoWaste
		}
	}
	if absorbed := s.ApplyMisses(len(missed), g.rules); absorbed < len(missed) {
		g.audio.PlayCue(CueMiss)
	}

	g.checkOutcome()
}

// checkOutcome resolves defeat, boss victory and phase completion.
// Called after every state change that can end a phase.
func (g *Game) checkOutcome() {
	s := &g.state
	if !s.Screen.Playing() {
		return
	}

	if s.Depleted() {
		g.defeat()
		return
	}

	if s.Screen == ScreenBossFight {
		if s.BossLife <= 0 {
			g.bossDefeated()
		}
		return
	}

	spec := g.table.Spec(s.Phase)
	if spec.Threshold > 0 && s.Score >= spec.Threshold {
		g.completePhase()
	}
}

// completePhase shows the transition screen after a threshold is crossed.
func (g *Game) completePhase() {
	s := &g.state
	next, _ := s.Phase.Next()
	s.Message = phaseCompleteMessage(g.table.Spec(s.Phase), g.table.Spec(next), s)
	s.Selected = NoWaste
	g.audio.PauseMusic()
	g.audio.PlayCue(CueVictory)
	g.setScreen(ScreenLevelTransition)
}

// continueFromTransition leaves the transition screen for the next phase,
// or returns to the start screen once the boss is beaten.
func (g *Game) continueFromTransition() {
	s := &g.state
	if s.Won {
		g.returnToStart()
		return
	}

	next, ok := s.Phase.Next()
	if !ok {
		g.returnToStart()
		return
	}

	if next == PhaseBoss {
		if g.mode == ModeCampaign {
			g.field.Clear()
			g.setScreen(ScreenBossIntro)
			return
		}
		g.enterBossFight()
		return
	}

	s.Phase = next
	s.Combo = 0
	s.ComboIdle = 0
	s.Selected = NoWaste
	g.installPhase(next)
	g.setScreen(ScreenGameplay)
	g.audio.PlayMusic()
}

// startRun begins phase one with fresh run state.
func (g *Game) startRun() {
	fresh := NewState(g.rules)
	fresh.Screen = g.state.Screen
	g.state = fresh
	g.tickCount = 0
	g.installPhase(PhaseCommunity)
	g.setScreen(ScreenGameplay)
	g.audio.PlayMusic()
}

// returnToStart discards the run and shows the start screen.
func (g *Game) returnToStart() {
	fresh := NewState(g.rules)
	fresh.Screen = g.state.Screen
	g.state = fresh
	g.tickCount = 0
	g.installPhase(PhaseCommunity)
	g.setScreen(ScreenStart)
	g.audio.PlayMusic()
}

// defeat ends the run when the active resource is exhausted.
func (g *Game) defeat() {
	g.state.Selected = NoWaste
	g.state.Paused = false
	g.audio.PauseMusic()
	g.audio.PlayCue(CueDefeat)
	g.setScreen(ScreenDefeat)
}

// installPhase clears the field and installs the bins of phase p.
func (g *Game) installPhase(p Phase) {
	g.field.Clear()
	g.field.SetBins(g.table.Spec(p).Categories)
	g.spawner.Reset()
	g.events = eventState{}
}

// setScreen switches screens. Illegal transitions are programming errors.
func (g *Game) setScreen(to Screen) {
	from := g.state.Screen
	if from == to {
		return
	}
	if !CanTransition(from, to) {
		panic(fmt.Sprintf("ecosort: illegal screen transition %s -> %s", from, to))
	}
	g.state.Screen = to
	if !to.Playing() {
		g.state.Paused = false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := &g.state
	return core.GameState{
		Score:    s.Score,
		Screen:   s.Screen.String(),
		Phase:    s.Phase.String(),
		GameOver: s.Screen == ScreenDefeat || (s.Screen == ScreenLevelTransition && s.Won),
		Won:      s.Won,
		Paused:   s.Paused,
		Muted:    g.muted,
	}
}

// Detail exposes the full run state for inspection.
func (g *Game) Detail() State {
	return g.state
}

func init() {
	registry.Register("ecosort", func() registry.Game {
		return New()
	})
	registry.Register("ecosort_arcade", func() registry.Game {
		return NewArcade()
	})
}
