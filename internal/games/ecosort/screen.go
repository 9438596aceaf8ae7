package ecosort

// Screen is the active mode of the game; it decides what input does and
// what gets updated each tick.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenIntro
	ScreenGameplay
	ScreenLevelTransition
	ScreenBossIntro
	ScreenBossFight
	ScreenDefeat
)

// String returns the name of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenIntro:
		return "intro"
	case ScreenGameplay:
		return "gameplay"
	case ScreenLevelTransition:
		return "transition"
	case ScreenBossIntro:
		return "boss-intro"
	case ScreenBossFight:
		return "boss-fight"
	case ScreenDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Playing reports whether entities move and input sorts waste on this screen.
func (s Screen) Playing() bool {
	return s == ScreenGameplay || s == ScreenBossFight
}

// legalTransitions lists the screens reachable from each screen.
// Gameplay -> Gameplay is absent: phases only change through LevelTransition.
var legalTransitions = map[Screen][]Screen{
	ScreenStart:           {ScreenIntro, ScreenGameplay},
	ScreenIntro:           {ScreenGameplay},
	ScreenGameplay:        {ScreenLevelTransition, ScreenDefeat},
	ScreenLevelTransition: {ScreenGameplay, ScreenBossIntro, ScreenBossFight, ScreenStart},
	ScreenBossIntro:       {ScreenBossFight},
	ScreenBossFight:       {ScreenLevelTransition, ScreenDefeat},
	ScreenDefeat:          {ScreenStart},
}

// CanTransition reports whether moving from one screen to another is legal.
func CanTransition(from, to Screen) bool {
	for _, s := range legalTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
