package ecosort

// Cue is a one-shot sound effect.
type Cue int

const (
	CueSelect Cue = iota
	CueCorrect
	CueIncorrect
	CueMiss
	CuePowerUp
	CueVictory
	CueDefeat
	CueCount // Sentinel for counting cues
)

// String returns the name of the cue.
func (c Cue) String() string {
	switch c {
	case CueSelect:
		return "select"
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	case CueMiss:
		return "miss"
	case CuePowerUp:
		return "powerup"
	case CueVictory:
		return "victory"
	case CueDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Audio is the sound backend the game drives. Implementations must not
// block: the game calls them from inside the simulation step.
type Audio interface {
	// PlayCue starts a one-shot effect.
	PlayCue(c Cue)
	// PlayMusic starts or resumes the background loop.
	PlayMusic()
	// PauseMusic pauses the background loop.
	PauseMusic()
	// SetMuted silences or restores all output.
	SetMuted(muted bool)
}

// silentAudio discards everything. Used until a backend is attached.
type silentAudio struct{}

func (silentAudio) PlayCue(Cue)   {}
func (silentAudio) PlayMusic()    {}
func (silentAudio) PauseMusic()   {}
func (silentAudio) SetMuted(bool) {}
