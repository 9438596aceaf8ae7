package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ecosort/internal/games/ecosort"
)

// DefaultSampleRate is the output sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Player implements ecosort.Audio on top of the speaker.
// Everything goes through one mixer; the master volume wraps the mixer,
// so muting silences effects and music together.
type Player struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	muted       bool
	initialized bool
}

var _ ecosort.Audio = (*Player)(nil)

// NewPlayer creates a player. No sound is produced until Init succeeds.
func NewPlayer(sr beep.SampleRate) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		sr:     sr,
		mixer:  mixer,
		master: newVolume(mixer, 1),
		music:  &beep.Ctrl{Streamer: NewMusic(sr), Paused: true},
	}
}

// Init opens the speaker. The game is fully playable if this fails.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.sr, p.sr.N(100*time.Millisecond)); err != nil {
		return err
	}

	p.mixer.Add(p.music)
	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Close stops all output.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.initialized = false
}

// locked runs fn with the speaker locked when it is running.
func (p *Player) locked(fn func()) {
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// PlayCue starts a one-shot effect.
func (p *Player) PlayCue(c ecosort.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := CueStreamer(c, p.sr)
	if s == nil {
		return
	}
	p.locked(func() { p.mixer.Add(s) })
}

// PlayMusic resumes the background loop.
func (p *Player) PlayMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked(func() { p.music.Paused = false })
}

// PauseMusic pauses the background loop.
func (p *Player) PauseMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked(func() { p.music.Paused = true })
}

// SetMuted silences or restores all output.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	p.locked(func() { p.master.Silent = muted })
}

// MusicPlaying reports whether the background loop is unpaused.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.music.Paused
}

// Muted reports the mute state.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}
