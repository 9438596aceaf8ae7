package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/ecosort/internal/games/ecosort"
)

// Note frequencies in Hz.
const (
	noteA3 = 220.00
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
	rest   = 0
)

// tone is a single enveloped note.
func tone(freq float64, d time.Duration, wave WaveType, sr beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, sr)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, sr)
}

// CueStreamer synthesizes the one-shot sound for a cue.
// Returns nil for unknown cues.
func CueStreamer(c ecosort.Cue, sr beep.SampleRate) beep.Streamer {
	switch c {
	case ecosort.CueSelect:
		d := 60 * time.Millisecond
		sine, err := generators.SineTone(sr, noteE5)
		if err != nil {
			return tone(noteE5, d, WaveSine, sr)
		}
		return newVolume(NewEnvelope(beep.Take(sr.N(d), sine), d, 2*time.Millisecond, 30*time.Millisecond, sr), 0.4)
	case ecosort.CueCorrect:
		return newVolume(beep.Seq(
			tone(noteG5, 70*time.Millisecond, WaveSquare, sr),
			tone(noteC6, 120*time.Millisecond, WaveSquare, sr),
		), 0.15)
	case ecosort.CueIncorrect:
		return newVolume(tone(110, 220*time.Millisecond, WaveSaw, sr), 0.3)
	case ecosort.CueMiss:
		return newVolume(tone(noteA3, 150*time.Millisecond, WaveTriangle, sr), 0.4)
	case ecosort.CuePowerUp:
		return newVolume(beep.Seq(
			tone(noteC5, 50*time.Millisecond, WaveTriangle, sr),
			tone(noteE5, 50*time.Millisecond, WaveTriangle, sr),
			tone(noteG5, 50*time.Millisecond, WaveTriangle, sr),
			tone(noteC6, 90*time.Millisecond, WaveTriangle, sr),
		), 0.4)
	case ecosort.CueVictory:
		return newVolume(beep.Seq(
			tone(noteC5, 120*time.Millisecond, WaveSquare, sr),
			tone(noteE5, 120*time.Millisecond, WaveSquare, sr),
			tone(noteG5, 120*time.Millisecond, WaveSquare, sr),
			tone(noteC6, 400*time.Millisecond, WaveSquare, sr),
		), 0.15)
	case ecosort.CueDefeat:
		return newVolume(beep.Seq(
			tone(noteG4, 200*time.Millisecond, WaveSaw, sr),
			tone(noteE4, 200*time.Millisecond, WaveSaw, sr),
			tone(noteC4, 500*time.Millisecond, WaveSaw, sr),
		), 0.2)
	default:
		return nil
	}
}

// melody is the background loop, one entry per eighth note.
var melody = []float64{
	noteC4, noteE4, noteG4, noteE4, noteA3, noteC4, noteE4, noteC4,
	noteG4, rest, noteE4, noteG4, noteA4, noteG4, noteE4, rest,
}

// musicGenerator plays melody forever.
type musicGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	attack  int
	release int
	pos     int
	phase   float64
}

// NewMusic creates the endless background track.
func NewMusic(sr beep.SampleRate) beep.Streamer {
	return &musicGenerator{
		sr:      sr,
		notes:   melody,
		noteLen: sr.N(180 * time.Millisecond),
		attack:  sr.N(10 * time.Millisecond),
		release: sr.N(90 * time.Millisecond),
	}
}

func (m *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.pos / m.noteLen) % len(m.notes)
		within := m.pos % m.noteLen
		freq := m.notes[idx]

		val := 0.0
		if freq != rest {
			m.phase += freq / float64(m.sr)
			m.phase -= float64(int(m.phase))
			val = 0.12 * waveSample(WaveTriangle, m.phase) * envelopeGain(within, m.attack, m.release, m.noteLen)
		}

		samples[i][0] = val
		samples[i][1] = val
		m.pos++
		if m.pos == m.noteLen*len(m.notes) {
			m.pos = 0
		}
	}
	return len(samples), true
}

func (m *musicGenerator) Err() error { return nil }
