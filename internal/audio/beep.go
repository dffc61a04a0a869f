package audio

import (
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Beep plays the tone pair through the beep speaker, a pure-Go path
// used when portaudio cannot open a device.
type Beep struct {
	mu sync.Mutex
	v  *voices
}

func openBeep() (*Beep, error) {
	if err := speaker.Init(beep.SampleRate(SampleRate), BufferSize); err != nil {
		return nil, err
	}
	e := &Beep{v: newVoices()}
	speaker.Play(e)
	return e, nil
}

func (e *Beep) Name() string { return "beep" }

// Stream fills samples from the tone pair. It always reports the full
// slice so the speaker keeps the streamer scheduled.
func (e *Beep) Stream(samples [][2]float64) (int, bool) {
	e.mu.Lock()
	for i := range samples {
		samples[i][0], samples[i][1] = e.v.sample()
	}
	e.mu.Unlock()
	return len(samples), true
}

func (e *Beep) Err() error { return nil }

func (e *Beep) SetTones(leftHz, rightHz, phaseRad float64) {
	e.mu.Lock()
	e.v.setTones(leftHz, rightHz, phaseRad)
	e.mu.Unlock()
}

func (e *Beep) SetGains(left, right float64) {
	e.mu.Lock()
	e.v.setGains(left, right)
	e.mu.Unlock()
}

func (e *Beep) SetMuted(muted bool) {
	e.mu.Lock()
	e.v.setMuted(muted)
	e.mu.Unlock()
}

func (e *Beep) Close() error {
	speaker.Clear()
	return nil
}
