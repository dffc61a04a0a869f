package audio

import (
	"sync"

	"github.com/gordonklaus/portaudio"
)

// PortAudio plays the tone pair through the default stereo output
// using the portaudio callback API.
type PortAudio struct {
	stream *portaudio.Stream

	mu sync.Mutex
	v  *voices
}

func openPortAudio() (*PortAudio, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	e := &PortAudio{v: newVoices()}

	// output only (0 in, 2 out); duplex streams often fail when the
	// default input and output devices differ
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, e.process)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, err
	}
	e.stream = stream
	return e, nil
}

func (e *PortAudio) Name() string { return "portaudio" }

func (e *PortAudio) process(out [][]float32) {
	e.mu.Lock()
	for i := range out[0] {
		l, r := e.v.sample()
		out[0][i] = float32(l)
		out[1][i] = float32(r)
	}
	e.mu.Unlock()
}

func (e *PortAudio) SetTones(leftHz, rightHz, phaseRad float64) {
	e.mu.Lock()
	e.v.setTones(leftHz, rightHz, phaseRad)
	e.mu.Unlock()
}

func (e *PortAudio) SetGains(left, right float64) {
	e.mu.Lock()
	e.v.setGains(left, right)
	e.mu.Unlock()
}

func (e *PortAudio) SetMuted(muted bool) {
	e.mu.Lock()
	e.v.setMuted(muted)
	e.mu.Unlock()
}

func (e *PortAudio) Close() error {
	var err error
	if e.stream != nil {
		err = e.stream.Stop()
		e.stream.Close()
		e.stream = nil
	}
	portaudio.Terminate()
	return err
}
