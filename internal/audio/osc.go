package audio

import "math"

const (
	SampleRate = 44100
	BufferSize = 1024
)

// gainSlew is the per-sample fraction gains move toward their target,
// about an 11ms ramp at 44.1kHz. Fast enough to feel immediate, slow
// enough not to click.
const gainSlew = 0.002

// One interpolated sine cycle shared by all oscillators.
var sineTable = newSineTable(4096)

func newSineTable(n int) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = math.Sin(2 * math.Pi * float64(i) / float64(n))
	}
	return t
}

// osc is a phase-accumulator oscillator over the shared sine table.
// phase and step are cycle fractions in [0, 1).
type osc struct {
	phase float64
	step  float64
}

func (o *osc) setFreq(hz, sampleRate float64) {
	o.step = hz / sampleRate
}

func (o *osc) next() float64 {
	idx := o.phase * float64(len(sineTable))
	i := int(idx)
	frac := idx - float64(i)
	i0 := i % len(sineTable)
	i1 := (i + 1) % len(sineTable)
	v := sineTable[i0]*(1-frac) + sineTable[i1]*frac

	o.phase += o.step
	if o.phase >= 1 {
		o.phase -= math.Floor(o.phase)
	}
	return v
}

// voices is the stereo tone pair every backend renders. Backends guard
// it with their own mutex: the UI goroutine writes parameters while
// the device callback pulls samples.
type voices struct {
	left, right osc
	gainL       float64
	gainR       float64
	targetL     float64
	targetR     float64
	muted       bool
	phaseOff    float64 // radians currently applied to the left oscillator
}

func newVoices() *voices {
	return &voices{}
}

// setTones retunes both oscillators and applies the phase offset to
// the left one. The accumulated phase is shifted by the offset delta
// rather than reset, so a playing tone never jumps.
func (v *voices) setTones(leftHz, rightHz, phaseRad float64) {
	v.left.setFreq(leftHz, SampleRate)
	v.right.setFreq(rightHz, SampleRate)

	delta := (phaseRad - v.phaseOff) / (2 * math.Pi)
	v.left.phase = wrapCycle(v.left.phase + delta)
	v.phaseOff = phaseRad
}

func (v *voices) setGains(left, right float64) {
	v.targetL = clamp01(left)
	v.targetR = clamp01(right)
}

func (v *voices) setMuted(muted bool) {
	v.muted = muted
}

// sample renders one stereo frame and advances oscillators and gain
// ramps.
func (v *voices) sample() (left, right float64) {
	tl, tr := v.targetL, v.targetR
	if v.muted {
		tl, tr = 0, 0
	}
	v.gainL += (tl - v.gainL) * gainSlew
	v.gainR += (tr - v.gainR) * gainSlew
	return v.left.next() * v.gainL, v.right.next() * v.gainR
}

func wrapCycle(c float64) float64 {
	c = math.Mod(c, 1)
	if c < 0 {
		c += 1
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RenderTones synthesizes n samples of the stereo tone pair offline at
// full gain, with the phase offset applied to the left channel. The
// analyze command and tests use it; no device is touched.
func RenderTones(leftHz, rightHz, phaseRad float64, sampleRate, n int) (left, right []float64) {
	v := newVoices()
	v.gainL, v.gainR = 1, 1
	v.targetL, v.targetR = 1, 1
	v.left.setFreq(leftHz, float64(sampleRate))
	v.right.setFreq(rightHz, float64(sampleRate))
	v.left.phase = wrapCycle(phaseRad / (2 * math.Pi))

	left = make([]float64, n)
	right = make([]float64, n)
	for i := 0; i < n; i++ {
		left[i], right[i] = v.sample()
	}
	return left, right
}
