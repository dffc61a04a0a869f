// Package audio sonifies the figure as a stereo tone pair: the left
// oscillator on the left channel, the right oscillator on the right,
// tuned to the figure frequencies so the audible interval matches the
// drawn ratio.
//
// [Open] selects an output backend: portaudio when a device opens,
// the beep speaker as fallback, or [Disabled] when neither works or
// audio is switched off. Engines take live retuning without clicks:
// oscillators keep their accumulated phase across frequency changes
// and gain moves through a short per-sample ramp.
package audio
