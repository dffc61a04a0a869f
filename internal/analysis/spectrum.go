// Package analysis estimates tone spectra for the analyze command.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude spectrum of data after applying
// a Hann window. The result holds len(data)/2 bins; bin k covers
// frequency k*sampleRate/len(data).
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	windowed := make([]float64, len(data))
	for i, v := range data {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(len(data)-1)))
		windowed[i] = v * w
	}

	spectrum := fft.FFTReal(windowed)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency of the strongest non-DC bin,
// in the same unit as sampleRate.
func DominantFrequency(data []float64, sampleRate float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0
	}

	maxIdx := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	return float64(maxIdx) * sampleRate / float64(len(data))
}
