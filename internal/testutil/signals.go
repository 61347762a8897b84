package testutil

import "math"

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// BinFrequency returns the center frequency in Hz of FFT bin k.
// A sine at this frequency completes an integer number of cycles in nfft
// samples and so concentrates its energy in bin k.
func BinFrequency(k, nfft int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(nfft)
}

// Complex converts a real signal to complex128 with zero imaginary part.
func Complex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}
