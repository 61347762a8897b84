// Package fbank builds triangular filter banks for spectral feature
// extraction (MFCC-style pipelines).
//
// A filter bank is a matrix of shape (nfilts, nfft/2+1). Each row is a
// triangle over the non-negative-frequency bins of an nfft-point FFT that
// pools neighboring bins into one band. Rows are ordered by ascending center
// frequency.
//
// Band placement follows a frequency [freqscale.Scale]:
//
//	lo, hi  = scale(low_freq), scale(high_freq)
//	p[j]    = lo + j*(hi-lo)/(nfilts+1),  j = 0..nfilts+1
//	b[j]    = floor((nfft+1) * scale⁻¹(p[j]) / fs)
//
// Filter i rises linearly from b[i] to its peak at b[i+1] and falls back to
// zero at b[i+2]. Zero-width edges contribute no weight.
//
// Two builders cover the usual cases:
//
//   - [Build] spaces bands evenly on the mel scale (dense at low
//     frequencies).
//   - [BuildInverse] spaces bands evenly on the mirrored mel scale (dense at
//     high frequencies).
//
// [BuildWithScale] accepts any scale, e.g. [freqscale.Linear] or
// [freqscale.Bark].
//
// After synthesis each row's peak is multiplied by a [Scaling] gain:
// constant (1 for every filter), ascendant ((i+1)/nfilts) or descendant
// ((nfilts-i)/nfilts).
//
// Basic usage:
//
//	fb, err := fbank.Build(26, 512, 16000, fbank.WithHighFreq(4000))
//	if err != nil {
//	    return err
//	}
//	energies, err := fb.Apply(powerSpectrum) // len(powerSpectrum) == 257
//
// Builders validate their parameters before any computation and report
// failures as [*ParameterError].
package fbank
