// Package freqscale provides bidirectional mappings between linear frequency
// in Hz and warped frequency axes used to place filter bank bands.
//
// Every [Scale] is monotonically increasing over its valid range and its two
// methods are exact mathematical inverses:
//
//	ScaleToHz(HzToScale(f)) == f   (up to floating-point rounding)
//
// Available scales:
//
//   - [Mel] with the O'Shaughnessy constants ([MelOShaughnessy], default):
//     m = 2595 * log10(1 + f/700), so that 1000 Hz is close to 1000 mel.
//     [MelLindsay] uses 2410 and 625 instead.
//   - [InverseMel] mirrors the mel scale inside a [Low, High] range, which
//     places bands densely at the top of the range instead of the bottom.
//   - [Linear] is the identity (bands evenly spaced in Hz).
//   - [Bark] is the Traunmüller (1990) critical-band rate.
//
// All scales are plain values without mutable state and are safe for
// concurrent use.
package freqscale
