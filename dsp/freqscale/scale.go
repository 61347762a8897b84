package freqscale

import "math"

// Scale maps between linear frequency in Hz and a warped frequency axis.
type Scale interface {
	// HzToScale converts a frequency in Hz to scale units.
	HzToScale(hz float64) float64
	// ScaleToHz converts scale units back to Hz.
	ScaleToHz(s float64) float64
}

// Mel is the logarithmic mel scale m = Factor * log10(1 + f/Break).
type Mel struct {
	Factor float64
	Break  float64
}

var (
	// MelOShaughnessy is the common HTK-style mel scale (2595, 700).
	MelOShaughnessy = Mel{Factor: 2595, Break: 700}
	// MelLindsay uses the Lindsay & Norman constants (2410, 625).
	MelLindsay = Mel{Factor: 2410, Break: 625}
)

// HzToScale converts Hz to mel.
func (m Mel) HzToScale(hz float64) float64 {
	return m.Factor * math.Log10(1+hz/m.Break)
}

// ScaleToHz converts mel to Hz.
func (m Mel) ScaleToHz(mel float64) float64 {
	return m.Break * (math.Pow(10, mel/m.Factor) - 1)
}

// InverseMel is the mel scale mirrored inside [Low, High]:
//
//	s(f) = mel(High) - mel(High + Low - f)
//
// s(Low) is 0 and the scale grows fastest near High, so points evenly spaced
// in s crowd toward the upper edge of the range. Valid for f <= High + Low.
type InverseMel struct {
	Mel  Mel
	Low  float64
	High float64
}

// NewInverseMel returns the mirrored mel scale for the range [low, high].
func NewInverseMel(m Mel, low, high float64) InverseMel {
	return InverseMel{Mel: m, Low: low, High: high}
}

// HzToScale converts Hz to mirrored mel units.
func (im InverseMel) HzToScale(hz float64) float64 {
	return im.Mel.HzToScale(im.High) - im.Mel.HzToScale(im.High+im.Low-hz)
}

// ScaleToHz converts mirrored mel units back to Hz.
func (im InverseMel) ScaleToHz(s float64) float64 {
	return im.High + im.Low - im.Mel.ScaleToHz(im.Mel.HzToScale(im.High)-s)
}

// Linear is the identity scale.
type Linear struct{}

// HzToScale returns hz unchanged.
func (Linear) HzToScale(hz float64) float64 { return hz }

// ScaleToHz returns s unchanged.
func (Linear) ScaleToHz(s float64) float64 { return s }

// Bark is the Traunmüller (1990) critical-band rate scale.
type Bark struct{}

// HzToScale converts Hz to Bark.
func (Bark) HzToScale(hz float64) float64 {
	return 26.81*hz/(1960+hz) - 0.53
}

// ScaleToHz converts Bark to Hz. Valid for z < 26.28.
func (Bark) ScaleToHz(z float64) float64 {
	return 1960 * (z + 0.53) / (26.28 - z)
}

// RoundTrip maps hz into s and back.
func RoundTrip(s Scale, hz float64) float64 {
	return s.ScaleToHz(s.HzToScale(hz))
}
