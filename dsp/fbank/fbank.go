package fbank

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-fbank/dsp/freqscale"
)

// FilterBank is a computed triangular filter bank.
//
// A FilterBank is immutable; accessors return copies and it may be shared
// between goroutines.
type FilterBank struct {
	weights    *mat.Dense
	edges      []int
	centers    []float64
	sampleRate int
	fftSize    int
}

// Build returns a mel-spaced filter bank with nfilts filters over the
// nfft/2+1 non-negative-frequency bins of an nfft-point FFT at sample rate fs.
func Build(nfilts, nfft, fs int, opts ...Option) (*FilterBank, error) {
	cfg := applyOptions(fs, opts)
	if err := validate(nfilts, nfft, fs, cfg); err != nil {
		return nil, err
	}
	return build(cfg.mel, nfilts, nfft, fs, cfg), nil
}

// BuildInverse returns a filter bank spaced evenly on the mel scale mirrored
// inside [low_freq, high_freq]. Its bands are narrow near high_freq and wide
// near low_freq, the reverse of [Build].
func BuildInverse(nfilts, nfft, fs int, opts ...Option) (*FilterBank, error) {
	cfg := applyOptions(fs, opts)
	if err := validate(nfilts, nfft, fs, cfg); err != nil {
		return nil, err
	}
	scale := freqscale.NewInverseMel(cfg.mel, cfg.lowFreq, cfg.highFreq)
	return build(scale, nfilts, nfft, fs, cfg), nil
}

// BuildWithScale returns a filter bank whose band edges are evenly spaced on
// the given frequency scale.
func BuildWithScale(scale freqscale.Scale, nfilts, nfft, fs int, opts ...Option) (*FilterBank, error) {
	if scale == nil {
		return nil, &ParameterError{Param: "scale", Value: math.NaN(), Reason: "frequency scale is nil"}
	}
	cfg := applyOptions(fs, opts)
	if err := validate(nfilts, nfft, fs, cfg); err != nil {
		return nil, err
	}
	return build(scale, nfilts, nfft, fs, cfg), nil
}

// build assumes validated parameters and never fails.
func build(scale freqscale.Scale, nfilts, nfft, fs int, cfg config) *FilterBank {
	numBins := nfft/2 + 1
	edges, hz := binEdges(scale, nfilts, nfft, fs, cfg.lowFreq, cfg.highFreq)

	weights := mat.NewDense(nfilts, numBins, nil)
	for i := 0; i < nfilts; i++ {
		row := weights.RawRowView(i)
		triangle(row, edges[i], edges[i+1], edges[i+2])
		if g := cfg.scaling.Gain(i, nfilts); g != 1 {
			floats.Scale(g, row)
		}
	}

	centers := make([]float64, nfilts)
	copy(centers, hz[1:nfilts+1])

	return &FilterBank{
		weights:    weights,
		edges:      edges,
		centers:    centers,
		sampleRate: fs,
		fftSize:    nfft,
	}
}

// binEdges places nfilts+2 points evenly in scale space between low and high
// and maps them to FFT bin indices in [0, nfft/2+1].
func binEdges(scale freqscale.Scale, nfilts, nfft, fs int, low, high float64) ([]int, []float64) {
	numBins := nfft/2 + 1
	points := floats.Span(make([]float64, nfilts+2), scale.HzToScale(low), scale.HzToScale(high))

	hz := make([]float64, len(points))
	edges := make([]int, len(points))
	for j, p := range points {
		hz[j] = scale.ScaleToHz(p)
		bin := int(math.Floor(float64(nfft+1) * hz[j] / float64(fs)))
		edges[j] = max(0, min(bin, numBins))
	}
	return edges, hz
}

// triangle writes a unit-peak triangle rising over [left, center) and
// falling over [center, right). Empty edges write nothing.
func triangle(row []float64, left, center, right int) {
	if center > left {
		width := float64(center - left)
		for k := left; k < center; k++ {
			row[k] = float64(k-left) / width
		}
	}
	if right > center {
		width := float64(right - center)
		for k := center; k < right; k++ {
			row[k] = float64(right-k) / width
		}
	}
}

// NumFilters returns the number of filters (matrix rows).
func (fb *FilterBank) NumFilters() int { return len(fb.centers) }

// NumBins returns the number of FFT bins per filter, nfft/2+1.
func (fb *FilterBank) NumBins() int {
	_, c := fb.weights.Dims()
	return c
}

// SampleRate returns the sample rate the bank was built for.
func (fb *FilterBank) SampleRate() int { return fb.sampleRate }

// FFTSize returns the FFT length the bank was built for.
func (fb *FilterBank) FFTSize() int { return fb.fftSize }

// Weights returns a copy of the (nfilts, nfft/2+1) weight matrix.
func (fb *FilterBank) Weights() *mat.Dense { return mat.DenseCopyOf(fb.weights) }

// Row returns a copy of filter i's weights.
func (fb *FilterBank) Row(i int) []float64 { return mat.Row(nil, i, fb.weights) }

// CenterFreqs returns the nominal center frequency of each filter in Hz,
// ascending.
func (fb *FilterBank) CenterFreqs() []float64 {
	return append([]float64(nil), fb.centers...)
}

// BinEdges returns the nfilts+2 FFT bin boundaries. Filter i spans
// [edges[i], edges[i+2]) and peaks at edges[i+1].
func (fb *FilterBank) BinEdges() []int {
	return append([]int(nil), fb.edges...)
}

// Apply pools a power (or magnitude) spectrum of nfft/2+1 bins into one
// energy per filter.
func (fb *FilterBank) Apply(spectrum []float64) ([]float64, error) {
	if len(spectrum) != fb.NumBins() {
		return nil, fmt.Errorf("fbank: spectrum length must be %d: %d", fb.NumBins(), len(spectrum))
	}
	var out mat.VecDense
	out.MulVec(fb.weights, mat.NewVecDense(len(spectrum), spectrum))
	return out.RawVector().Data, nil
}

// ApplyComplex pools the power |X[k]|^2 of complex FFT bins into one energy
// per filter. bins may hold the full nfft-point FFT output or only its
// nfft/2+1 non-negative-frequency half.
func (fb *FilterBank) ApplyComplex(bins []complex128) ([]float64, error) {
	n := fb.NumBins()
	if len(bins) != n && len(bins) != fb.fftSize {
		return nil, fmt.Errorf("fbank: bin count must be %d or %d: %d", n, fb.fftSize, len(bins))
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for k := range re {
		re[k] = real(bins[k])
		im[k] = imag(bins[k])
	}
	power := make([]float64, n)
	vecmath.Power(power, re, im)

	return fb.Apply(power)
}
