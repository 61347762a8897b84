package fbank

import "github.com/cwbudde/algo-fbank/dsp/freqscale"

// Option configures filter bank construction.
type Option func(*config)

type config struct {
	lowFreq  float64
	highFreq float64
	hasHigh  bool
	scaling  Scaling
	mel      freqscale.Mel
}

func defaultConfig() config {
	return config{
		scaling: ScalingConstant,
		mel:     freqscale.MelOShaughnessy,
	}
}

// WithLowFreq sets the lower edge of the first filter in Hz. Defaults to 0.
func WithLowFreq(hz float64) Option {
	return func(cfg *config) {
		cfg.lowFreq = hz
	}
}

// WithHighFreq sets the upper edge of the last filter in Hz.
// Defaults to the Nyquist frequency fs/2.
func WithHighFreq(hz float64) Option {
	return func(cfg *config) {
		cfg.highFreq = hz
		cfg.hasHigh = true
	}
}

// WithFrequencyRange sets both band limits in Hz.
func WithFrequencyRange(low, high float64) Option {
	return func(cfg *config) {
		WithLowFreq(low)(cfg)
		WithHighFreq(high)(cfg)
	}
}

// WithScaling selects the per-filter peak gain policy.
func WithScaling(s Scaling) Option {
	return func(cfg *config) {
		cfg.scaling = s
	}
}

// WithMel selects the mel constants used by [Build] and [BuildInverse].
// It has no effect on [BuildWithScale].
func WithMel(m freqscale.Mel) Option {
	return func(cfg *config) {
		cfg.mel = m
	}
}

func applyOptions(fs int, opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.hasHigh {
		cfg.highFreq = float64(fs) / 2
	}
	return cfg
}
