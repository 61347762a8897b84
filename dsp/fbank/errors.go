package fbank

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is matched by every [*ParameterError] via errors.Is.
var ErrInvalidParameter = errors.New("fbank: invalid parameter")

// ParameterError reports a filter bank parameter outside its valid range.
type ParameterError struct {
	Param  string  // parameter name, e.g. "low_freq"
	Value  float64 // offending value
	Reason string  // violated constraint
}

func (e *ParameterError) Error() string {
	if math.IsNaN(e.Value) {
		return fmt.Sprintf("fbank: invalid %s: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("fbank: invalid %s %g: %s", e.Param, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidParameter.
func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

func paramError(param string, value float64, format string, args ...any) error {
	return &ParameterError{Param: param, Value: value, Reason: fmt.Sprintf(format, args...)}
}

func validate(nfilts, nfft, fs int, cfg config) error {
	if nfilts <= 0 {
		return paramError("nfilts", float64(nfilts), "must be > 0")
	}
	if nfft <= 0 {
		return paramError("nfft", float64(nfft), "must be > 0")
	}
	if fs <= 0 {
		return paramError("fs", float64(fs), "must be > 0")
	}
	if math.IsNaN(cfg.lowFreq) || cfg.lowFreq < 0 {
		return paramError("low_freq", cfg.lowFreq, "must be >= 0")
	}
	nyquist := float64(fs) / 2
	if math.IsNaN(cfg.highFreq) || cfg.highFreq > nyquist {
		return paramError("high_freq", cfg.highFreq, "must be <= fs/2 (%g Hz)", nyquist)
	}
	if cfg.lowFreq >= cfg.highFreq {
		return paramError("low_freq", cfg.lowFreq, "must be < high_freq (%g Hz)", cfg.highFreq)
	}
	if !cfg.scaling.valid() {
		return paramError("scale", float64(cfg.scaling), "unknown scaling")
	}
	return nil
}
