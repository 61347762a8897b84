package fbank

import (
	"fmt"
	"math"
	"strings"
)

// Scaling selects how peak weights vary across the filters of a bank.
type Scaling int

const (
	// ScalingConstant keeps every peak at 1.
	ScalingConstant Scaling = iota
	// ScalingAscendant ramps peaks up from 1/nfilts to 1, favoring high bands.
	ScalingAscendant
	// ScalingDescendant ramps peaks down from 1 to 1/nfilts, favoring low bands.
	ScalingDescendant
)

var scalingNames = map[Scaling]string{
	ScalingConstant:   "constant",
	ScalingAscendant:  "ascendant",
	ScalingDescendant: "descendant",
}

func (s Scaling) String() string {
	if name, ok := scalingNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scaling(%d)", int(s))
}

func (s Scaling) valid() bool {
	_, ok := scalingNames[s]
	return ok
}

// ParseScaling returns the Scaling named "constant", "ascendant" or
// "descendant" (case-insensitive).
func ParseScaling(name string) (Scaling, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range scalingNames {
		if n == key {
			return s, nil
		}
	}
	return 0, &ParameterError{Param: "scale", Value: math.NaN(), Reason: fmt.Sprintf("unknown scaling %q", name)}
}

// Gain returns the peak multiplier of filter i in a bank of n filters.
// Gains lie in (0, 1] and are monotonic in i.
func (s Scaling) Gain(i, n int) float64 {
	switch s {
	case ScalingAscendant:
		return float64(i+1) / float64(n)
	case ScalingDescendant:
		return float64(n-i) / float64(n)
	default:
		return 1
	}
}
