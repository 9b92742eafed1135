package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

// Spacing selects how axis points are distributed between Start and Stop.
type Spacing int

const (
	// Linear spaces points evenly.
	Linear Spacing = iota
	// Logarithmic spaces points evenly in log10. Start and Stop must be
	// positive.
	Logarithmic
)

// ErrEmptyAxis is returned when an axis has no points.
var ErrEmptyAxis = errors.New("response: axis must contain at least one point")

// ErrLogAxisRange is returned when a logarithmic axis has a nonpositive bound.
var ErrLogAxisRange = errors.New("response: logarithmic axis bounds must be positive")

// Axis describes a swept frequency range. Digital frequencies are in radians
// per sample (0..π covers DC to Nyquist); analog frequencies are in radians
// per second.
type Axis struct {
	Start   float64
	Stop    float64
	Points  int
	Spacing Spacing
}

// Validate checks the axis descriptor.
func (a Axis) Validate() error {
	if a.Points <= 0 {
		return fmt.Errorf("%w: %d points", ErrEmptyAxis, a.Points)
	}

	if a.Spacing == Logarithmic && (a.Start <= 0 || a.Stop <= 0) {
		return fmt.Errorf("%w: [%v, %v]", ErrLogAxisRange, a.Start, a.Stop)
	}

	return nil
}

// Frequencies materializes the axis points in order. A single-point axis
// yields just Start.
func (a Axis) Frequencies() []float64 {
	out := make([]float64, a.Points)
	if a.Points == 1 {
		out[0] = a.Start
		return out
	}

	switch a.Spacing {
	case Logarithmic:
		lo := math.Log10(a.Start)
		step := (math.Log10(a.Stop) - lo) / float64(a.Points-1)
		for i := range out {
			out[i] = math.Pow(10, lo+float64(i)*step)
		}
	default:
		step := (a.Stop - a.Start) / float64(a.Points-1)
		for i := range out {
			out[i] = a.Start + float64(i)*step
		}
	}

	// Pin the endpoint so log sweeps end exactly at Stop.
	out[a.Points-1] = a.Stop

	return out
}

// DigitalAxis returns the default digital sweep: linear from 0 to π with the
// Nyquist endpoint included.
func DigitalAxis(points int) Axis {
	return Axis{Start: 0, Stop: math.Pi, Points: points, Spacing: Linear}
}

// AnalogAxis returns a logarithmic sweep auto-ranged from the spec's pole and
// zero magnitudes: from a tenth of the smallest nonzero magnitude to a hundred
// times the largest, falling back to [0.1, 100] rad/s for empty specs.
func AnalogAxis(spec *zpk.Spec, points int) Axis {
	minMag := math.Inf(1)
	maxMag := 0.0

	for _, roots := range [][]complex128{spec.Zeros, spec.Poles} {
		for _, r := range roots {
			m := cmplx.Abs(r)
			if m > maxMag {
				maxMag = m
			}
			if m > 0 && m < minMag {
				minMag = m
			}
		}
	}

	if maxMag == 0 {
		return Axis{Start: 0.1, Stop: 100, Points: points, Spacing: Logarithmic}
	}

	start := 0.1
	if !math.IsInf(minMag, 1) {
		start = minMag / 10
	}

	return Axis{Start: start, Stop: maxMag * 100, Points: points, Spacing: Logarithmic}
}

// DefaultAxis picks the conventional sweep for the spec's domain.
func DefaultAxis(spec *zpk.Spec, points int) Axis {
	if spec.Domain == zpk.Digital {
		return DigitalAxis(points)
	}

	return AnalogAxis(spec, points)
}
