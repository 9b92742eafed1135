package response

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

// DefaultPoints is the default number of sweep points.
const DefaultPoints = 500

// DefaultDBFloor is added to magnitudes before the dB conversion so that
// exact nulls map to a deep finite floor instead of -Inf.
const DefaultDBFloor = 1e-15

// Sample is the response at one frequency. Magnitude and phase are always
// derived from H, never stored separately. Singular marks a frequency that
// coincides with a pole; H is infinite there.
type Sample struct {
	Freq     float64
	H        complex128
	Singular bool
}

// Response is an ordered frequency sweep, one sample per axis point.
type Response struct {
	Samples []Sample
}

// Option configures ComputeDefault.
type Option func(*config)

type config struct {
	points int
}

// WithPoints overrides the default sweep point count.
func WithPoints(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.points = n
		}
	}
}

// Compute evaluates the spec's transfer function over the axis: at
// z = e^(jω) for digital specs, at s = jω for analog specs. The result has
// exactly one sample per axis point, in axis order.
func Compute(spec *zpk.Spec, axis Axis) (*Response, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	if err := axis.Validate(); err != nil {
		return nil, err
	}

	freqs := axis.Frequencies()
	out := &Response{Samples: make([]Sample, len(freqs))}

	for i, w := range freqs {
		var x complex128
		if spec.Domain == zpk.Digital {
			x = cmplx.Exp(complex(0, w))
		} else {
			x = complex(0, w)
		}

		num := complex(spec.Gain, 0)
		for _, z := range spec.Zeros {
			num *= x - z
		}

		den := complex(1, 0)
		for _, p := range spec.Poles {
			den *= x - p
		}

		if den == 0 {
			out.Samples[i] = Sample{Freq: w, H: cmplx.Inf(), Singular: true}
			continue
		}

		out.Samples[i] = Sample{Freq: w, H: num / den}
	}

	return out, nil
}

// ComputeDefault sweeps the spec over its domain's conventional axis:
// linear 0..π for digital, auto-ranged logarithmic for analog.
func ComputeDefault(spec *zpk.Spec, opts ...Option) (*Response, error) {
	cfg := config{points: DefaultPoints}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return Compute(spec, DefaultAxis(spec, cfg.points))
}

// Frequencies returns the axis points of the sweep.
func (r *Response) Frequencies() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Freq
	}

	return out
}

// Values returns the complex response values. Singular samples are infinite.
func (r *Response) Values() []complex128 {
	out := make([]complex128, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.H
	}

	return out
}

// Magnitude returns |H| per sample. Singular samples yield +Inf.
func (r *Response) Magnitude() []float64 {
	n := len(r.Samples)
	out := make([]float64, n)
	re := make([]float64, n)
	im := make([]float64, n)

	for i, s := range r.Samples {
		re[i] = real(s.H)
		im[i] = imag(s.H)
	}

	vecmath.Magnitude(out, re, im)

	for i, s := range r.Samples {
		if s.Singular {
			out[i] = math.Inf(1)
		}
	}

	return out
}

// MagnitudeDB returns 20·log10(|H| + DefaultDBFloor) per sample.
// Singular samples yield +Inf.
func (r *Response) MagnitudeDB() []float64 {
	return r.MagnitudeDBFloor(DefaultDBFloor)
}

// MagnitudeDBFloor is MagnitudeDB with an explicit floor added to the
// magnitude before the log conversion.
func (r *Response) MagnitudeDBFloor(floor float64) []float64 {
	out := r.Magnitude()
	for i, m := range out {
		if math.IsInf(m, 1) {
			continue
		}

		out[i] = 20 * math.Log10(m+floor)
	}

	return out
}

// Phase returns the unwrapped phase in radians. Unwrapping removes 2π jumps
// between consecutive samples; the anchor is the first finite sample, and
// singular samples carry the nearest finite unwrapped value (backward before
// the anchor, forward after it). An all-singular sweep is all zero.
func (r *Response) Phase() []float64 {
	out := make([]float64, len(r.Samples))

	first := -1
	for i, s := range r.Samples {
		if !s.Singular {
			first = i
			break
		}
	}

	if first == -1 {
		return out
	}

	prevRaw := cmplx.Phase(r.Samples[first].H)
	prevOut := prevRaw

	for i := 0; i <= first; i++ {
		out[i] = prevOut
	}

	for i := first + 1; i < len(r.Samples); i++ {
		s := r.Samples[i]
		if s.Singular {
			out[i] = prevOut
			continue
		}

		raw := cmplx.Phase(s.H)

		d := raw - prevRaw
		for d > math.Pi {
			d -= 2 * math.Pi
		}
		for d < -math.Pi {
			d += 2 * math.Pi
		}

		prevRaw = raw
		prevOut += d
		out[i] = prevOut
	}

	return out
}

// PhaseDeg returns the unwrapped phase in degrees.
func (r *Response) PhaseDeg() []float64 {
	out := r.Phase()
	for i := range out {
		out[i] *= 180 / math.Pi
	}

	return out
}
