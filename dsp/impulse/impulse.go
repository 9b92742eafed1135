package impulse

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/JWKennington/app-dsp-filter-design/dsp/residue"
	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

const (
	// DefaultIndexRadius is the half-width of the default digital grid.
	DefaultIndexRadius = 50
	// DefaultTimePoints is the sample count of the default analog grid.
	DefaultTimePoints = 1000

	// unstableTol leaves a little slack beyond the unit circle before a
	// digital pole is treated as unstable for side selection.
	unstableTol = 1.0000001
	// minDecayRate clamps how slowly the default analog grid may assume
	// the response decays.
	minDecayRate = 0.1
	// decaySpan is how many time constants of the slowest pole the
	// default analog grid covers on each side.
	decaySpan = 5.0
)

var (
	// ErrDomain is returned when a spec's domain does not match the
	// requested reconstruction.
	ErrDomain = errors.New("impulse: spec domain does not match the requested reconstruction")

	// ErrEmptyGrid is returned for grids with no sample points.
	ErrEmptyGrid = errors.New("impulse: grid has no sample points")
)

// IndexRange is an inclusive digital sample-index range. Min may be negative
// to cover left-sided sequences.
type IndexRange struct {
	Min, Max int
}

// Grid is an analog time grid: Points samples evenly spaced from Start to
// Stop. Start may be negative to cover left-sided responses.
type Grid struct {
	Start, Stop float64
	Points      int
}

// Times materializes the grid sample instants.
func (g Grid) Times() []float64 {
	out := make([]float64, g.Points)
	if g.Points == 1 {
		out[0] = g.Start
		return out
	}

	step := (g.Stop - g.Start) / float64(g.Points-1)
	for i := range out {
		out[i] = g.Start + float64(i)*step
	}

	return out
}

// DigitalResponse is a digital impulse response over an index range.
type DigitalResponse struct {
	Indices    []int
	Amplitudes []float64
}

// AnalogResponse is an analog impulse response over a time grid.
type AnalogResponse struct {
	Times      []float64
	Amplitudes []float64
}

// DefaultIndexRange returns the symmetric index range used by interactive
// displays: -DefaultIndexRadius..DefaultIndexRadius.
func DefaultIndexRange() IndexRange {
	return IndexRange{Min: -DefaultIndexRadius, Max: DefaultIndexRadius}
}

// DefaultGrid sizes a symmetric analog grid from the spec's slowest pole
// decay: ±decaySpan time constants of the pole closest to the imaginary
// axis, clamped so poles on the axis still produce a finite window.
func DefaultGrid(spec *zpk.Spec) Grid {
	span := 10.0

	if len(spec.Poles) > 0 {
		slowest := math.Inf(1)
		for _, p := range spec.Poles {
			if d := math.Abs(real(p)); d < slowest {
				slowest = d
			}
		}

		span = decaySpan / math.Max(slowest, minDecayRate)
	}

	return Grid{Start: -span, Stop: span, Points: DefaultTimePoints}
}

// Digital reconstructs the impulse response of a digital spec over the index
// range. Conjugate-symmetric specs yield a real sequence; any residual
// imaginary leakage from the complex accumulation is discarded.
func Digital(spec *zpk.Spec, rng IndexRange) (*DigitalResponse, error) {
	if spec.Domain != zpk.Digital {
		return nil, fmt.Errorf("%w: %s", ErrDomain, spec.Domain)
	}

	if rng.Max < rng.Min {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrEmptyGrid, rng.Min, rng.Max)
	}

	exp, err := residue.Digital(spec)
	if err != nil {
		return nil, err
	}

	n := rng.Max - rng.Min + 1
	acc := make([]complex128, n)

	for i, k := range exp.Direct {
		if idx := i - rng.Min; idx >= 0 && idx < n {
			acc[idx] += k
		}
	}

	for i, p := range exp.Poles {
		r := exp.Residues[i]

		if leftSided(spec.Causality, cmplx.Abs(p) > unstableTol) {
			last := min(-1, rng.Max)

			power := powInt(p, last)
			for idx := last; idx >= rng.Min; idx-- {
				acc[idx-rng.Min] -= r * power
				power /= p
			}

			continue
		}

		first := max(0, rng.Min)

		power := powInt(p, first)
		for idx := first; idx <= rng.Max; idx++ {
			acc[idx-rng.Min] += r * power
			power *= p
		}
	}

	out := &DigitalResponse{
		Indices:    make([]int, n),
		Amplitudes: make([]float64, n),
	}
	for i := range acc {
		out.Indices[i] = rng.Min + i
		out.Amplitudes[i] = real(acc[i])
	}

	return out, nil
}

// Analog reconstructs the impulse response of an analog spec over the time
// grid. Dirac direct terms are omitted; conjugate-symmetric specs yield a
// real signal.
func Analog(spec *zpk.Spec, grid Grid) (*AnalogResponse, error) {
	if spec.Domain != zpk.Analog {
		return nil, fmt.Errorf("%w: %s", ErrDomain, spec.Domain)
	}

	if grid.Points <= 0 {
		return nil, fmt.Errorf("%w: %d points", ErrEmptyGrid, grid.Points)
	}

	exp, err := residue.Analog(spec)
	if err != nil {
		return nil, err
	}

	times := grid.Times()
	acc := make([]complex128, len(times))

	for i, p := range exp.Poles {
		r := exp.Residues[i]
		left := leftSided(spec.Causality, real(p) > 0)

		for j, t := range times {
			if left {
				if t < 0 {
					acc[j] -= r * cmplx.Exp(p*complex(t, 0))
				}
			} else if t >= 0 {
				acc[j] += r * cmplx.Exp(p*complex(t, 0))
			}
		}
	}

	out := &AnalogResponse{
		Times:      times,
		Amplitudes: make([]float64, len(times)),
	}
	for i := range acc {
		out.Amplitudes[i] = real(acc[i])
	}

	return out, nil
}

// leftSided decides which side a pole term is rendered on. Causal mode is
// strictly right-sided; anti-causal mode moves unstable poles to the left
// side so their contribution converges.
func leftSided(c zpk.Causality, unstable bool) bool {
	return c == zpk.AntiCausal && unstable
}

func powInt(x complex128, n int) complex128 {
	out := complex(1, 0)
	for range abs(n) {
		if n > 0 {
			out *= x
		} else {
			out /= x
		}
	}

	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
