package bode

import (
	"errors"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/JWKennington/app-dsp-filter-design/dsp/impulse"
	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

// DefaultFFTSize is used when no transform size is given.
const DefaultFFTSize = 1024

var (
	// ErrDomain is returned for analog filters, whose impulse responses
	// are not sampled on an integer grid.
	ErrDomain = errors.New("bode: spectrum requires a digital filter")
	// ErrUnstable is returned when the impulse response does not decay,
	// so no finite window can represent it.
	ErrUnstable = errors.New("bode: filter must be stable")
)

// Spectrum computes the magnitude spectrum of a digital filter by
// transforming its truncated impulse response. The result covers the bins
// from DC through Nyquist, fftSize/2+1 values. A nonpositive fftSize selects
// DefaultFFTSize; other sizes are rounded up to a power of two.
func Spectrum(spec *zpk.Spec, fftSize int) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if spec.Domain != zpk.Digital {
		return nil, ErrDomain
	}

	if !spec.IsStable() {
		return nil, ErrUnstable
	}

	n := normalizeFFTSize(fftSize)

	h, err := impulse.Digital(spec, impulse.IndexRange{Min: 0, Max: n - 1})
	if err != nil {
		return nil, err
	}

	in := make([]complex128, n)
	for i, a := range h.Amplitudes {
		in[i] = complex(a, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	return mags, nil
}

// Frequencies returns the angular frequencies of the bins Spectrum produces
// for the given transform size, after the same size normalization.
func Frequencies(fftSize int) []float64 {
	n := normalizeFFTSize(fftSize)

	out := make([]float64, n/2+1)
	for i := range out {
		out[i] = 2 * math.Pi * float64(i) / float64(n)
	}

	return out
}

// Deviation measures the worst-case disagreement between the impulse-based
// spectrum and direct pole-zero evaluation over the same bins. For a stable
// filter the value shrinks as fftSize grows, since a longer window captures
// more of the impulse tail.
func Deviation(spec *zpk.Spec, fftSize int) (float64, error) {
	mags, err := Spectrum(spec, fftSize)
	if err != nil {
		return 0, err
	}

	worst := 0.0
	for i, w := range Frequencies(fftSize) {
		direct := cmplx.Abs(spec.Eval(cmplx.Exp(complex(0, w))))

		if d := math.Abs(mags[i] - direct); d > worst {
			worst = d
		}
	}

	return worst, nil
}

func normalizeFFTSize(n int) int {
	if n <= 0 {
		return DefaultFFTSize
	}

	p := 2
	for p < n {
		p <<= 1
	}

	return p
}
