package testutil

import "math/cmplx"

// GeometricSequence returns the real part of r·pⁿ for n = first..last
// inclusive. It is the closed-form reference for a single right-sided
// digital pole term.
func GeometricSequence(r, p complex128, first, last int) []float64 {
	out := make([]float64, 0, last-first+1)
	for n := first; n <= last; n++ {
		v := r * cmplx.Pow(p, complex(float64(n), 0))
		out = append(out, real(v))
	}
	return out
}

// ExponentialSequence returns the real part of r·e^(p·t) at the given
// instants. It is the closed-form reference for a single right-sided analog
// pole term.
func ExponentialSequence(r, p complex128, times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = real(r * cmplx.Exp(p*complex(t, 0)))
	}
	return out
}
