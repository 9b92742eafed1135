package design

import (
	"math"
)

// butterworthPrototype places the poles of a unity-cutoff Butterworth
// lowpass on the left half of the unit circle.
func butterworthPrototype(order int) ([]complex128, []complex128, float64, error) {
	poles := make([]complex128, order)
	for k := range order {
		theta := math.Pi * float64(2*k+1) / (2 * float64(order))
		poles[k] = complex(-math.Sin(theta), math.Cos(theta))
	}

	return nil, poles, 1, nil
}

// chebyshev1Prototype builds the Chebyshev type I lowpass prototype: poles
// on an ellipse whose eccentricity follows the ripple, no zeros. The gain is
// chosen so the passband oscillates between 0 and -ripple dB.
func chebyshev1Prototype(order int, rippleDB float64) ([]complex128, []complex128, float64, error) {
	eps := math.Sqrt(dbToMinusOne(rippleDB))
	mu := math.Asinh(1/eps) / float64(order)

	sinhMu := math.Sinh(mu)
	coshMu := math.Cosh(mu)

	poles := make([]complex128, order)
	for k := range order {
		theta := math.Pi * float64(2*k+1) / (2 * float64(order))
		poles[k] = complex(-sinhMu*math.Sin(theta), coshMu*math.Cos(theta))
	}

	gain := real(productNeg(poles))
	if order%2 == 0 {
		gain /= math.Sqrt(1 + eps*eps)
	}

	return nil, poles, gain, nil
}

// chebyshev2Prototype builds the inverse Chebyshev lowpass prototype:
// equiripple stopband starting at ω = 1, imaginary-axis zeros at the
// stopband ripple nulls, poles at the inverted type-I locations.
func chebyshev2Prototype(order int, attenDB float64) ([]complex128, []complex128, float64, error) {
	de := 1 / math.Sqrt(dbToMinusOne(attenDB))
	mu := math.Asinh(1/de) / float64(order)

	sinhMu := math.Sinh(mu)
	coshMu := math.Cosh(mu)

	zeros := make([]complex128, 0, order)
	poles := make([]complex128, order)

	for k := range order {
		theta := math.Pi * float64(2*k+1) / (2 * float64(order))

		// The middle angle of odd orders has cos θ = 0: no finite zero.
		if order%2 == 0 || k != (order-1)/2 {
			zeros = append(zeros, complex(0, 1/math.Cos(theta)))
		}

		poles[k] = 1 / complex(-sinhMu*math.Sin(theta), coshMu*math.Cos(theta))
	}

	gain := real(productNeg(poles) / productNeg(zeros))

	return zeros, poles, gain, nil
}

// dbToMinusOne returns 10^(db/10) - 1 without cancellation for small db.
func dbToMinusOne(db float64) float64 {
	return math.Expm1(math.Ln10 * db / 10.0)
}

// productNeg returns Π(-vᵢ); the product over an empty slice is 1.
func productNeg(v []complex128) complex128 {
	out := complex(1, 0)
	for _, x := range v {
		out *= -x
	}

	return out
}
