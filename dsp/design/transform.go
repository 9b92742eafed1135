package design

import (
	"errors"
	"math"
	"math/cmplx"
)

var (
	// ErrImproperPrototype is returned when a prototype carries more zeros
	// than poles, which no frequency transform here can map.
	ErrImproperPrototype = errors.New("design: prototype has more zeros than poles")
	// ErrTransformSingular is returned when a transform would divide by a
	// root at an excluded location.
	ErrTransformSingular = errors.New("design: frequency transform is singular")
)

// lp2lp scales the unity-cutoff lowpass prototype to cutoff wo.
func lp2lp(z, p []complex128, k, wo float64) ([]complex128, []complex128, float64, error) {
	degree := len(p) - len(z)
	if degree < 0 {
		return nil, nil, 0, ErrImproperPrototype
	}

	w := complex(wo, 0)

	zl := make([]complex128, len(z))
	for i, zr := range z {
		zl[i] = zr * w
	}

	pl := make([]complex128, len(p))
	for i, pr := range p {
		pl[i] = pr * w
	}

	kl := k * math.Pow(wo, float64(degree))

	return zl, pl, kl, nil
}

// lp2hp turns the lowpass prototype into a highpass with cutoff wo via the
// s -> wo/s substitution. The degree mismatch becomes zeros at the origin.
func lp2hp(z, p []complex128, k, wo float64) ([]complex128, []complex128, float64, error) {
	degree := len(p) - len(z)
	if degree < 0 {
		return nil, nil, 0, ErrImproperPrototype
	}

	w := complex(wo, 0)

	zh := make([]complex128, 0, len(z)+degree)
	for _, zr := range z {
		if zr == 0 {
			return nil, nil, 0, ErrTransformSingular
		}

		zh = append(zh, w/zr)
	}

	for range degree {
		zh = append(zh, 0)
	}

	ph := make([]complex128, len(p))
	for i, pr := range p {
		if pr == 0 {
			return nil, nil, 0, ErrTransformSingular
		}

		ph[i] = w / pr
	}

	den := real(productNeg(p))
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return nil, nil, 0, ErrTransformSingular
	}

	kh := k * real(productNeg(z)) / den

	return zh, ph, kh, nil
}

// lp2bp turns the lowpass prototype into a bandpass centered at wo with
// bandwidth bw via s -> (s^2 + wo^2)/(bw s). Each prototype root splits into
// a pair; the degree mismatch becomes zeros at the origin.
func lp2bp(z, p []complex128, k, wo, bw float64) ([]complex128, []complex128, float64, error) {
	degree := len(p) - len(z)
	if degree < 0 {
		return nil, nil, 0, ErrImproperPrototype
	}

	wo2 := complex(wo*wo, 0)
	half := complex(bw/2, 0)

	zb := make([]complex128, 0, 2*len(z)+degree)
	for _, zr := range z {
		s := zr * half
		d := cmplx.Sqrt(s*s - wo2)
		zb = append(zb, s+d, s-d)
	}

	for range degree {
		zb = append(zb, 0)
	}

	pb := make([]complex128, 0, 2*len(p))
	for _, pr := range p {
		s := pr * half
		d := cmplx.Sqrt(s*s - wo2)
		pb = append(pb, s+d, s-d)
	}

	kb := k * math.Pow(bw, float64(degree))

	return zb, pb, kb, nil
}

// lp2bs turns the lowpass prototype into a bandstop centered at wo with
// bandwidth bw via s -> bw s/(s^2 + wo^2). The degree mismatch becomes
// conjugate zero pairs at ±j wo.
func lp2bs(z, p []complex128, k, wo, bw float64) ([]complex128, []complex128, float64, error) {
	degree := len(p) - len(z)
	if degree < 0 {
		return nil, nil, 0, ErrImproperPrototype
	}

	wo2 := complex(wo*wo, 0)
	half := complex(bw/2, 0)

	zb := make([]complex128, 0, 2*len(z)+2*degree)
	for _, zr := range z {
		if zr == 0 {
			return nil, nil, 0, ErrTransformSingular
		}

		s := half / zr
		d := cmplx.Sqrt(s*s - wo2)
		zb = append(zb, s+d, s-d)
	}

	for range degree {
		zb = append(zb, complex(0, wo), complex(0, -wo))
	}

	pb := make([]complex128, 0, 2*len(p))
	for _, pr := range p {
		if pr == 0 {
			return nil, nil, 0, ErrTransformSingular
		}

		s := half / pr
		d := cmplx.Sqrt(s*s - wo2)
		pb = append(pb, s+d, s-d)
	}

	den := real(productNeg(p))
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return nil, nil, 0, ErrTransformSingular
	}

	kb := k * real(productNeg(z)) / den

	return zb, pb, kb, nil
}

// bilinear maps an analog design onto the z-plane with the bilinear
// transform at virtual sample rate fs. Analog infinity maps to z = -1, so
// the degree mismatch becomes zeros at the Nyquist point.
func bilinear(z, p []complex128, k, fs float64) ([]complex128, []complex128, float64, error) {
	degree := len(p) - len(z)
	if degree < 0 {
		return nil, nil, 0, ErrImproperPrototype
	}

	fs2 := complex(2*fs, 0)

	zd := make([]complex128, 0, len(z)+degree)
	for _, zr := range z {
		den := fs2 - zr
		if den == 0 {
			return nil, nil, 0, ErrTransformSingular
		}

		zd = append(zd, (fs2+zr)/den)
	}

	for range degree {
		zd = append(zd, -1)
	}

	pd := make([]complex128, len(p))
	for i, pr := range p {
		den := fs2 - pr
		if den == 0 {
			return nil, nil, 0, ErrTransformSingular
		}

		pd[i] = (fs2 + pr) / den
	}

	num := productShifted(z, fs2)

	den := productShifted(p, fs2)
	if den == 0 {
		return nil, nil, 0, ErrTransformSingular
	}

	kd := k * real(num/den)
	if math.IsNaN(kd) || math.IsInf(kd, 0) {
		return nil, nil, 0, ErrTransformSingular
	}

	return zd, pd, kd, nil
}

// productShifted returns Π(c - vᵢ); the product over an empty slice is 1.
func productShifted(v []complex128, c complex128) complex128 {
	out := complex(1, 0)
	for _, x := range v {
		out *= c - x
	}

	return out
}
