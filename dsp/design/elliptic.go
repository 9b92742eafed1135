package design

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/JWKennington/app-dsp-filter-design/internal/ellipticmath"
)

const (
	ellipticTol     = 2.2e-16
	ellipticEpsilon = 2.220446049250313e-16
	arcJacSNMaxIter = 10
	arcJacImagCheck = 1e-7
	degreeSeriesLen = 7
)

// ErrEllipticDegenerate is returned when the Jacobi elliptic iteration fails
// to produce a usable pole-zero set for the requested ripple pair.
var ErrEllipticDegenerate = errors.New("design: elliptic prototype is degenerate for the given ripple values")

// ellipticPrototype builds the analog lowpass elliptic (Cauer) prototype.
// Poles and zeros come from Jacobi elliptic functions evaluated on the
// modulus that solves the degree equation for the ripple pair; the passband
// edge sits at ω = 1.
func ellipticPrototype(order int, rippleDB, attenDB float64) ([]complex128, []complex128, float64, error) {
	epsSq := dbToMinusOne(rippleDB)
	stopSq := dbToMinusOne(attenDB)

	ck1Sq := epsSq / stopSq
	if !(ck1Sq > 0 && ck1Sq < 1) {
		return nil, nil, 0, ErrEllipticDegenerate
	}

	if order == 1 {
		p := -math.Sqrt(1.0 / epsSq)
		return nil, []complex128{complex(p, 0)}, -p, nil
	}

	m := degreeEquationParam(order, ck1Sq)
	if !(m > 0 && m < 1) {
		return nil, nil, 0, ErrEllipticDegenerate
	}

	kmod := math.Sqrt(m)
	capk, _ := ellipticmath.EllipK(kmod, ellipticTol)
	ck1 := math.Sqrt(ck1Sq)

	capk1, _ := ellipticmath.EllipK(ck1, ellipticTol)
	if !finitePositive(capk) || !finitePositive(capk1) {
		return nil, nil, 0, ErrEllipticDegenerate
	}

	start := 1 - order%2
	svals := make([]float64, 0, (order+1)/2)
	cvals := make([]float64, 0, (order+1)/2)
	dvals := make([]float64, 0, (order+1)/2)
	zerosBase := make([]complex128, 0, order)

	for j := start; j < order; j += 2 {
		u := float64(j) * capk / float64(order)

		sn, cn, dn, err := jacobiSCD(u, kmod)
		if err != nil {
			return nil, nil, 0, err
		}

		svals = append(svals, sn)
		cvals = append(cvals, cn)

		dvals = append(dvals, dn)
		if math.Abs(sn) > ellipticEpsilon {
			zerosBase = append(zerosBase, complex(0, 1)/(complex(kmod*sn, 0)))
		}
	}

	eps := math.Sqrt(epsSq)

	r := arcJacSC1(1.0/eps, ck1Sq)
	if !(r > 0) || math.IsNaN(r) || math.IsInf(r, 0) {
		return nil, nil, 0, ErrEllipticDegenerate
	}

	v0 := capk * r / (float64(order) * capk1)

	sv, cv, dv, err := jacobiSCD(v0, math.Sqrt(1.0-m))
	if err != nil {
		return nil, nil, 0, err
	}

	polesBase := make([]complex128, len(svals))
	for i := range svals {
		den := 1.0 - (dvals[i]*sv)*(dvals[i]*sv)
		if math.Abs(den) <= ellipticEpsilon {
			return nil, nil, 0, ErrEllipticDegenerate
		}

		num := complex(cvals[i]*dvals[i]*sv*cv, svals[i]*dv)
		polesBase[i] = -num / complex(den, 0)
	}

	poles := make([]complex128, 0, order)
	if order%2 == 1 {
		norm2 := 0.0
		for _, p := range polesBase {
			norm2 += real(p * cmplx.Conj(p))
		}

		thr := ellipticEpsilon * math.Sqrt(norm2)

		poles = append(poles, polesBase...)
		for _, p := range polesBase {
			if math.Abs(imag(p)) > thr {
				poles = append(poles, cmplx.Conj(p))
			}
		}
	} else {
		poles = append(poles, polesBase...)
		for _, p := range polesBase {
			poles = append(poles, cmplx.Conj(p))
		}
	}

	zeros := make([]complex128, 0, len(zerosBase)*2)
	for _, z := range zerosBase {
		zeros = append(zeros, z, cmplx.Conj(z))
	}

	prodZ := productNeg(zeros)
	if prodZ == 0 {
		return nil, nil, 0, ErrEllipticDegenerate
	}

	gain := real(productNeg(poles) / prodZ)
	if order%2 == 0 {
		gain /= math.Sqrt(1.0 + epsSq)
	}

	if gain == 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
		return nil, nil, 0, ErrEllipticDegenerate
	}

	return zeros, poles, gain, nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// jacobiSCD evaluates the Jacobi functions sn, cn, dn at a real argument for
// modulus k in [0, 1).
func jacobiSCD(u, k float64) (float64, float64, float64, error) {
	if !(k >= 0 && k < 1) {
		return 0, 0, 0, ErrEllipticDegenerate
	}

	capk, _ := ellipticmath.EllipK(k, ellipticTol)
	if !finitePositive(capk) {
		return 0, 0, 0, ErrEllipticDegenerate
	}

	uNorm := u / capk

	sn := ellipticmath.SNE([]float64{uNorm}, k, ellipticTol)[0]
	if math.IsNaN(sn) || math.IsInf(sn, 0) {
		return 0, 0, 0, ErrEllipticDegenerate
	}

	dn2 := 1.0 - k*k*sn*sn
	if dn2 < -1e-12 {
		return 0, 0, 0, ErrEllipticDegenerate
	}

	if dn2 < 0 {
		dn2 = 0
	}

	dn := math.Sqrt(dn2)
	cd := real(ellipticmath.CDE(complex(uNorm, 0), k, ellipticTol))
	cn := cd * dn

	return sn, cn, dn, nil
}

// arcJacSC1 computes the inverse sc function at a purely imaginary argument.
// The real part of the inverse sn must vanish; a nonzero real part marks a
// numerically invalid input and yields NaN.
func arcJacSC1(w, m float64) float64 {
	z := arcJacSN(complex(0, w), m)
	if math.Abs(real(z)) > arcJacImagCheck*math.Max(1.0, math.Abs(imag(z))) {
		return math.NaN()
	}

	return imag(z)
}

func jacobiComplement(k complex128) complex128 {
	return cmplx.Sqrt((1.0 - k) * (1.0 + k))
}

// arcJacSN inverts the Jacobi sn function via a descending Landen sequence.
func arcJacSN(w complex128, m float64) complex128 {
	if m < 0 || m > 1 {
		return complex(math.NaN(), math.NaN())
	}

	k := complex(math.Sqrt(m), 0)
	if real(k) == 1 {
		return cmplx.Atanh(w)
	}

	ks := []complex128{k}
	for range arcJacSNMaxIter - 1 {
		kn := ks[len(ks)-1]
		if cmplx.Abs(kn) == 0 {
			break
		}

		kp := jacobiComplement(kn)
		ks = append(ks, (1.0-kp)/(1.0+kp))
	}

	capk := 1.0
	for i := 1; i < len(ks); i++ {
		capk *= real(1.0 + ks[i])
	}

	capk *= math.Pi * 0.5

	wn := w

	for i := range len(ks) - 1 {
		kn := ks[i]
		knext := ks[i+1]

		den := (1.0 + knext) * (1.0 + jacobiComplement(kn*wn))
		if den == 0 {
			return complex(math.NaN(), math.NaN())
		}

		wn = 2.0 * wn / den
	}

	u := (2.0 / math.Pi) * cmplx.Asin(wn)

	return complex(capk, 0) * u
}

// degreeEquationParam solves the elliptic degree equation for the prototype
// modulus m given the order and the squared ripple-ratio modulus m1, using a
// truncated theta-function series for the nome.
func degreeEquationParam(n int, m1 float64) float64 {
	if n <= 0 || !(m1 > 0 && m1 < 1) {
		return math.NaN()
	}

	k1 := math.Sqrt(m1)
	capk1, _ := ellipticmath.EllipK(k1, ellipticTol)

	capk1p, _ := ellipticmath.EllipK(math.Sqrt(1.0-m1), ellipticTol)
	if !finitePositive(capk1) || !finitePositive(capk1p) {
		return math.NaN()
	}

	q1 := math.Exp(-math.Pi * capk1p / capk1)
	q := math.Pow(q1, 1.0/float64(n))

	num := 0.0
	for j := range degreeSeriesLen {
		num += math.Pow(q, float64(j*(j+1)))
	}

	den := 1.0
	for j := 1; j < degreeSeriesLen; j++ {
		den += 2.0 * math.Pow(q, float64(j*j))
	}

	return 16.0 * q * math.Pow(num/den, 4.0)
}
