package residue

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

const (
	// poleMatchTol is the relative distance below which two poles count as
	// repeated.
	poleMatchTol = 1e-9
	// originTol is the magnitude below which a digital pole counts as
	// sitting on the origin.
	originTol = 1e-12
)

var (
	// ErrRepeatedPoles is returned when two poles coincide within
	// tolerance. Repeated poles require derivative terms the simple-pole
	// expansion cannot produce.
	ErrRepeatedPoles = errors.New("residue: repeated poles require higher-order partial fractions")

	// ErrImproper is returned for analog specs with more zeros than
	// poles; their direct terms are Dirac derivatives with no sample-grid
	// representation.
	ErrImproper = errors.New("residue: improper transfer function")

	// ErrOriginPole is returned for digital poles at z = 0. In the z⁻¹
	// expansion such a pole is a pure delay, not a geometric term.
	ErrOriginPole = errors.New("residue: digital pole at the origin is a pure delay")
)

// Expansion is a transfer function decomposed over its simple poles.
// Residues[i] belongs to Poles[i]. For digital expansions Direct[n] is the
// coefficient of a unit sample at index n; for analog expansions Direct is
// at most a single constant (a Dirac impulse weight).
type Expansion struct {
	Poles    []complex128
	Residues []complex128
	Direct   []complex128
}

// Analog expands an analog spec as H(s) = Σ rᵢ/(s−pᵢ) + k.
//
// The residue at a simple pole is rᵢ = Gain·Π(pᵢ−zⱼ)/Π_{j≠i}(pᵢ−pⱼ). The
// direct constant k equals the gain when numerator and denominator have equal
// degree and is absent otherwise.
func Analog(spec *zpk.Spec) (*Expansion, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("residue: %w", err)
	}

	if !spec.Proper() {
		return nil, fmt.Errorf("%w: %d zeros over %d poles", ErrImproper, len(spec.Zeros), len(spec.Poles))
	}

	if err := requireSimplePoles(spec.Poles); err != nil {
		return nil, err
	}

	out := &Expansion{
		Poles:    append([]complex128(nil), spec.Poles...),
		Residues: make([]complex128, len(spec.Poles)),
	}

	for i, p := range spec.Poles {
		out.Residues[i] = residueAt(spec, i, p, 0)
	}

	if len(spec.Zeros) == len(spec.Poles) {
		out.Direct = []complex128{complex(spec.Gain, 0)}
	}

	return out, nil
}

// Digital expands a digital spec as H(z) = Σ rᵢ/(1−pᵢz⁻¹) + Σ kₙz⁻ⁿ.
//
// The residue at a simple pole pᵢ is
//
//	rᵢ = Gain · pᵢ^(Np−Nz−1) · Π(pᵢ−zⱼ) / Π_{j≠i}(pᵢ−pⱼ)
//
// where Np and Nz are the pole and zero counts. Direct terms appear when
// Nz ≥ Np; they are recovered by subtracting the pole series from the causal
// power series of the transfer function.
func Digital(spec *zpk.Spec) (*Expansion, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("residue: %w", err)
	}

	for _, p := range spec.Poles {
		if cmplx.Abs(p) < originTol {
			return nil, ErrOriginPole
		}
	}

	if err := requireSimplePoles(spec.Poles); err != nil {
		return nil, err
	}

	np, nz := len(spec.Poles), len(spec.Zeros)

	out := &Expansion{
		Poles:    append([]complex128(nil), spec.Poles...),
		Residues: make([]complex128, np),
	}

	for i, p := range spec.Poles {
		out.Residues[i] = residueAt(spec, i, p, np-nz-1)
	}

	if d := nz - np; d >= 0 {
		out.Direct = directTerms(spec, out, d)
	}

	return out, nil
}

// residueAt computes Gain·p^shift·Π(p−zⱼ)/Π_{j≠i}(p−pⱼ).
func residueAt(spec *zpk.Spec, i int, p complex128, shift int) complex128 {
	r := complex(spec.Gain, 0) * powInt(p, shift)
	for _, z := range spec.Zeros {
		r *= p - z
	}

	for j, q := range spec.Poles {
		if j == i {
			continue
		}

		r /= p - q
	}

	return r
}

// directTerms recovers the delta coefficients k₀..k_d: the causal power
// series of H minus the contribution of every pole term at indices 0..d.
func directTerms(spec *zpk.Spec, exp *Expansion, d int) []complex128 {
	b, a := spec.TransferFunction()

	series := make([]complex128, d+1)
	for n := range series {
		v := complex(0, 0)
		if n < len(b) {
			v = b[n]
		}

		for m := 1; m <= n && m < len(a); m++ {
			v -= a[m] * series[n-m]
		}

		series[n] = v / a[0]
	}

	direct := make([]complex128, d+1)
	for n := range direct {
		v := series[n]
		for i, r := range exp.Residues {
			v -= r * powInt(exp.Poles[i], n)
		}

		direct[n] = v
	}

	return direct
}

func requireSimplePoles(poles []complex128) error {
	for i := range poles {
		for j := i + 1; j < len(poles); j++ {
			d := cmplx.Abs(poles[i] - poles[j])
			if d <= poleMatchTol*math.Max(1, cmplx.Abs(poles[i])) {
				return fmt.Errorf("%w: pole %v has multiplicity > 1", ErrRepeatedPoles, poles[i])
			}
		}
	}

	return nil
}

// powInt raises x to an integer power by repeated multiplication. Negative
// exponents divide; callers guarantee x is nonzero in that case.
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
