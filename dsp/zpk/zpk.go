package zpk

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/JWKennington/app-dsp-filter-design/internal/polyroot"
)

// Domain selects the complex plane a Spec lives in.
type Domain int

const (
	// Analog places the spec in the Laplace s-plane. The stability
	// boundary is the imaginary axis.
	Analog Domain = iota
	// Digital places the spec in the z-plane. The stability boundary is
	// the unit circle.
	Digital
)

// String returns the lowercase domain name.
func (d Domain) String() string {
	switch d {
	case Analog:
		return "analog"
	case Digital:
		return "digital"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}

// Causality selects how the impulse response of a Spec is reconstructed.
type Causality int

const (
	// Causal renders every pole right-sided. Poles outside the stable
	// region produce the divergent causal sequence.
	Causal Causality = iota
	// AntiCausal renders each pole on whichever side converges: unstable
	// poles become left-sided (nonzero for negative time), stable poles
	// stay right-sided. This is the two-sided stable reconstruction.
	AntiCausal
)

// String returns the lowercase causality name.
func (c Causality) String() string {
	switch c {
	case Causal:
		return "causal"
	case AntiCausal:
		return "anti-causal"
	default:
		return fmt.Sprintf("Causality(%d)", int(c))
	}
}

// ErrNonFiniteGain is returned when a spec gain is NaN or infinite.
var ErrNonFiniteGain = errors.New("zpk: gain must be finite")

// ErrNonFiniteRoot is returned when a pole or zero is NaN or infinite.
var ErrNonFiniteRoot = errors.New("zpk: poles and zeros must be finite")

// ErrCoefficients is returned when transfer function coefficients reduce to
// an empty polynomial.
var ErrCoefficients = errors.New("zpk: transfer function needs a nonzero coefficient on each side")

// Spec is a zero-pole-gain filter specification.
//
// Zeros and Poles are ordered; repeated entries carry multiplicity and are
// never deduplicated. Gain is a real scalar (zero gain is a valid, degenerate
// all-zero response).
type Spec struct {
	Zeros     []complex128
	Poles     []complex128
	Gain      float64
	Domain    Domain
	Causality Causality
}

// Validate reports whether the spec can be evaluated at all: the gain and
// every root must be finite.
func (s *Spec) Validate() error {
	if math.IsNaN(s.Gain) || math.IsInf(s.Gain, 0) {
		return fmt.Errorf("%w: %v", ErrNonFiniteGain, s.Gain)
	}

	for _, z := range s.Zeros {
		if !isFinite(z) {
			return fmt.Errorf("%w: zero %v", ErrNonFiniteRoot, z)
		}
	}

	for _, p := range s.Poles {
		if !isFinite(p) {
			return fmt.Errorf("%w: pole %v", ErrNonFiniteRoot, p)
		}
	}

	return nil
}

// Eval evaluates the transfer function at an arbitrary point of the complex
// plane. If x coincides with a pole the result is infinite; callers that
// sweep a frequency axis should use the response package, which flags such
// samples explicitly.
func (s *Spec) Eval(x complex128) complex128 {
	num := complex(s.Gain, 0)
	for _, z := range s.Zeros {
		num *= x - z
	}

	den := complex(1, 0)
	for _, p := range s.Poles {
		den *= x - p
	}

	if den == 0 {
		return cmplx.Inf()
	}

	return num / den
}

// DCGain returns the zero-frequency response: H(0) for analog specs and
// H(1) (z = e^j0) for digital specs.
func (s *Spec) DCGain() complex128 {
	if s.Domain == Digital {
		return s.Eval(1)
	}

	return s.Eval(0)
}

// IsStable reports whether all poles lie strictly inside the stable region:
// the open left half-plane for analog specs, the open unit disc for digital.
func (s *Spec) IsStable() bool {
	for _, p := range s.Poles {
		if s.Domain == Digital {
			if cmplx.Abs(p) >= 1 {
				return false
			}
		} else if real(p) >= 0 {
			return false
		}
	}

	return true
}

// Order returns the numerator and denominator polynomial degrees.
func (s *Spec) Order() (numerator, denominator int) {
	return len(s.Zeros), len(s.Poles)
}

// Proper reports whether the spec has at least as many poles as zeros.
// Improper analog specs have no sampleable impulse response (their direct
// terms are Dirac derivatives).
func (s *Spec) Proper() bool {
	return len(s.Zeros) <= len(s.Poles)
}

// TransferFunction expands the spec into numerator and denominator polynomial
// coefficients in descending power order. The numerator carries the gain; the
// denominator is monic. Conjugate-symmetric root sets yield coefficients with
// negligible imaginary parts.
func (s *Spec) TransferFunction() (b, a []complex128) {
	b = polyroot.FromRoots(s.Zeros)
	for i := range b {
		b[i] *= complex(s.Gain, 0)
	}

	a = polyroot.FromRoots(s.Poles)

	return b, a
}

// FromTransferFunction factors real numerator and denominator coefficients
// (descending power order) into a Spec, the inverse of TransferFunction up to
// root ordering. Leading zero coefficients are trimmed; the remaining leading
// coefficients carry the gain. Roots are recovered numerically and snapped
// back to exact conjugate symmetry, so round-tripping a real filter keeps its
// impulse response real.
func FromTransferFunction(b, a []float64, domain Domain, causality Causality) (*Spec, error) {
	bn := trimLeadingZeros(b)
	an := trimLeadingZeros(a)

	if len(bn) == 0 || len(an) == 0 {
		return nil, ErrCoefficients
	}

	zeros, err := realRoots(bn)
	if err != nil {
		return nil, err
	}

	poles, err := realRoots(an)
	if err != nil {
		return nil, err
	}

	return &Spec{
		Zeros:     zeros,
		Poles:     poles,
		Gain:      bn[0] / an[0],
		Domain:    domain,
		Causality: causality,
	}, nil
}

// realRoots solves a real-coefficient polynomial and restores the conjugate
// symmetry the iteration blurs.
func realRoots(coeff []float64) ([]complex128, error) {
	if len(coeff) == 1 {
		return nil, nil
	}

	c := make([]complex128, len(coeff))
	for i, v := range coeff {
		c[i] = complex(v, 0)
	}

	roots, err := polyroot.DurandKerner(c)
	if err != nil {
		return nil, fmt.Errorf("zpk: %w", err)
	}

	out := make([]complex128, 0, len(roots))
	rest := make([]complex128, 0, len(roots))

	for _, r := range roots {
		if math.Abs(imag(r)) <= polyroot.ConjugateTol*math.Max(1, math.Abs(real(r))) {
			out = append(out, complex(real(r), 0))
		} else {
			rest = append(rest, r)
		}
	}

	pairs, err := polyroot.PairConjugates(rest)
	if err != nil {
		return nil, fmt.Errorf("zpk: %w", err)
	}

	for _, p := range pairs {
		m := (p[0] + cmplx.Conj(p[1])) / 2
		out = append(out, m, cmplx.Conj(m))
	}

	return out, nil
}

func trimLeadingZeros(coeff []float64) []float64 {
	for i, v := range coeff {
		if v != 0 {
			return coeff[i:]
		}
	}

	return nil
}

func isFinite(x complex128) bool {
	return !cmplx.IsNaN(x) && !cmplx.IsInf(x)
}
