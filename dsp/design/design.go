package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

// Family selects the approximation family of a design.
type Family int

const (
	Butterworth Family = iota
	ChebyshevI
	ChebyshevII
	Elliptic
	Bessel
)

// String returns the conventional family name.
func (f Family) String() string {
	switch f {
	case Butterworth:
		return "butterworth"
	case ChebyshevI:
		return "chebyshev1"
	case ChebyshevII:
		return "chebyshev2"
	case Elliptic:
		return "elliptic"
	case Bessel:
		return "bessel"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// ParseFamily maps a family name to its constant. It accepts the String
// forms above.
func ParseFamily(name string) (Family, error) {
	switch name {
	case "butterworth":
		return Butterworth, nil
	case "chebyshev1":
		return ChebyshevI, nil
	case "chebyshev2":
		return ChebyshevII, nil
	case "elliptic":
		return Elliptic, nil
	case "bessel":
		return Bessel, nil
	default:
		return 0, fmt.Errorf("design: unknown family %q", name)
	}
}

// Shape selects the frequency transformation applied to the lowpass
// prototype.
type Shape int

const (
	Lowpass Shape = iota
	Highpass
	Bandpass
	Bandstop
)

// String returns the conventional shape name.
func (s Shape) String() string {
	switch s {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	case Bandstop:
		return "bandstop"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape maps a shape name to its constant.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "lowpass":
		return Lowpass, nil
	case "highpass":
		return Highpass, nil
	case "bandpass":
		return Bandpass, nil
	case "bandstop":
		return Bandstop, nil
	default:
		return 0, fmt.Errorf("design: unknown shape %q", name)
	}
}

const (
	// DefaultPassbandRippleDB is the ripple used by Chebyshev I and
	// elliptic designs unless overridden.
	DefaultPassbandRippleDB = 1.0
	// DefaultStopbandAttenuationDB is the attenuation used by
	// Chebyshev II and elliptic designs unless overridden.
	DefaultStopbandAttenuationDB = 40.0

	// minCutoff keeps clamped cutoffs strictly positive.
	minCutoff = 1e-6
	// maxDigitalCutoff keeps digital cutoffs strictly below Nyquist.
	maxDigitalCutoff = 0.999

	// prewarpFS is the virtual sample rate of the bilinear transform.
	// Cutoffs are prewarped against it so the digital response hits the
	// requested band edges exactly.
	prewarpFS = 2.0
)

var (
	// ErrOrder is returned for nonpositive filter orders.
	ErrOrder = errors.New("design: order must be >= 1")
	// ErrBandEdges is returned when a band design's edges coincide after
	// clamping.
	ErrBandEdges = errors.New("design: band edges must be distinct")
	// ErrRippleSpec is returned when the stopband attenuation does not
	// exceed the passband ripple.
	ErrRippleSpec = errors.New("design: stopband attenuation must exceed passband ripple")
)

// Option overrides ripple-family parameters.
type Option func(*config)

type config struct {
	rippleDB float64
	attenDB  float64
}

// WithPassbandRippleDB sets the passband ripple for Chebyshev I and
// elliptic designs.
func WithPassbandRippleDB(db float64) Option {
	return func(c *config) {
		if db > 0 {
			c.rippleDB = db
		}
	}
}

// WithStopbandAttenuationDB sets the minimum stopband attenuation for
// Chebyshev II and elliptic designs.
func WithStopbandAttenuationDB(db float64) Option {
	return func(c *config) {
		if db > 0 {
			c.attenDB = db
		}
	}
}

// Filter designs a zero-pole-gain filter. cutoff2 is only read by the band
// shapes; the two edges are sorted, so argument order does not matter.
// Out-of-range cutoffs are clamped rather than rejected, matching what an
// interactive control surface needs.
func Filter(family Family, shape Shape, order int, domain zpk.Domain, cutoff1, cutoff2 float64, opts ...Option) (*zpk.Spec, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrOrder, order)
	}

	cfg := config{
		rippleDB: DefaultPassbandRippleDB,
		attenDB:  DefaultStopbandAttenuationDB,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.attenDB <= cfg.rippleDB {
		return nil, fmt.Errorf("%w: %v dB <= %v dB", ErrRippleSpec, cfg.attenDB, cfg.rippleDB)
	}

	lo, hi := clampCutoffs(domain, cutoff1, cutoff2)

	zeros, poles, gain, err := prototype(family, order, cfg)
	if err != nil {
		return nil, err
	}

	w1, w2 := lo, hi
	if domain == zpk.Digital {
		w1 = prewarp(lo)
		w2 = prewarp(hi)
	}

	switch shape {
	case Lowpass:
		zeros, poles, gain, err = lp2lp(zeros, poles, gain, w1)
	case Highpass:
		zeros, poles, gain, err = lp2hp(zeros, poles, gain, w1)
	case Bandpass, Bandstop:
		if w1 == w2 {
			return nil, fmt.Errorf("%w: %v", ErrBandEdges, lo)
		}

		wo := math.Sqrt(w1 * w2)
		bw := w2 - w1
		if shape == Bandpass {
			zeros, poles, gain, err = lp2bp(zeros, poles, gain, wo, bw)
		} else {
			zeros, poles, gain, err = lp2bs(zeros, poles, gain, wo, bw)
		}
	}

	if err != nil {
		return nil, err
	}

	if domain == zpk.Digital {
		zeros, poles, gain, err = bilinear(zeros, poles, gain, prewarpFS)
		if err != nil {
			return nil, err
		}
	}

	return &zpk.Spec{
		Zeros:     zeros,
		Poles:     poles,
		Gain:      gain,
		Domain:    domain,
		Causality: zpk.Causal,
	}, nil
}

// clampCutoffs applies the interactive safety clamps: digital cutoffs stay
// inside (0, 1) as fractions of Nyquist, analog cutoffs stay positive. Band
// edges come back sorted.
func clampCutoffs(domain zpk.Domain, c1, c2 float64) (lo, hi float64) {
	clamp := func(c float64) float64 {
		if domain == zpk.Digital {
			return math.Min(math.Max(c, minCutoff), maxDigitalCutoff)
		}

		return math.Max(c, minCutoff)
	}

	lo, hi = clamp(c1), clamp(c2)
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo, hi
}

// prewarp maps a fraction-of-Nyquist cutoff to the analog frequency that the
// bilinear transform bends back onto it.
func prewarp(wn float64) float64 {
	return 2 * prewarpFS * math.Tan(math.Pi*wn/prewarpFS)
}

func prototype(family Family, order int, cfg config) ([]complex128, []complex128, float64, error) {
	switch family {
	case Butterworth:
		return butterworthPrototype(order)
	case ChebyshevI:
		return chebyshev1Prototype(order, cfg.rippleDB)
	case ChebyshevII:
		return chebyshev2Prototype(order, cfg.attenDB)
	case Elliptic:
		return ellipticPrototype(order, cfg.rippleDB, cfg.attenDB)
	case Bessel:
		return besselPrototype(order)
	default:
		return nil, nil, 0, fmt.Errorf("design: unknown family %d", int(family))
	}
}
