// Package webapi backs the browser demo with filter state and plot data.
//
// A Session holds one pole-zero filter and produces the arrays the front
// end plots: frequency response, impulse response, and the pole-zero map.
// The package has no syscall/js dependency so it stays testable on any
// platform; the wasm entry point does the JS marshalling.
package webapi

import (
	"errors"
	"fmt"

	"github.com/JWKennington/app-dsp-filter-design/dsp/design"
	"github.com/JWKennington/app-dsp-filter-design/dsp/impulse"
	"github.com/JWKennington/app-dsp-filter-design/dsp/response"
	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

// ErrRootCount is returned when paired coordinate arrays disagree in length.
var ErrRootCount = errors.New("webapi: real and imaginary parts must have equal length")

// ResponseData carries one frequency response trace.
type ResponseData struct {
	Frequencies []float64
	MagnitudeDB []float64
	PhaseDeg    []float64
}

// ImpulseData carries one impulse response trace. Axis holds sample indices
// for digital filters and time instants for analog ones.
type ImpulseData struct {
	Axis       []float64
	Amplitudes []float64
}

// PoleZeroData carries root locations split into coordinate arrays, the
// shape plotting libraries consume directly.
type PoleZeroData struct {
	ZeroRe []float64
	ZeroIm []float64
	PoleRe []float64
	PoleIm []float64
}

// Session holds the filter under edit.
type Session struct {
	spec *zpk.Spec
}

// NewSession starts with a modest digital lowpass so the first render has
// something to show.
func NewSession() (*Session, error) {
	spec, err := design.Filter(design.Butterworth, design.Lowpass, 4, zpk.Digital, 0.25, 0)
	if err != nil {
		return nil, err
	}

	return &Session{spec: spec}, nil
}

// Spec returns the current filter.
func (s *Session) Spec() *zpk.Spec {
	return s.spec
}

// SetRoots replaces the filter with explicit zeros, poles, and gain. The
// current domain and causality are kept.
func (s *Session) SetRoots(zeroRe, zeroIm, poleRe, poleIm []float64, gain float64) error {
	if len(zeroRe) != len(zeroIm) || len(poleRe) != len(poleIm) {
		return ErrRootCount
	}

	next := &zpk.Spec{
		Zeros:     zipComplex(zeroRe, zeroIm),
		Poles:     zipComplex(poleRe, poleIm),
		Gain:      gain,
		Domain:    s.spec.Domain,
		Causality: s.spec.Causality,
	}
	if err := next.Validate(); err != nil {
		return err
	}

	s.spec = next

	return nil
}

// SetCoefficients replaces the filter with one given as real transfer
// function coefficients in descending power order, for front ends that edit
// polynomials instead of root positions. The current domain and causality
// are kept.
func (s *Session) SetCoefficients(b, a []float64) error {
	next, err := zpk.FromTransferFunction(b, a, s.spec.Domain, s.spec.Causality)
	if err != nil {
		return err
	}

	s.spec = next

	return nil
}

// SetDomain switches between the analog and digital interpretation of the
// current roots.
func (s *Session) SetDomain(name string) error {
	switch name {
	case zpk.Analog.String():
		s.spec.Domain = zpk.Analog
	case zpk.Digital.String():
		s.spec.Domain = zpk.Digital
	default:
		return fmt.Errorf("webapi: unknown domain %q", name)
	}

	return nil
}

// SetCausality switches the impulse response sidedness rule.
func (s *Session) SetCausality(name string) error {
	switch name {
	case zpk.Causal.String():
		s.spec.Causality = zpk.Causal
	case zpk.AntiCausal.String():
		s.spec.Causality = zpk.AntiCausal
	default:
		return fmt.Errorf("webapi: unknown causality %q", name)
	}

	return nil
}

// Design replaces the filter with a classical design. Causality resets to
// causal, which is what every design here produces.
func (s *Session) Design(family, shape string, order int, domain string, cutoff1, cutoff2, rippleDB, attenDB float64) error {
	fam, err := design.ParseFamily(family)
	if err != nil {
		return err
	}

	shp, err := design.ParseShape(shape)
	if err != nil {
		return err
	}

	dom := zpk.Digital
	if domain == zpk.Analog.String() {
		dom = zpk.Analog
	}

	spec, err := design.Filter(fam, shp, order, dom, cutoff1, cutoff2,
		design.WithPassbandRippleDB(rippleDB), design.WithStopbandAttenuationDB(attenDB))
	if err != nil {
		return err
	}

	s.spec = spec

	return nil
}

// PoleZero returns the current root map.
func (s *Session) PoleZero() PoleZeroData {
	zr, zi := splitComplex(s.spec.Zeros)
	pr, pi := splitComplex(s.spec.Poles)

	return PoleZeroData{ZeroRe: zr, ZeroIm: zi, PoleRe: pr, PoleIm: pi}
}

// FrequencyResponse evaluates the current filter on its default axis.
func (s *Session) FrequencyResponse() (*ResponseData, error) {
	resp, err := response.ComputeDefault(s.spec)
	if err != nil {
		return nil, err
	}

	return &ResponseData{
		Frequencies: resp.Frequencies(),
		MagnitudeDB: resp.MagnitudeDB(),
		PhaseDeg:    resp.PhaseDeg(),
	}, nil
}

// ImpulseResponse evaluates the current filter's impulse response on its
// default grid.
func (s *Session) ImpulseResponse() (*ImpulseData, error) {
	if s.spec.Domain == zpk.Digital {
		resp, err := impulse.Digital(s.spec, impulse.DefaultIndexRange())
		if err != nil {
			return nil, err
		}

		axis := make([]float64, len(resp.Indices))
		for i, n := range resp.Indices {
			axis[i] = float64(n)
		}

		return &ImpulseData{Axis: axis, Amplitudes: resp.Amplitudes}, nil
	}

	resp, err := impulse.Analog(s.spec, impulse.DefaultGrid(s.spec))
	if err != nil {
		return nil, err
	}

	return &ImpulseData{Axis: resp.Times, Amplitudes: resp.Amplitudes}, nil
}

func zipComplex(re, im []float64) []complex128 {
	out := make([]complex128, len(re))
	for i := range re {
		out[i] = complex(re[i], im[i])
	}

	return out
}

func splitComplex(v []complex128) (re, im []float64) {
	re = make([]float64, len(v))
	im = make([]float64, len(v))

	for i, x := range v {
		re[i] = real(x)
		im[i] = imag(x)
	}

	return re, im
}
