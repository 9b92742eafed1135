package webapi

import (
	"errors"
	"testing"

	"github.com/JWKennington/app-dsp-filter-design/dsp/response"
	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
	"github.com/JWKennington/app-dsp-filter-design/internal/testutil"
)

func TestNewSessionHasUsableFilter(t *testing.T) {
	s, err := NewSession()
	if err != nil {
		t.Fatal(err)
	}

	if !s.Spec().IsStable() {
		t.Error("initial filter should be stable")
	}

	resp, err := s.FrequencyResponse()
	if err != nil {
		t.Fatal(err)
	}

	if len(resp.Frequencies) != response.DefaultPoints {
		t.Errorf("expected %d points, got %d", response.DefaultPoints, len(resp.Frequencies))
	}

	testutil.RequireFinite(t, resp.MagnitudeDB)
	testutil.RequireFinite(t, resp.PhaseDeg)

	imp, err := s.ImpulseResponse()
	if err != nil {
		t.Fatal(err)
	}

	if len(imp.Axis) != len(imp.Amplitudes) {
		t.Fatalf("axis and amplitude lengths differ: %d vs %d", len(imp.Axis), len(imp.Amplitudes))
	}

	testutil.RequireFinite(t, imp.Amplitudes)
}

func TestSetRoots(t *testing.T) {
	s, err := NewSession()
	if err != nil {
		t.Fatal(err)
	}

	if err := s.SetRoots([]float64{0}, []float64{0}, []float64{0.5, 0.5}, []float64{0.2, -0.2}, 2); err != nil {
		t.Fatal(err)
	}

	pz := s.PoleZero()
	if len(pz.ZeroRe) != 1 || len(pz.PoleRe) != 2 {
		t.Fatalf("unexpected root counts: %d zeros, %d poles", len(pz.ZeroRe), len(pz.PoleRe))
	}

	testutil.RequireNear(t, pz.PoleIm[1], -0.2, 0)
	testutil.RequireNear(t, s.Spec().Gain, 2, 0)

	if err := s.SetRoots([]float64{1}, nil, nil, nil, 1); !errors.Is(err, ErrRootCount) {
		t.Fatalf("expected ErrRootCount, got %v", err)
	}
}

func TestSetCoefficients(t *testing.T) {
	s, err := NewSession()
	if err != nil {
		t.Fatal(err)
	}

	// H(z) = 2(z+1)/(z-0.5): one zero at -1, one pole at 0.5.
	if err := s.SetCoefficients([]float64{2, 2}, []float64{1, -0.5}); err != nil {
		t.Fatal(err)
	}

	pz := s.PoleZero()
	if len(pz.ZeroRe) != 1 || len(pz.PoleRe) != 1 {
		t.Fatalf("unexpected root counts: %d zeros, %d poles", len(pz.ZeroRe), len(pz.PoleRe))
	}

	testutil.RequireNear(t, pz.ZeroRe[0], -1, 1e-9)
	testutil.RequireNear(t, pz.PoleRe[0], 0.5, 1e-9)
	testutil.RequireNear(t, s.Spec().Gain, 2, 1e-9)

	if s.Spec().Domain != zpk.Digital {
		t.Errorf("domain = %v, want digital", s.Spec().Domain)
	}

	if err := s.SetCoefficients(nil, []float64{1}); err == nil {
		t.Error("expected error for empty numerator")
	}
}

func TestDomainAndCausalitySwitch(t *testing.T) {
	s, err := NewSession()
	if err != nil {
		t.Fatal(err)
	}

	if err := s.SetDomain("analog"); err != nil {
		t.Fatal(err)
	}

	if s.Spec().Domain != zpk.Analog {
		t.Errorf("domain = %v, want analog", s.Spec().Domain)
	}

	if err := s.SetDomain("planar"); err == nil {
		t.Error("expected error for unknown domain")
	}

	if err := s.SetCausality("anti-causal"); err != nil {
		t.Fatal(err)
	}

	if s.Spec().Causality != zpk.AntiCausal {
		t.Errorf("causality = %v, want anti-causal", s.Spec().Causality)
	}

	if err := s.SetCausality("sideways"); err == nil {
		t.Error("expected error for unknown causality")
	}
}

func TestDesign(t *testing.T) {
	s, err := NewSession()
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Design("elliptic", "bandpass", 4, "digital", 0.2, 0.4, 0.5, 50); err != nil {
		t.Fatal(err)
	}

	if !s.Spec().IsStable() {
		t.Error("designed filter should be stable")
	}

	if s.Spec().Domain != zpk.Digital {
		t.Errorf("domain = %v, want digital", s.Spec().Domain)
	}

	if err := s.Design("legendre", "lowpass", 4, "digital", 0.2, 0, 1, 40); err == nil {
		t.Error("expected error for unknown family")
	}

	if err := s.Design("butterworth", "allpass", 4, "digital", 0.2, 0, 1, 40); err == nil {
		t.Error("expected error for unknown shape")
	}
}
