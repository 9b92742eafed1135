package response

import (
	"math"
	"testing"

	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

func TestAxisFrequencies_Linear(t *testing.T) {
	a := Axis{Start: 0, Stop: 10, Points: 11}

	f := a.Frequencies()
	if len(f) != 11 {
		t.Fatalf("got %d points, want 11", len(f))
	}
	for i, v := range f {
		if !almostEqual(v, float64(i), 1e-12) {
			t.Fatalf("point %d = %v, want %d", i, v, i)
		}
	}
}

func TestAxisFrequencies_LogEndpoints(t *testing.T) {
	a := Axis{Start: 0.1, Stop: 1000, Points: 5, Spacing: Logarithmic}

	f := a.Frequencies()
	if !almostEqual(f[0], 0.1, 1e-12) || !almostEqual(f[4], 1000, 1e-9) {
		t.Fatalf("endpoints = %v, %v; want 0.1, 1000", f[0], f[4])
	}

	// One decade per step.
	for i := 1; i < len(f); i++ {
		if !almostEqual(f[i]/f[i-1], 10, 1e-9) {
			t.Fatalf("step %d ratio = %v, want 10", i, f[i]/f[i-1])
		}
	}
}

func TestAxisFrequencies_SinglePoint(t *testing.T) {
	a := Axis{Start: 3, Stop: 7, Points: 1}
	if f := a.Frequencies(); len(f) != 1 || f[0] != 3 {
		t.Fatalf("single-point axis = %v, want {3}", f)
	}
}

func TestAxisValidate(t *testing.T) {
	if err := (Axis{Points: 0}).Validate(); err == nil {
		t.Error("zero points should be invalid")
	}
	if err := (Axis{Start: 0, Stop: 10, Points: 5, Spacing: Logarithmic}).Validate(); err == nil {
		t.Error("log axis starting at 0 should be invalid")
	}
	if err := (Axis{Start: 1, Stop: 10, Points: 5, Spacing: Logarithmic}).Validate(); err != nil {
		t.Errorf("valid log axis rejected: %v", err)
	}
}

func TestAnalogAxis_AutoRange(t *testing.T) {
	s := &zpk.Spec{
		Poles:  []complex128{complex(-2, 0), complex(-50, 0)},
		Gain:   1,
		Domain: zpk.Analog,
	}

	a := AnalogAxis(s, 100)
	if a.Spacing != Logarithmic {
		t.Fatal("analog axis should be logarithmic")
	}
	if !almostEqual(a.Start, 0.2, 1e-12) {
		t.Errorf("Start = %v, want 0.2 (min magnitude / 10)", a.Start)
	}
	if !almostEqual(a.Stop, 5000, 1e-9) {
		t.Errorf("Stop = %v, want 5000 (max magnitude * 100)", a.Stop)
	}
}

func TestAnalogAxis_EmptySpecFallback(t *testing.T) {
	s := &zpk.Spec{Gain: 1, Domain: zpk.Analog}

	a := AnalogAxis(s, 100)
	if !almostEqual(a.Start, 0.1, 1e-12) || !almostEqual(a.Stop, 100, 1e-12) {
		t.Fatalf("empty-spec range = [%v, %v], want [0.1, 100]", a.Start, a.Stop)
	}
}

func TestAnalogAxis_IgnoresRootsAtOrigin(t *testing.T) {
	s := &zpk.Spec{
		Zeros:  []complex128{0},
		Poles:  []complex128{-10},
		Gain:   1,
		Domain: zpk.Analog,
	}

	a := AnalogAxis(s, 100)
	if !almostEqual(a.Start, 1, 1e-12) {
		t.Fatalf("Start = %v, want 1 (origin zero must not set the range)", a.Start)
	}
}

func TestDefaultAxis_PerDomain(t *testing.T) {
	dig := &zpk.Spec{Gain: 1, Domain: zpk.Digital}
	if a := DefaultAxis(dig, 10); a.Spacing != Linear || a.Stop != math.Pi {
		t.Errorf("digital default axis = %+v", a)
	}

	ana := &zpk.Spec{Gain: 1, Domain: zpk.Analog}
	if a := DefaultAxis(ana, 10); a.Spacing != Logarithmic {
		t.Errorf("analog default axis = %+v", a)
	}
}
