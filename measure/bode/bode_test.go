package bode

import (
	"errors"
	"math"
	"testing"

	"github.com/JWKennington/app-dsp-filter-design/dsp/design"
	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
	"github.com/JWKennington/app-dsp-filter-design/internal/testutil"
)

func TestSpectrumSinglePole(t *testing.T) {
	spec := &zpk.Spec{
		Poles:  []complex128{0.5},
		Gain:   1,
		Domain: zpk.Digital,
	}

	mags, err := Spectrum(spec, 256)
	if err != nil {
		t.Fatal(err)
	}

	if len(mags) != 129 {
		t.Fatalf("expected 129 bins, got %d", len(mags))
	}

	// H(z) = z/(z - 0.5): gain 2 at DC, 2/3 at Nyquist.
	testutil.RequireNear(t, mags[0], 2, 1e-9)
	testutil.RequireNear(t, mags[len(mags)-1], 2.0/3.0, 1e-9)
}

func TestDeviationShrinksWithWindow(t *testing.T) {
	spec, err := design.Filter(design.Butterworth, design.Lowpass, 4, zpk.Digital, 0.25, 0)
	if err != nil {
		t.Fatal(err)
	}

	coarse, err := Deviation(spec, 64)
	if err != nil {
		t.Fatal(err)
	}

	fine, err := Deviation(spec, 4096)
	if err != nil {
		t.Fatal(err)
	}

	if fine > coarse {
		t.Errorf("deviation grew with a longer window: %v > %v", fine, coarse)
	}

	if fine > 1e-9 {
		t.Errorf("deviation %v too large for a well-damped filter", fine)
	}
}

func TestSpectrumRejectsAnalog(t *testing.T) {
	spec := &zpk.Spec{
		Poles:  []complex128{-1},
		Gain:   1,
		Domain: zpk.Analog,
	}

	if _, err := Spectrum(spec, 64); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected ErrDomain, got %v", err)
	}
}

func TestSpectrumRejectsUnstable(t *testing.T) {
	spec := &zpk.Spec{
		Poles:  []complex128{2},
		Gain:   1,
		Domain: zpk.Digital,
	}

	if _, err := Spectrum(spec, 64); !errors.Is(err, ErrUnstable) {
		t.Fatalf("expected ErrUnstable, got %v", err)
	}
}

func TestFrequencies(t *testing.T) {
	freqs := Frequencies(256)
	if len(freqs) != 129 {
		t.Fatalf("expected 129 bins, got %d", len(freqs))
	}

	testutil.RequireNear(t, freqs[0], 0, 0)
	testutil.RequireNear(t, freqs[len(freqs)-1], math.Pi, 1e-12)

	// Nonpositive and non-power-of-two sizes are normalized.
	if got := len(Frequencies(0)); got != DefaultFFTSize/2+1 {
		t.Errorf("default size: got %d bins", got)
	}

	if got := len(Frequencies(100)); got != 65 {
		t.Errorf("rounded size: got %d bins, want 65", got)
	}
}
