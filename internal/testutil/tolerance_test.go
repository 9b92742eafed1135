package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatalf("MaxAbsDiff failed: %v", err)
	}
	if d != 1 {
		t.Fatalf("MaxAbsDiff = %v, want 1", d)
	}
}

func TestMaxAbsDiff_LengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected length-mismatch error")
	}
}

func TestGeometricSequence(t *testing.T) {
	got := GeometricSequence(1, 0.5, 0, 3)
	RequireSliceNearlyEqual(t, got, []float64{1, 0.5, 0.25, 0.125}, 1e-15)
}

func TestExponentialSequence(t *testing.T) {
	got := ExponentialSequence(2, -1, []float64{0, 1})
	RequireSliceNearlyEqual(t, got, []float64{2, 2 * math.Exp(-1)}, 1e-12)
}
