package ellipticmath

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	mag := math.Max(math.Abs(a), math.Abs(b))
	if mag > 1 {
		return diff/mag < tol
	}

	return diff < tol
}

func TestLanden_Convergence(t *testing.T) {
	v := Landen(0.5, 1e-15)
	if len(v) == 0 {
		t.Fatal("Landen returned empty sequence")
	}

	last := v[len(v)-1]
	if last > 1e-15 {
		t.Fatalf("Landen did not converge: last value = %e", last)
	}

	for i := 1; i < len(v); i++ {
		if v[i] >= v[i-1] {
			t.Fatalf("Landen not monotonically decreasing at index %d: %e >= %e", i, v[i], v[i-1])
		}
	}
}

func TestLanden_Limits(t *testing.T) {
	v0 := Landen(0, 1e-15)
	if len(v0) != 1 || v0[0] != 0 {
		t.Fatalf("Landen(0) = %v, expected [0]", v0)
	}

	v1 := Landen(1, 1e-15)
	if len(v1) != 1 || v1[0] != 1 {
		t.Fatalf("Landen(1) = %v, expected [1]", v1)
	}
}

func TestLanden_FixedIterations(t *testing.T) {
	const iter = 6

	v := Landen(0.5, iter)
	if len(v) != iter {
		t.Fatalf("Landen fixed-iteration length = %d, want %d", len(v), iter)
	}
}

func TestEllipK_KnownValues(t *testing.T) {
	// K(0) = π/2 exactly.
	K, _ := EllipK(0, 1e-15)
	if !almostEqual(K, math.Pi/2, 1e-12) {
		t.Fatalf("K(0) = %v, want π/2", K)
	}

	// K(1/√2) ≈ 1.8540746773 (self-complementary modulus, K = K').
	k := 1 / math.Sqrt2
	K, Kp := EllipK(k, 1e-15)
	if !almostEqual(K, 1.8540746773013719, 1e-10) {
		t.Fatalf("K(1/√2) = %v, want 1.8540746773", K)
	}
	if !almostEqual(K, Kp, 1e-10) {
		t.Fatalf("K = %v and K' = %v should be equal at the self-complementary modulus", K, Kp)
	}
}

func TestEllipK_Limits(t *testing.T) {
	K, Kp := EllipK(1, 1e-15)
	if !math.IsInf(K, 1) {
		t.Fatalf("K(1) = %v, want +Inf", K)
	}
	if math.IsInf(Kp, 0) || math.IsNaN(Kp) {
		t.Fatalf("K'(1) = %v, want finite", Kp)
	}

	K, Kp = EllipK(0, 1e-15)
	if !math.IsInf(Kp, 1) {
		t.Fatalf("K'(0) = %v, want +Inf", Kp)
	}
	if math.IsInf(K, 0) {
		t.Fatalf("K(0) = %v, want finite", K)
	}
}

func TestSNE_Bounds(t *testing.T) {
	// sn of a K-normalized argument stays within [-1, 1] and hits the
	// endpoints: sn(0) = 0, sn(K) = 1.
	u := []float64{0, 0.25, 0.5, 0.75, 1}

	w := SNE(u, 0.7, 1e-15)
	if !almostEqual(w[0], 0, 1e-12) {
		t.Fatalf("sn(0) = %v, want 0", w[0])
	}
	if !almostEqual(w[len(w)-1], 1, 1e-12) {
		t.Fatalf("sn(K) = %v, want 1", w[len(w)-1])
	}

	for i, v := range w {
		if v < -1-1e-12 || v > 1+1e-12 {
			t.Fatalf("sn out of range at %d: %v", i, v)
		}
		if i > 0 && v <= w[i-1] {
			t.Fatalf("sn not increasing on [0, K] at index %d", i)
		}
	}
}

func TestSNE_ZeroModulusIsSine(t *testing.T) {
	u := []float64{0.1, 0.4, 0.9}

	w := SNE(u, 0, 1e-15)
	for i, v := range w {
		want := math.Sin(u[i] * math.Pi / 2)
		if !almostEqual(v, want, 1e-12) {
			t.Fatalf("sn(%v, 0) = %v, want sin = %v", u[i], v, want)
		}
	}
}

func TestCDE_ZeroModulusIsCosine(t *testing.T) {
	for _, u := range []float64{0, 0.3, 0.8, 1} {
		got := CDE(complex(u, 0), 0, 1e-15)
		want := math.Cos(u * math.Pi / 2)
		if !almostEqual(real(got), want, 1e-12) || math.Abs(imag(got)) > 1e-12 {
			t.Fatalf("cd(%v, 0) = %v, want %v", u, got, want)
		}
	}
}

func TestCDE_UnitAtZero(t *testing.T) {
	// cd(0, k) = 1 for any modulus.
	for _, k := range []float64{0.1, 0.5, 0.9} {
		got := CDE(0, k, 1e-15)
		if !almostEqual(real(got), 1, 1e-12) {
			t.Fatalf("cd(0, %v) = %v, want 1", k, got)
		}
	}
}
