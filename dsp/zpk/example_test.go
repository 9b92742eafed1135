package zpk_test

import (
	"fmt"

	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

func ExampleSpec_Eval() {
	// A first-order digital lowpass: zero at z = -1, pole at z = 0.5,
	// gain chosen for unity DC response.
	spec := &zpk.Spec{
		Zeros:  []complex128{-1},
		Poles:  []complex128{0.5},
		Gain:   0.25,
		Domain: zpk.Digital,
	}

	fmt.Printf("stable: %v\n", spec.IsStable())
	fmt.Printf("H(1) = %.2f\n", real(spec.DCGain()))

	// Output:
	// stable: true
	// H(1) = 1.00
}

func ExampleSpec_TransferFunction() {
	spec := &zpk.Spec{
		Zeros:  []complex128{-1},
		Poles:  []complex128{0.5},
		Gain:   2,
		Domain: zpk.Digital,
	}

	b, a := spec.TransferFunction()
	fmt.Printf("b = %v\n", formatReal(b))
	fmt.Printf("a = %v\n", formatReal(a))

	// Output:
	// b = [2 2]
	// a = [1 -0.5]
}

func formatReal(v []complex128) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = real(x)
	}

	return out
}
