package impulse_test

import (
	"fmt"

	"github.com/JWKennington/app-dsp-filter-design/dsp/impulse"
	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

func ExampleDigital() {
	spec := &zpk.Spec{
		Poles:  []complex128{0.5},
		Gain:   1,
		Domain: zpk.Digital,
	}

	resp, err := impulse.Digital(spec, impulse.IndexRange{Min: -2, Max: 4})
	if err != nil {
		panic(err)
	}

	for i, n := range resp.Indices {
		fmt.Printf("h[%d] = %.4f\n", n, resp.Amplitudes[i])
	}

	// Output:
	// h[-2] = 0.0000
	// h[-1] = 0.0000
	// h[0] = 1.0000
	// h[1] = 0.5000
	// h[2] = 0.2500
	// h[3] = 0.1250
	// h[4] = 0.0625
}

func ExampleDigital_antiCausal() {
	// An unstable pole rendered as a bounded left-sided sequence.
	spec := &zpk.Spec{
		Poles:     []complex128{2},
		Gain:      1,
		Domain:    zpk.Digital,
		Causality: zpk.AntiCausal,
	}

	resp, err := impulse.Digital(spec, impulse.IndexRange{Min: -3, Max: 1})
	if err != nil {
		panic(err)
	}

	for i, n := range resp.Indices {
		fmt.Printf("h[%d] = %.4f\n", n, resp.Amplitudes[i])
	}

	// Output:
	// h[-3] = -0.1250
	// h[-2] = -0.2500
	// h[-1] = -0.5000
	// h[0] = 0.0000
	// h[1] = 0.0000
}
