package response_test

import (
	"fmt"

	"github.com/JWKennington/app-dsp-filter-design/dsp/response"
	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

func ExampleComputeDefault() {
	spec := &zpk.Spec{
		Poles:  []complex128{0.5},
		Gain:   1,
		Domain: zpk.Digital,
	}

	resp, err := response.ComputeDefault(spec, response.WithPoints(5))
	if err != nil {
		panic(err)
	}

	mags := resp.MagnitudeDB()
	for i, f := range resp.Frequencies() {
		fmt.Printf("w=%.2f  %6.2f dB\n", f, mags[i])
	}

	// Output:
	// w=0.00    6.02 dB
	// w=0.79    2.65 dB
	// w=1.57   -0.97 dB
	// w=2.36   -2.92 dB
	// w=3.14   -3.52 dB
}
