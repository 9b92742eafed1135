package design_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/JWKennington/app-dsp-filter-design/dsp/design"
	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

func ExampleFilter() {
	spec, err := design.Filter(design.Butterworth, design.Lowpass, 2, zpk.Digital, 0.5, 0)
	if err != nil {
		panic(err)
	}

	mag := func(omega float64) float64 {
		return cmplx.Abs(spec.Eval(cmplx.Exp(complex(0, omega))))
	}

	fmt.Printf("stable: %v\n", spec.IsStable())
	fmt.Printf("|H| at DC: %.3f\n", mag(0))
	fmt.Printf("|H| at cutoff: %.3f\n", mag(math.Pi/2))
	fmt.Printf("|H| at Nyquist: %.3f\n", mag(math.Pi))

	// Output:
	// stable: true
	// |H| at DC: 1.000
	// |H| at cutoff: 0.707
	// |H| at Nyquist: 0.000
}

func ExampleFilter_bandpass() {
	spec, err := design.Filter(design.Elliptic, design.Bandpass, 4, zpk.Digital, 0.2, 0.4,
		design.WithPassbandRippleDB(0.5), design.WithStopbandAttenuationDB(50))
	if err != nil {
		panic(err)
	}

	nz, np := spec.Order()
	fmt.Printf("zeros: %d, poles: %d\n", nz, np)
	fmt.Printf("stable: %v\n", spec.IsStable())
	fmt.Printf("DC in stopband: %v\n", cmplx.Abs(spec.DCGain()) < 0.01)

	// Output:
	// zeros: 8, poles: 8
	// stable: true
	// DC in stopband: true
}
