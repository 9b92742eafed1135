// Command filterinfo prints pole-zero filter designs and their responses.
//
// Usage:
//
//	filterinfo [flags] [family ...]
//
// Without arguments it prints a design summary for all filter families.
//
// Examples:
//
//	filterinfo butterworth
//	filterinfo -order 6 -cutoff 0.3 chebyshev1 elliptic
//	filterinfo -shape bandpass -cutoff 0.2 -cutoff2 0.4 butterworth
//	filterinfo -domain analog -cutoff 100 bessel
//	filterinfo -response 16 butterworth
//	filterinfo -list
package main

import (
	"flag"
	"fmt"
	"math/cmplx"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/JWKennington/app-dsp-filter-design/dsp/design"
	"github.com/JWKennington/app-dsp-filter-design/dsp/response"
	"github.com/JWKennington/app-dsp-filter-design/dsp/zpk"
)

var families = []string{"butterworth", "chebyshev1", "chebyshev2", "elliptic", "bessel"}

func main() {
	shapeName := flag.String("shape", "lowpass", "filter shape: lowpass, highpass, bandpass, bandstop")
	order := flag.Int("order", 4, "filter order")
	domainName := flag.String("domain", "digital", "filter domain: digital or analog")
	cutoff := flag.Float64("cutoff", 0.25, "cutoff frequency (fraction of Nyquist for digital, rad/s for analog)")
	cutoff2 := flag.Float64("cutoff2", 0, "second band edge for bandpass and bandstop")
	ripple := flag.Float64("ripple", design.DefaultPassbandRippleDB, "passband ripple in dB (chebyshev1, elliptic)")
	atten := flag.Float64("atten", design.DefaultStopbandAttenuationDB, "stopband attenuation in dB (chebyshev2, elliptic)")
	respPoints := flag.Int("response", 0, "also print a frequency response table with this many points")
	list := flag.Bool("list", false, "list available family names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags] [family ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints pole-zero filter designs and their responses.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints a summary for all families.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -order 6 -cutoff 0.3 chebyshev1 elliptic\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -shape bandpass -cutoff 0.2 -cutoff2 0.4 butterworth\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -response 16 butterworth\n")
	}
	flag.Parse()

	if *list {
		for _, name := range families {
			fmt.Println(name)
		}

		return
	}

	shape, err := design.ParseShape(strings.ToLower(strings.TrimSpace(*shapeName)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	domain := zpk.Digital
	switch strings.ToLower(strings.TrimSpace(*domainName)) {
	case "digital":
	case "analog":
		domain = zpk.Analog
	default:
		fmt.Fprintf(os.Stderr, "error: unknown domain %q\n", *domainName)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = families
	}

	specs := make(map[string]*zpk.Spec, len(names))
	resolved := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		family, err := design.ParseFamily(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (use -list to see available)\n", err)
			continue
		}

		spec, err := design.Filter(family, shape, *order, domain, *cutoff, *cutoff2,
			design.WithPassbandRippleDB(*ripple), design.WithStopbandAttenuationDB(*atten))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", name, err)
			continue
		}

		specs[name] = spec
		resolved = append(resolved, name)
	}

	if len(resolved) == 0 {
		fmt.Fprintf(os.Stderr, "error: no designs produced\n")
		os.Exit(1)
	}

	printSummary(resolved, specs)

	if *respPoints > 0 {
		for _, name := range resolved {
			printResponse(name, specs[name], *respPoints)
		}
	}
}

func printSummary(names []string, specs map[string]*zpk.Spec) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Family\tDomain\tZeros\tPoles\tGain\tStable\tDC Gain\n")
	fmt.Fprintf(tw, "------\t------\t-----\t-----\t----\t------\t-------\n")

	for _, name := range names {
		spec := specs[name]
		nz, np := spec.Order()

		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.6g\t%v\t%.6g\n",
			name,
			spec.Domain,
			nz,
			np,
			spec.Gain,
			spec.IsStable(),
			cmplx.Abs(spec.DCGain()),
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printResponse(name string, spec *zpk.Spec, points int) {
	resp, err := response.ComputeDefault(spec, response.WithPoints(points))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", name, err)
		return
	}

	freqs := resp.Frequencies()
	mags := resp.MagnitudeDB()
	phases := resp.PhaseDeg()

	fmt.Printf("\n%s response:\n", name)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq\tMag [dB]\tPhase [deg]\n")

	for i := range freqs {
		fmt.Fprintf(tw, "%.6g\t%.3f\t%.2f\n", freqs[i], mags[i], phases[i])
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
