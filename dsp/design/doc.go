// Package design produces classical filter specifications in zero-pole-gain
// form.
//
// [Filter] is the single entry point: it builds the analog lowpass prototype
// for the requested family (Butterworth, Chebyshev I/II, elliptic, Bessel),
// applies the lowpass/highpass/bandpass/bandstop frequency transformation,
// and for digital designs maps the result through the bilinear transform with
// cutoff prewarping. Analog cutoffs are in radians per second; digital
// cutoffs are fractions of the Nyquist frequency in (0, 1).
//
// Ripple-family parameters default to 1 dB passband ripple and 40 dB
// stopband attenuation and can be overridden per call:
//
//	spec, err := design.Filter(design.Elliptic, design.Lowpass, 5,
//	    zpk.Digital, 0.3, 0,
//	    design.WithPassbandRippleDB(0.5),
//	    design.WithStopbandAttenuationDB(60))
package design
