// Package bode derives magnitude spectra from impulse responses.
//
// The package exists as a consistency bridge: a filter's frequency response
// can be computed directly from its poles and zeros, or indirectly by
// transforming its impulse response. For a stable filter both routes agree
// up to truncation of the impulse tail, which makes the deviation between
// them a useful end-to-end check of a pole-zero model.
package bode
