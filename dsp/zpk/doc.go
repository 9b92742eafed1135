// Package zpk defines the zero-pole-gain filter specification shared by the
// response and impulse computation packages.
//
// A [Spec] describes a rational transfer function by the roots of its
// numerator (zeros) and denominator (poles) plus a real gain, in either the
// analog s-plane or the digital z-plane:
//
//	H(x) = Gain · Π(x − zeroᵢ) / Π(x − poleᵢ)
//
// Specs are plain values with no internal state. All operations on them are
// pure and safe to run concurrently.
package zpk
