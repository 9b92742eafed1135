// Package response computes complex frequency responses (Bode data) of
// zero-pole-gain filter specifications.
//
// A sweep is described by an [Axis]: linear axes suit the digital domain
// (0 to π, fraction of Nyquist times π), logarithmic axes suit the analog
// domain. [AnalogAxis] auto-ranges the log sweep from the pole and zero
// magnitudes the way an interactive Bode plot expects: a decade below the
// slowest feature, two decades above the fastest.
//
// Every axis point produces exactly one [Sample]. A point that lands exactly
// on a pole is reported with Singular set and an infinite value instead of
// failing the whole sweep.
package response
