// Package residue expands zero-pole-gain transfer functions into partial
// fractions over simple poles.
//
// The analog expansion follows the Laplace convention,
//
//	H(s) = Σ rᵢ/(s − pᵢ) + k,
//
// while the digital expansion follows the z⁻¹ convention used throughout
// discrete-time filter analysis,
//
//	H(z) = Σ rᵢ/(1 − pᵢ·z⁻¹) + Σ kₙ·z⁻ⁿ,
//
// so each digital term maps directly to a geometric sequence rᵢ·pᵢⁿ and each
// direct term to a delayed unit sample. Only simple poles are supported:
// repeated poles need higher-order terms and are reported as
// [ErrRepeatedPoles] rather than silently approximated.
package residue
