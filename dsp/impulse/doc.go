// Package impulse reconstructs time-domain impulse responses from
// zero-pole-gain specifications via partial-fraction expansion.
//
// Each simple-pole term maps to an elementary sequence: rᵢ·pᵢⁿ (digital) or
// rᵢ·e^(pᵢt) (analog), rendered right-sided or left-sided per pole. Under
// [zpk.Causal] every pole is right-sided, so poles outside the stable region
// produce the honest divergent causal response. Under [zpk.AntiCausal] the
// side is chosen per pole for boundedness: an unstable pole contributes the
// convergent left-sided sequence −rᵢ·pᵢⁿ (n ≤ −1) or −rᵢ·e^(pᵢt) (t < 0)
// instead. Mixed-stability pole sets therefore yield the generalized
// two-sided response whose region of convergence contains the unit circle
// (digital) or the jω axis (analog).
//
// Direct terms are unit samples at nonnegative indices in the digital domain.
// In the analog domain they are Dirac impulses, which have no amplitude on a
// sample grid and are omitted from the rendered response.
package impulse
