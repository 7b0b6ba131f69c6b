// Package polar holds 2D airfoil polar tables.
//
// A Table is validated at construction (at least two points, strictly
// increasing finite angles, finite coefficients) and is immutable
// afterwards. Interpolate is piecewise linear between the bracketing points
// and refuses to extrapolate: polar behaviour past the tabulated range is
// nonlinear near stall and must not be fabricated.
package polar
