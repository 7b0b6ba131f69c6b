// Package solver resolves a pitch control strategy against a corrected polar.
//
// Fixed interpolates at the requested angle. MaxLoverD and MinCD scan the
// table's own grid points and pick the extremum; exact ties resolve to the
// lowest angle. With Refine set, the grid optimum is replaced by the vertex
// of a parabola through the best grid point and its two neighbours, and CL
// and CD are evaluated on the same local quadratic model. Refinement changes
// numerical output and is off by default.
package solver
