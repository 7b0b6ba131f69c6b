// Package aero groups the aerodynamic computation pipeline.
//
// Subpackages, leaf first:
//
//   - polar      Immutable tabulated CL/CD vs angle of attack with linear
//     interpolation (no extrapolation)
//   - compress   Prandtl-Glauert correction of a polar for a Mach number
//   - incidence  FPF geometric incidence schedules
//   - solver     Operating point resolution for Fixed, MaxLoverD and MinCD
//   - compare    FPF vs VPF comparison metrics
//
// Every function is pure: inputs are never mutated and results are fresh
// values, so phases may be evaluated concurrently without locking.
package aero
