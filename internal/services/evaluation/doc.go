// Package evaluation compares fixed and variable pitch fan control across
// flight phases.
//
// For each phase it corrects the base polar for the phase Mach number,
// resolves the FPF operating point at the incidence schedule's angle,
// resolves the VPF operating point with the requested strategy, and derives
// the comparison metrics. A phase result is all-or-nothing: the first
// failing step aborts that phase and nothing partial is returned.
// EvaluateAll runs phases independently, optionally in parallel, and keeps
// the input order.
package evaluation
