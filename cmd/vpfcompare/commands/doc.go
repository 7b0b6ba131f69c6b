// Package commands defines the vpfcompare CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init         Write a case file with the reference defaults
//   - run          Evaluate every phase, print the comparison and export results
//   - phases       List the configured phases with ISA conditions and FPF incidence
//   - polar        Inspect a polar, optionally corrected for a Mach number
//   - fingerprint  Print the content fingerprint of a polar
//
// # Implementation
//
// The root command loads the case file, applies flag overrides and builds the
// logger before any subcommand runs. Subcommands that evaluate build an
// app.Wire from the resulting config, so local and --server runs share one
// code path.
package commands
