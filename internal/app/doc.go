// Package app wires application dependencies for the CLI.
//
// Config is the YAML case file: phases, incidence law, compressibility
// settings, VPF target, FPF schedule and output switches. NewWire turns a
// validated Config into the evaluation service, file store, plotter and,
// when a server URL is set, the relay client.
package app
