// Package relay provides an HTTP implementation of the domain.RelayClient
// interface used by vpfcompare to offload evaluation to a polard server.
//
// The server keeps polars in memory keyed by their content fingerprint, so a
// client registers a table once and then runs any number of phase batches
// against it.
//
// Supported operations include:
//   - Registering a polar table and learning its fingerprint.
//   - Fetching a stored polar by fingerprint.
//   - Evaluating a batch of flight phases against a stored polar.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as *StatusError carrying the HTTP
// method, path, status and the server's error message when it sent one.
package relay
