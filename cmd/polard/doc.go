// Package main runs polard, the in-memory evaluation server used by
// vpfcompare --server. It stores polar tables keyed by content fingerprint
// and evaluates flight-phase batches against them.
//
// HTTP API
//
//	POST /polars
//	    Store a polar given as [{"alpha_deg","cl","cd"}, ...]. The table is
//	    validated like a CSV polar. Returns {"fingerprint","points"}.
//
//	GET /polars/{fp}
//	    Return the stored polar for fingerprint {fp}.
//
//	POST /evaluate/{fp} {"phases":[...],"target":{"kind":...},"refine":bool}
//	    Evaluate every phase against polar {fp}. The response carries one
//	    outcome per phase in request order; a failed phase has an "error"
//	    string instead of a "result".
//
//	GET /metrics
//	    Prometheus collectors.
//
//	GET /healthz
//	    Liveness probe.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry {"error": "..."}.
//   - An access log records method, path, remote, status, bytes and
//     duration for each request.
//   - The default listen address is :8080.
package main
