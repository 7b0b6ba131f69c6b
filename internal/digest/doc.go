// Package digest computes short content fingerprints of polar tables.
//
// The fingerprint hashes the IEEE-754 bits of every (alpha, CL, CD) row in
// order with BLAKE2b-256 and truncates to 10 bytes (20 hex chars). Two
// tables share a fingerprint iff their rows are bit-identical, so the
// evaluation server can content-address stored polars and reports can name
// the exact table they were computed from.
package digest
