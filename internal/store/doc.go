// Package store provides file-based persistence for polar tables, case
// files and run results, plus an in-memory registry of polars keyed by
// fingerprint.
//
// Writes go through a temp file followed by a rename so a crashed run never
// leaves a half-written result behind. FileStore resolves relative paths
// against its base directory and is safe for concurrent use.
//
// The package includes:
//   - Polar CSV loading (FileStore.LoadPolar)
//   - Results export as CSV and JSON (FileStore.SaveResultsCSV, SaveJSON)
//   - YAML case files (LoadYAML, SaveYAML)
//   - Fingerprint-addressed polars (Registry)
package store
