package types

// PhaseName identifies a flight phase within one analysis run.
type PhaseName string

// String returns the string form of the phase name.
func (n PhaseName) String() string { return string(n) }

// Fingerprint is a short content identifier for a polar table.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// RunID identifies one batch evaluation.
type RunID string

// String returns the string form of the run identifier.
func (id RunID) String() string { return string(id) }
