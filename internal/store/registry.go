package store

import (
	"sync"

	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/digest"
	"turbofanvpf/internal/domain"
	"turbofanvpf/internal/telemetry"
)

// Registry keeps polars in memory keyed by their content fingerprint.
// Putting the same table twice yields the same key.
type Registry struct {
	mu     sync.RWMutex
	polars map[domain.Fingerprint]polar.Table
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{polars: make(map[domain.Fingerprint]polar.Table)}
}

// PutPolar stores t and returns its fingerprint.
func (r *Registry) PutPolar(t polar.Table) domain.Fingerprint {
	fp := digest.Polar(t)
	r.mu.Lock()
	r.polars[fp] = t
	n := len(r.polars)
	r.mu.Unlock()
	telemetry.SetStoredPolars(n)
	return fp
}

// GetPolar returns the polar stored under fp.
func (r *Registry) GetPolar(fp domain.Fingerprint) (polar.Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.polars[fp]
	return t, ok
}

// Len returns the number of stored polars.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.polars)
}

var _ domain.PolarRegistry = (*Registry)(nil)
