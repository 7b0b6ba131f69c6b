package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/domain"
)

// FileStore reads polars and writes run results under a base directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir. Absolute paths passed to its
// methods bypass dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Dir returns the base directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(p string) string {
	if filepath.IsAbs(p) || s.dir == "" {
		return p
	}
	return filepath.Join(s.dir, p)
}

// ---------- Polars ----------

// LoadPolar reads a polar CSV.
func (s *FileStore) LoadPolar(path string) (polar.Table, error) {
	f, err := os.Open(s.path(path))
	if err != nil {
		return polar.Table{}, fmt.Errorf("load polar: %w", err)
	}
	defer f.Close()

	t, err := ReadPolarCSV(f)
	if err != nil {
		return polar.Table{}, fmt.Errorf("load polar %s: %w", path, err)
	}
	return t, nil
}

// SavePolar writes t as CSV.
func (s *FileStore) SavePolar(path string, t polar.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := WritePolarCSV(&buf, t); err != nil {
		return err
	}
	return writeFile(s.path(path), buf.Bytes(), 0o644)
}

// ---------- Results ----------

// SaveResultsCSV writes successful outcomes to path.
func (s *FileStore) SaveResultsCSV(path string, outcomes []domain.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := encodeResultsCSV(outcomes)
	if err != nil {
		return err
	}
	return writeFile(s.path(path), b, 0o644)
}

// SaveJSON writes v as indented JSON.
func (s *FileStore) SaveJSON(path string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.path(path), v, 0o644)
}

// Compile-time assertions.
var (
	_ domain.PolarStore  = (*FileStore)(nil)
	_ domain.ResultStore = (*FileStore)(nil)
)
