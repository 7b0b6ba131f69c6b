package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"turbofanvpf/internal/aero/polar"
)

var (
	// ErrMissingColumn is returned when the header lacks alpha_deg, cl or cd.
	ErrMissingColumn = errors.New("store: polar csv missing required column")
	// ErrNoRows is returned when no usable data row survives parsing.
	ErrNoRows = errors.New("store: polar csv has no valid rows")
)

var polarColumns = [...]string{"alpha_deg", "cl", "cd"}

// ReadPolarCSV parses a polar from r. The header must name alpha_deg, cl and
// cd (any case, any order, extra columns ignored). Rows carrying NaN in any
// of the three columns are dropped.
func ReadPolarCSV(r io.Reader) (polar.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err == io.EOF {
		return polar.Table{}, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return polar.Table{}, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var cols [3]int
	for i, name := range polarColumns {
		j, ok := idx[name]
		if !ok {
			return polar.Table{}, fmt.Errorf("%w %q (found %v)", ErrMissingColumn, name, header)
		}
		cols[i] = j
	}

	var alpha, cl, cd []float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return polar.Table{}, err
		}
		line, _ := cr.FieldPos(0)

		var v [3]float64
		for i, c := range cols {
			if c >= len(rec) {
				return polar.Table{}, fmt.Errorf("line %d: missing %s", line, polarColumns[i])
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(rec[c]), 64)
			if err != nil {
				return polar.Table{}, fmt.Errorf("line %d: %s: %w", line, polarColumns[i], err)
			}
			v[i] = f
		}
		if math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2]) {
			continue
		}
		alpha = append(alpha, v[0])
		cl = append(cl, v[1])
		cd = append(cd, v[2])
	}
	if len(alpha) == 0 {
		return polar.Table{}, ErrNoRows
	}
	return polar.FromColumns(alpha, cl, cd)
}

// WritePolarCSV writes t with an alpha_deg,cl,cd header.
func WritePolarCSV(w io.Writer, t polar.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(polarColumns[:]); err != nil {
		return err
	}
	for _, p := range t.Points() {
		if err := cw.Write([]string{ftoa(p.AlphaDeg), ftoa(p.CL), ftoa(p.CD)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
