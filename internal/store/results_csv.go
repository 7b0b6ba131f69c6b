package store

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"turbofanvpf/internal/domain"
)

// ResultColumns is the fixed column order of results_by_phase.csv.
var ResultColumns = []string{
	"phase",
	"altitude_m",
	"mach",
	"alpha_vpf",
	"alpha_fpf",
	"delta_alpha_pitch",
	"cl_vpf",
	"cl_fpf",
	"cd_vpf",
	"cd_fpf",
	"delta_cd",
	"ratio_cd",
	"cd_pct_change",
	"ld_vpf",
	"ld_fpf",
	"delta_ld",
	"ld_improvement_pct",
	"compressibility_warning",
}

// WriteResultsCSV writes one row per successful outcome, numbers formatted
// %.6f; an undefined L/D improvement is an empty cell. Failed phases are
// left out; they are reported through JSON and logs.
func WriteResultsCSV(w io.Writer, outcomes []domain.Outcome) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ResultColumns); err != nil {
		return err
	}
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		r := o.Result
		m := r.Metrics
		row := []string{
			string(r.Phase.Name),
			f6(r.Phase.AltitudeM),
			f6(r.Phase.Mach),
			f6(r.VPF.AlphaDeg),
			f6(r.FPF.AlphaDeg),
			f6(m.DeltaAlpha),
			f6(r.VPF.CL),
			f6(r.FPF.CL),
			f6(r.VPF.CD),
			f6(r.FPF.CD),
			f6(m.CDDelta),
			f6(m.CDRatio),
			f6(m.CDPctChange),
			f6(m.LDVPF),
			f6(m.LDFPF),
			f6(m.LDDelta),
			optF6(m.LDImprovementPct),
			strconv.FormatBool(r.Warning != nil),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func f6(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

// optF6 leaves the cell empty for an undefined value.
func optF6(v *float64) string {
	if v == nil {
		return ""
	}
	return f6(*v)
}

func encodeResultsCSV(outcomes []domain.Outcome) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteResultsCSV(&buf, outcomes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
