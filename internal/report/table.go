package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"turbofanvpf/internal/atmosphere"
	"turbofanvpf/internal/domain"
)

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	warnStyle   = cellStyle.Foreground(colorWarning)
	errStyle    = cellStyle.Foreground(colorError)
	labelStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// TableHeaders lists the terminal table columns.
var TableHeaders = []string{
	"Phase", "Alt [m]", "Mach", "TAS [m/s]", "q [kPa]",
	"α FPF", "α VPF", "Δα", "CD FPF", "CD VPF", "ΔCD", "CD ratio", "",
}

// Row is one rendered table line.
type Row struct {
	Cells   []string
	Warning bool
	Failed  bool
}

// Rows formats outcomes for display, adding ISA flow conditions for each
// phase. A phase whose flow cannot be computed shows dashes there.
func Rows(outcomes []domain.Outcome) []Row {
	rows := make([]Row, 0, len(outcomes))
	for _, o := range outcomes {
		p := o.Phase
		tas, q := "-", "-"
		if f, err := atmosphere.FlowAt(p.AltitudeM, p.Mach); err == nil {
			tas = fmt.Sprintf("%.1f", f.TrueAirspeed)
			q = fmt.Sprintf("%.2f", f.DynamicPressure/1000)
		}
		cells := []string{string(p.Name), fmt.Sprintf("%.0f", p.AltitudeM), fmt.Sprintf("%.2f", p.Mach), tas, q}

		if !o.OK() {
			cells = append(cells, "", "", "", "", "", "", "", "✗ "+o.Err.Error())
			rows = append(rows, Row{Cells: cells, Failed: true})
			continue
		}
		r := o.Result
		m := r.Metrics
		status := "✓"
		if r.Warning != nil {
			status = "⚠ M>" + fmt.Sprintf("%.2f", r.Warning.MachMaxValid)
		}
		cells = append(cells,
			fmt.Sprintf("%.2f", r.FPF.AlphaDeg),
			fmt.Sprintf("%.2f", r.VPF.AlphaDeg),
			fmt.Sprintf("%+.2f", m.DeltaAlpha),
			fmt.Sprintf("%.6f", r.FPF.CD),
			fmt.Sprintf("%.6f", r.VPF.CD),
			fmt.Sprintf("%+.6f", m.CDDelta),
			fmt.Sprintf("%.4f", m.CDRatio),
			status,
		)
		rows = append(rows, Row{Cells: cells, Warning: r.Warning != nil})
	}
	return rows
}

// RenderTable renders outcomes as a bordered terminal table.
func RenderTable(outcomes []domain.Outcome) string {
	rows := Rows(outcomes)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(TableHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case rows[row].Failed:
				return errStyle
			case rows[row].Warning && col == len(TableHeaders)-1:
				return warnStyle
			default:
				return cellStyle
			}
		})
	for _, r := range rows {
		t.Row(r.Cells...)
	}
	return t.Render()
}

// RenderSummary renders run statistics as labelled lines.
func RenderSummary(s Summary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Statistics"))
	b.WriteByte('\n')
	line := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(label), value)
	}
	line("phases evaluated:", fmt.Sprintf("%d/%d", s.Succeeded(), s.Phases))
	if s.Succeeded() == 0 {
		return b.String()
	}
	line("mean ΔCD (VPF-FPF):", fmt.Sprintf("%+.6f", s.MeanCDDelta))
	line("mean CD ratio:", fmt.Sprintf("%.4f", s.MeanCDRatio))
	line("mean |Δα|:", fmt.Sprintf("%.2f°", s.MeanAbsDeltaAlpha))
	line("max |Δα|:", fmt.Sprintf("%.2f°", s.MaxAbsDeltaAlpha))
	line("best VPF benefit:", string(s.Best))
	line("worst VPF benefit:", string(s.Worst))
	if s.Warnings > 0 {
		line("compressibility warnings:", warnStyle.UnsetPadding().Render(fmt.Sprint(s.Warnings)))
	}
	return b.String()
}
