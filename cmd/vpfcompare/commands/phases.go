package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"turbofanvpf/internal/atmosphere"
)

func phasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phases",
		Short: "List the configured phases with ISA conditions and FPF incidence",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("Phase", "Alt [m]", "Mach", "T [K]", "ρ [kg/m³]", "TAS [m/s]", "q [kPa]", "α FPF [deg]")
			for _, p := range cfg.Phases {
				f, err := atmosphere.FlowAt(p.AltitudeM, p.Mach)
				if err != nil {
					return fmt.Errorf("phase %s: %w", p.Name, err)
				}
				t.Row(string(p.Name),
					fmt.Sprintf("%.0f", p.AltitudeM),
					fmt.Sprintf("%.2f", p.Mach),
					fmt.Sprintf("%.2f", f.TemperatureK),
					fmt.Sprintf("%.4f", f.Density),
					fmt.Sprintf("%.1f", f.TrueAirspeed),
					fmt.Sprintf("%.2f", f.DynamicPressure/1000),
					fmt.Sprintf("%.2f", cfg.Incidence.AngleDeg(p.Mach)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
