package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/aero/solver"
	"turbofanvpf/internal/digest"
	"turbofanvpf/internal/domain"
	"turbofanvpf/internal/relay"
	"turbofanvpf/internal/store"
)

// loadPolar reads ref as a CSV path, or fetches it from the server when a
// server is configured and ref is a polar fingerprint.
func loadPolar(ctx context.Context, ref string) (polar.Table, error) {
	if cfg.Server != "" && digest.Valid(ref) {
		t, err := relay.NewHTTP(cfg.Server).FetchPolar(ctx, domain.Fingerprint(ref))
		if err != nil {
			return polar.Table{}, fmt.Errorf("fetch polar %s: %w", ref, err)
		}
		return t, nil
	}
	var polars domain.PolarStore = store.NewFileStore("")
	return polars.LoadPolar(ref)
}

func polarCmd() *cobra.Command {
	var (
		mach   float64
		points bool
	)
	cmd := &cobra.Command{
		Use:   "polar [csv|fingerprint]",
		Short: "Inspect a polar, optionally corrected for a Mach number",
		Long: `Inspect a polar, optionally corrected for a Mach number.

With --server set, a fingerprint argument fetches the polar registered on
that server instead of reading a CSV file.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Polar
			if len(args) == 1 {
				path = args[0]
			}
			t, err := loadPolar(cmd.Context(), path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mach") {
				corrected, warn, err := cfg.Corrector().Correct(t, mach)
				if err != nil {
					return err
				}
				if warn != nil {
					logger.Warn("compressibility correction beyond validity range",
						"mach", warn.Mach, "mach_max_valid", warn.MachMaxValid)
				}
				t = corrected
			}

			out := cmd.OutOrStdout()
			lo, hi := t.Domain()
			fmt.Fprintf(out, "Polar:       %s\n", path)
			fmt.Fprintf(out, "Fingerprint: %s\n", digest.Polar(t))
			fmt.Fprintf(out, "Points:      %d\n", t.Len())
			fmt.Fprintf(out, "Alpha range: [%.2f°, %.2f°]\n", lo, hi)
			for _, s := range []domain.Strategy{domain.MaxLoverD(), domain.MinCD()} {
				op, err := solver.Resolve(t, s)
				if err != nil {
					fmt.Fprintf(out, "%-12s %v\n", s.String()+":", err)
					continue
				}
				fmt.Fprintf(out, "%-12s α=%.2f° CL=%.4f CD=%.6f\n", s.String()+":", op.AlphaDeg, op.CL, op.CD)
			}
			if points {
				fmt.Fprintln(out)
				return store.WritePolarCSV(out, t)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&mach, "mach", 0, "apply the compressibility correction for this Mach number")
	cmd.Flags().BoolVar(&points, "points", false, "print the (corrected) table as CSV")
	return cmd
}
