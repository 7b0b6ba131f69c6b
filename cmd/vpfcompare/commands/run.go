package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"turbofanvpf/internal/app"
	"turbofanvpf/internal/report"
)

func runCmd() *cobra.Command {
	var noExport bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every phase, print the comparison and export results",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(cfg, logger, nil)
			if err != nil {
				return err
			}
			logger.Info("polar loaded", "path", cfg.Polar, "points", w.Base.Len(), "fingerprint", w.Polar)

			outcomes, err := w.Evaluate(cmd.Context())
			if err != nil {
				return err
			}
			run := report.NewRun(w.Polar, w.Target, outcomes)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "FPF vs VPF (%s) · run %s\n", w.Target, run.ID)
			fmt.Fprintln(out, report.RenderTable(outcomes))
			fmt.Fprintln(out, report.RenderSummary(run.Summary))

			if !noExport {
				paths, err := w.Export(run, outcomes)
				for _, p := range paths {
					fmt.Fprintf(out, "wrote %s\n", p)
				}
				if err != nil {
					return err
				}
			}
			if run.Summary.Succeeded() == 0 {
				return errors.New("no phase evaluated successfully")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noExport, "no-export", false, "print results without writing files")
	return cmd
}
