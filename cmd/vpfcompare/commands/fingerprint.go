package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"turbofanvpf/internal/digest"
	"turbofanvpf/internal/store"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [csv]",
		Short: "Print the content fingerprint of a polar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Polar
			if len(args) == 1 {
				path = args[0]
			}
			t, err := store.NewFileStore("").LoadPolar(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", digest.Polar(t))
			return nil
		},
	}
}
