package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"turbofanvpf/internal/aero/compress"
	"turbofanvpf/internal/logging"
	"turbofanvpf/internal/relay"
	"turbofanvpf/internal/services/evaluation"
	"turbofanvpf/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr         string
		logLevel     string
		logJSON      bool
		machMaxValid float64
		workers      int
		noCompress   bool
	)
	cmd := &cobra.Command{
		Use:          "polard",
		Short:        "Serve polar storage and FPF/VPF evaluation over HTTP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger := logging.New(logging.Config{Level: lvl, JSON: logJSON, Service: "polard"})

			corrector := compress.Corrector{MachMaxValid: machMaxValid, Disabled: noCompress}
			srv := &http.Server{
				Addr: addr,
				Handler: relay.NewServer(store.NewRegistry(), logger,
					evaluation.WithCorrector(corrector),
					evaluation.WithWorkers(workers)),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				logger.Info("polard listening", "addr", addr)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&addr, "addr", ":8080", "listen address")
	f.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	f.BoolVar(&logJSON, "log-json", false, "emit JSON logs")
	f.Float64Var(&machMaxValid, "mach-max-valid", compress.DefaultMachMaxValid, "Mach above which a compressibility warning is attached")
	f.IntVar(&workers, "workers", 1, "phases evaluated in parallel per request")
	f.BoolVar(&noCompress, "no-compressibility", false, "evaluate the base polar without Prandtl-Glauert correction")
	return cmd
}
