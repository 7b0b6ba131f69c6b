package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"turbofanvpf/internal/app"
	"turbofanvpf/internal/logging"
)

var (
	configPath string
	logLevel   string
	logJSON    bool

	polarPath string
	target    string
	refine    bool
	serverURL string
	workers   int
	outDir    string

	cfg    app.Config
	logger *slog.Logger
)

func Execute() error {
	return rootCmd().Execute()
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vpfcompare",
		Short:        "Compare fixed and variable pitch fan drag across flight phases",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger = logging.New(logging.Config{Level: lvl, JSON: logJSON, Output: cmd.ErrOrStderr(), Service: "vpfcompare"})

			if cfg, err = app.LoadConfig(configPath); err != nil {
				return err
			}
			applyOverrides(cmd)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML case file (defaults reproduce the reference study)")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&logJSON, "log-json", false, "emit JSON logs")
	pf.StringVar(&polarPath, "polar", "", "base polar CSV (alpha_deg,cl,cd)")
	pf.StringVar(&target, "target", "", "VPF optimisation target: max_ld or min_cd")
	pf.BoolVar(&refine, "refine", false, "refine the VPF optimum between grid points")
	pf.StringVar(&serverURL, "server", "", "polard base URL; evaluate remotely (e.g. http://127.0.0.1:8080)")
	pf.IntVar(&workers, "workers", 0, "phases evaluated in parallel")
	pf.StringVarP(&outDir, "out", "o", "", "output directory")

	root.AddCommand(initCmd(), runCmd(), phasesCmd(), polarCmd(), fingerprintCmd())
	return root
}

// applyOverrides copies explicitly set flags over the loaded config.
func applyOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("polar") {
		cfg.Polar = polarPath
	}
	if flags.Changed("target") {
		cfg.VPF.Target = target
	}
	if flags.Changed("refine") {
		cfg.VPF.Refine = refine
	}
	if flags.Changed("server") {
		cfg.Server = serverURL
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("out") {
		cfg.Output.Dir = outDir
	}
}
