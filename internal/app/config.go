package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"turbofanvpf/internal/aero/compress"
	"turbofanvpf/internal/aero/incidence"
	"turbofanvpf/internal/domain"
	"turbofanvpf/internal/services/evaluation"
	"turbofanvpf/internal/store"
)

// FPF schedule names.
const (
	ScheduleLaw         = "law"
	ScheduleDesignPoint = "design_point"
)

// Config is a complete case description.
type Config struct {
	// Polar is the base polar CSV, relative to the case file's directory
	// or the output store when not absolute.
	Polar           string                `yaml:"polar" validate:"required"`
	Phases          []domain.FlightPhase  `yaml:"phases" validate:"required,min=1,unique=Name,dive"`
	Incidence       incidence.Law         `yaml:"incidence"`
	Compressibility CompressibilityConfig `yaml:"compressibility"`
	VPF             VPFConfig             `yaml:"vpf"`
	FPF             FPFConfig             `yaml:"fpf"`
	Output          OutputConfig          `yaml:"output"`
	Workers         int                   `yaml:"workers" validate:"gte=1"`
	// Server, when set, sends evaluation to a polard instance.
	Server string `yaml:"server,omitempty" validate:"omitempty,url"`
}

type CompressibilityConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MachMaxValid float64 `yaml:"mach_max_valid" validate:"gt=0,lt=1"`
}

type VPFConfig struct {
	Target string `yaml:"target" validate:"target"`
	Refine bool   `yaml:"refine"`
}

type FPFConfig struct {
	Schedule     string `yaml:"schedule" validate:"oneof=law design_point"`
	DesignPhase  string `yaml:"design_phase,omitempty" validate:"required_if=Schedule design_point"`
	DesignTarget string `yaml:"design_target,omitempty" validate:"omitempty,target"`
}

type OutputConfig struct {
	Dir   string `yaml:"dir" validate:"required"`
	CSV   bool   `yaml:"csv"`
	JSON  bool   `yaml:"json"`
	Plots bool   `yaml:"plots"`
}

// DefaultConfig reproduces the reference study: five phases, the default
// incidence law, Prandtl-Glauert on with a 0.7 validity limit and a max L/D
// VPF target.
func DefaultConfig() Config {
	return Config{
		Polar:     "polar.csv",
		Phases:    domain.DefaultPhases(),
		Incidence: incidence.DefaultLaw(),
		Compressibility: CompressibilityConfig{
			Enabled:      true,
			MachMaxValid: compress.DefaultMachMaxValid,
		},
		VPF:     VPFConfig{Target: domain.StrategyMaxLD.String()},
		FPF:     FPFConfig{Schedule: ScheduleLaw},
		Output:  OutputConfig{Dir: "results", CSV: true, JSON: true, Plots: true},
		Workers: 1,
	}
}

// LoadConfig reads a case file over DefaultConfig, so omitted sections keep
// their defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if err := store.LoadYAML(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML.
func SaveConfig(path string, cfg Config) error { return store.SaveYAML(path, cfg) }

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("target", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTarget(fl.Field().String())
		return err == nil
	})
}

// Validate checks field constraints and cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s fails %q (value %v)", fe.Namespace(), fe.ActualTag(), fe.Value())
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.FPF.Schedule == ScheduleDesignPoint {
		if _, ok := evaluation.FindPhase(c.Phases, domain.PhaseName(c.FPF.DesignPhase)); !ok {
			return fmt.Errorf("invalid config: design phase %q is not among the phases", c.FPF.DesignPhase)
		}
	}
	return nil
}

// Target returns the parsed VPF target.
func (c Config) Target() (domain.Strategy, error) { return domain.ParseTarget(c.VPF.Target) }

// Corrector builds the compressibility corrector.
func (c Config) Corrector() compress.Corrector {
	return compress.Corrector{MachMaxValid: c.Compressibility.MachMaxValid, Disabled: !c.Compressibility.Enabled}
}
