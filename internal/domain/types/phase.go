package types

import "fmt"

// FlightPhase is an operating condition supplied by configuration.
type FlightPhase struct {
	Name      PhaseName `json:"name" yaml:"name" validate:"required"`
	AltitudeM float64   `json:"altitude_m" yaml:"altitude_m" validate:"gte=0"`
	Mach      float64   `json:"mach" yaml:"mach" validate:"gte=0,lt=1"`
}

// String returns a short human-readable description of the phase.
func (p FlightPhase) String() string {
	return fmt.Sprintf("%s (alt: %.0f m, Mach: %.2f)", p.Name, p.AltitudeM, p.Mach)
}

// DefaultPhases returns the standard commercial mission profile.
func DefaultPhases() []FlightPhase {
	return []FlightPhase{
		{Name: "takeoff", AltitudeM: 0, Mach: 0.25},
		{Name: "climb", AltitudeM: 5000, Mach: 0.60},
		{Name: "cruise", AltitudeM: 11000, Mach: 0.80},
		{Name: "descent", AltitudeM: 7000, Mach: 0.65},
		{Name: "approach", AltitudeM: 500, Mach: 0.30},
	}
}
