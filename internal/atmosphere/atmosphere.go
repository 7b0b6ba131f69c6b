// Package atmosphere implements the International Standard Atmosphere for
// the troposphere and the isothermal lower stratosphere.
package atmosphere

import (
	"fmt"
	"math"
)

// Sea-level ISA conditions and physical constants.
const (
	T0            = 288.15   // K
	P0            = 101325.0 // Pa
	Rho0          = 1.225    // kg/m³
	R             = 287.058  // J/(kg·K)
	Gamma         = 1.4
	G             = 9.80665 // m/s²
	LapseRate     = -0.0065 // K/m
	TropopauseAlt = 11000.0 // m
)

// Conditions are static atmospheric properties at one altitude.
type Conditions struct {
	TemperatureK float64 `json:"temperature_k"`
	PressurePa   float64 `json:"pressure_pa"`
	Density      float64 `json:"density_kg_m3"`
	SpeedOfSound float64 `json:"speed_of_sound_m_s"`
}

// At returns ISA conditions at altitudeM. Above the tropopause the
// temperature is held constant and pressure decays exponentially.
func At(altitudeM float64) (Conditions, error) {
	if math.IsNaN(altitudeM) || altitudeM < 0 {
		return Conditions{}, fmt.Errorf("altitude must be non-negative, got %v", altitudeM)
	}
	exponent := -G / (LapseRate * R)

	var t, p float64
	if altitudeM <= TropopauseAlt {
		t = T0 + LapseRate*altitudeM
		p = P0 * math.Pow(t/T0, exponent)
	} else {
		t = T0 + LapseRate*TropopauseAlt
		pTrop := P0 * math.Pow(t/T0, exponent)
		p = pTrop * math.Exp(-G*(altitudeM-TropopauseAlt)/(R*t))
	}
	return Conditions{
		TemperatureK: t,
		PressurePa:   p,
		Density:      p / (R * t),
		SpeedOfSound: math.Sqrt(Gamma * R * t),
	}, nil
}

// Flow is the free-stream state of a flight phase.
type Flow struct {
	Conditions
	AltitudeM       float64 `json:"altitude_m"`
	Mach            float64 `json:"mach"`
	TrueAirspeed    float64 `json:"tas_m_s"`
	DynamicPressure float64 `json:"q_pa"`
}

// FlowAt derives true airspeed and dynamic pressure for mach at altitudeM.
func FlowAt(altitudeM, mach float64) (Flow, error) {
	c, err := At(altitudeM)
	if err != nil {
		return Flow{}, err
	}
	tas := mach * c.SpeedOfSound
	return Flow{
		Conditions:      c,
		AltitudeM:       altitudeM,
		Mach:            mach,
		TrueAirspeed:    tas,
		DynamicPressure: 0.5 * c.Density * tas * tas,
	}, nil
}
