// Package incidence provides the geometric angle-of-attack schedules a
// fixed pitch fan follows as the flight Mach number changes.
package incidence

// Default coefficients of the linear law.
const (
	DefaultAlpha0Deg = 4.0
	DefaultMachRef   = 0.5
	DefaultKMach     = 2.0 // deg per unit Mach
)

// Schedule yields the FPF geometric incidence for a Mach number.
type Schedule interface {
	AngleDeg(mach float64) float64
}

// Law is alpha = Alpha0Deg + KMach * (mach − MachRef).
type Law struct {
	Alpha0Deg float64 `json:"alpha0_deg" yaml:"alpha0_deg"`
	MachRef   float64 `json:"mach_ref" yaml:"mach_ref"`
	KMach     float64 `json:"k_mach_deg_per_mach" yaml:"k_mach_deg_per_mach"`
}

// DefaultLaw returns the reference law (4.0°, 0.5, 2.0°/Mach).
func DefaultLaw() Law {
	return Law{Alpha0Deg: DefaultAlpha0Deg, MachRef: DefaultMachRef, KMach: DefaultKMach}
}

// AngleDeg evaluates the law. The result may fall outside a table's domain;
// interpolation reports that, not the law.
func (l Law) AngleDeg(mach float64) float64 {
	return l.Alpha0Deg + l.KMach*(mach-l.MachRef)
}

// Constant holds one angle for every Mach number, e.g. a cruise design point.
type Constant float64

// AngleDeg returns the constant angle.
func (c Constant) AngleDeg(float64) float64 { return float64(c) }

var (
	_ Schedule = Law{}
	_ Schedule = Constant(0)
)
