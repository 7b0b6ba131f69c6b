package types

// PolarPoint is one tabulated row of a 2D airfoil polar.
type PolarPoint struct {
	AlphaDeg float64 `json:"alpha_deg" yaml:"alpha_deg"`
	CL       float64 `json:"cl" yaml:"cl"`
	CD       float64 `json:"cd" yaml:"cd"`
}

// OperatingPoint is the (angle, CL, CD) triple realised by a control
// strategy on a corrected polar.
type OperatingPoint struct {
	AlphaDeg float64 `json:"alpha_deg"`
	CL       float64 `json:"cl"`
	CD       float64 `json:"cd"`
}
