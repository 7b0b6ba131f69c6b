package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StrategyKind enumerates the closed set of pitch control strategies.
type StrategyKind int

const (
	// StrategyFixed evaluates the polar at a given angle of attack.
	StrategyFixed StrategyKind = iota
	// StrategyMaxLD selects the tabulated angle with the highest CL/CD.
	StrategyMaxLD
	// StrategyMinCD selects the tabulated angle with the lowest CD.
	StrategyMinCD
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyFixed:
		return "fixed"
	case StrategyMaxLD:
		return "max_ld"
	case StrategyMinCD:
		return "min_cd"
	default:
		return "unknown"
	}
}

// Strategy is a tagged variant: Fixed(angle), MaxLoverD or MinCD.
// AlphaDeg is meaningful only for StrategyFixed.
type Strategy struct {
	Kind     StrategyKind
	AlphaDeg float64
}

// Fixed returns a strategy that holds the given angle of attack.
func Fixed(alphaDeg float64) Strategy { return Strategy{Kind: StrategyFixed, AlphaDeg: alphaDeg} }

// MaxLoverD returns the maximum lift-to-drag strategy.
func MaxLoverD() Strategy { return Strategy{Kind: StrategyMaxLD} }

// MinCD returns the minimum drag strategy.
func MinCD() Strategy { return Strategy{Kind: StrategyMinCD} }

func (s Strategy) String() string {
	if s.Kind == StrategyFixed {
		return fmt.Sprintf("fixed(%.2f)", s.AlphaDeg)
	}
	return s.Kind.String()
}

// ParseTarget parses an optimisation target name ("max_ld" or "min_cd").
// Fixed strategies carry an angle and cannot be parsed from a name.
func ParseTarget(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max_ld", "maxld":
		return MaxLoverD(), nil
	case "min_cd", "mincd":
		return MinCD(), nil
	default:
		return Strategy{}, fmt.Errorf("invalid target %q: must be max_ld or min_cd", s)
	}
}

type strategyJSON struct {
	Kind     string   `json:"kind"`
	AlphaDeg *float64 `json:"alpha_deg,omitempty"`
}

// MarshalJSON encodes the variant as {"kind": ..., "alpha_deg": ...}.
func (s Strategy) MarshalJSON() ([]byte, error) {
	aux := strategyJSON{Kind: s.Kind.String()}
	if s.Kind == StrategyFixed {
		a := s.AlphaDeg
		aux.AlphaDeg = &a
	}
	return json.Marshal(aux)
}

// UnmarshalJSON mirrors MarshalJSON.
func (s *Strategy) UnmarshalJSON(data []byte) error {
	var aux strategyJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Kind == StrategyFixed.String() {
		if aux.AlphaDeg == nil {
			return fmt.Errorf("fixed strategy requires alpha_deg")
		}
		*s = Fixed(*aux.AlphaDeg)
		return nil
	}
	parsed, err := ParseTarget(aux.Kind)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
