package types

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfDomain is returned when a query angle lies outside a table.
	ErrOutOfDomain = errors.New("angle of attack outside polar domain")
	// ErrInvalidMach is returned for Mach numbers the subsonic model rejects.
	ErrInvalidMach = errors.New("invalid mach number")
	// ErrEmptyTable is returned for tables with fewer than two points.
	ErrEmptyTable = errors.New("polar table needs at least 2 points")
	// ErrDivisionByZero is returned when a zero drag coefficient reaches a ratio.
	ErrDivisionByZero = errors.New("division by zero drag coefficient")
	// ErrUnsortedAngles is returned when angles are not strictly increasing.
	ErrUnsortedAngles = errors.New("polar angles must be strictly increasing")
	// ErrNonFiniteValue is returned when a table holds NaN or Inf.
	ErrNonFiniteValue = errors.New("polar contains non-finite value")
)

// OutOfDomainError records the rejected query and the table's range.
type OutOfDomainError struct {
	AlphaDeg float64
	Min, Max float64
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("alpha %.2f° is outside polar range [%.2f°, %.2f°]", e.AlphaDeg, e.Min, e.Max)
}

// Is makes errors.Is(err, ErrOutOfDomain) hold.
func (e *OutOfDomainError) Is(target error) bool { return target == ErrOutOfDomain }
