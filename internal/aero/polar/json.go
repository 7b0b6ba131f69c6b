package polar

import (
	"encoding/json"

	"turbofanvpf/internal/domain/types"
)

// MarshalJSON encodes the table as an array of points.
func (t Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Points())
}

// UnmarshalJSON decodes an array of points and validates it like New.
func (t *Table) UnmarshalJSON(data []byte) error {
	var pts []types.PolarPoint
	if err := json.Unmarshal(data, &pts); err != nil {
		return err
	}
	v, err := New(pts)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
