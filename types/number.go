package types

import (
	"strconv"
	"strings"
)

// Number represents a numeric value from an exchange payload that may arrive
// either as a JSON number or as a quoted string. The zero value reports 0.
type Number float64

// UnmarshalJSON deserializes json numbers and numeric strings.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// MarshalJSON serializes the number as a quoted string, matching the format
// most venues require on outbound payloads.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}

// Float64 returns the value as a float64.
func (n Number) Float64() float64 { return float64(n) }

// Int64 returns the value truncated to an int64.
func (n Number) Int64() int64 { return int64(n) }

// String returns the shortest decimal representation of the value.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
