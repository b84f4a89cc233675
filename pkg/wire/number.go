package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Number is the literal text of a JSON number.
//
// Unlike [json.Number], a Number only decodes from a bare number token. A
// quoted value such as "69" is a type error even when its text is numeric.
type Number string

// String returns the literal text of n.
func (n Number) String() string { return string(n) }

// Float64 returns n as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// UnmarshalJSON implements [json.Unmarshaler]. A null leaves n unchanged.
func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return fmt.Errorf("wire: cannot use string %s as a number", data)
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = Number(num)
	return nil
}

// MarshalJSON implements [json.Marshaler]. The zero Number encodes as 0.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(json.Number(n))
}
