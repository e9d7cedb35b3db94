package dto

import (
	"bytes"
	"encoding/json"
)

// Amount is a money value sent either as a JSON number or as a decimal string.
// The raw text is kept so no precision is lost before conversion to cents.
type Amount string

// UnmarshalJSON accepts 12.5, "12.50" and null
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// String returns the raw amount text
func (a Amount) String() string {
	return string(a)
}
