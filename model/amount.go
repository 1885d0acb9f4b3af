package model

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"gitlab.com/paramountdax-exchange/psp_dashboard/conv"
)

// Amount keeps the literal value sent by the caller. It accepts both a JSON number
// and a JSON string and is forwarded upstream as a string without reformatting.
type Amount string

// UnmarshalJSON godoc
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "invalid amount")
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "amount must be a number or a string")
	}
	*a = Amount(n.String())
	return nil
}

// MarshalJSON writes numeric amounts as JSON numbers and anything else as a string
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.IsNumeric() {
		return []byte(a), nil
	}
	return json.Marshal(string(a))
}

// IsNumeric reports whether the literal is a valid JSON number
func (a Amount) IsNumeric() bool {
	if a == "" {
		return false
	}
	if _, ok := conv.ParseAmount(string(a)); !ok {
		return false
	}
	return json.Valid([]byte(a))
}

func (a Amount) String() string {
	return string(a)
}
