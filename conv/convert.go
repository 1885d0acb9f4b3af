package conv

import (
	"strings"

	"github.com/ericlagergren/decimal"
	"github.com/pkg/errors"
)

// AmountPrecision number of decimals shown for money amounts
const AmountPrecision = 2

// NewDecimal with the context used for every amount
func NewDecimal() *decimal.Big {
	z := &decimal.Big{}
	z.Context = decimal.Context128
	z.Context.RoundingMode = decimal.ToNearestEven
	return z
}

// ParseAmount parses a finite decimal amount; NaN and infinities are rejected
func ParseAmount(s string) (*decimal.Big, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	d, ok := NewDecimal().SetString(s)
	if !ok || !d.IsFinite() {
		return nil, false
	}
	return d, true
}

// IsPositiveAmount reports whether s is a finite amount greater than zero
func IsPositiveAmount(s string) bool {
	d, ok := ParseAmount(s)
	return ok && d.Sign() > 0
}

// SumAmounts adds the amounts exactly. Invalid entries are an error.
func SumAmounts(amounts ...string) (*decimal.Big, error) {
	total := NewDecimal()
	for _, a := range amounts {
		d, ok := ParseAmount(a)
		if !ok {
			return nil, errors.Errorf("invalid amount %q", a)
		}
		total.Add(total, d)
	}
	return total, nil
}

// FormatAmount with AmountPrecision decimals
func FormatAmount(d *decimal.Big) string {
	return NewDecimal().Copy(d).Quantize(AmountPrecision).String()
}
