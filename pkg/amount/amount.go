// Package amount converts decimal wire strings to integer ticks and back.
package amount

import (
	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of fractional digits used when a pair does not configure one.
const DefaultPrecision int32 = 8

// Converter scales decimal amounts by a fixed number of fractional digits.
type Converter struct {
	precision int32
}

// NewConverter returns a Converter for precision fractional digits. Negative
// precision falls back to DefaultPrecision.
func NewConverter(precision int32) Converter {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return Converter{precision: precision}
}

// Precision returns the configured number of fractional digits.
func (c Converter) Precision() int32 {
	return c.precision
}

// ToTicks parses s and returns it as an integer count of the smallest unit.
// An empty string is zero. Values with more fractional digits than the precision
// are rejected rather than rounded.
func (c Converter) ToTicks(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.New(errors.InvalidAmount, "amount is not a decimal: "+s, "amount")
	}

	scaled := d.Shift(c.precision)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, errors.New(errors.InvalidAmount, "amount exceeds precision: "+s, "amount")
	}
	if !scaled.BigInt().IsInt64() {
		return 0, errors.New(errors.InvalidAmount, "amount out of range: "+s, "amount")
	}

	return scaled.IntPart(), nil
}

// FromTicks formats ticks as a decimal string with trailing zeros removed.
func (c Converter) FromTicks(ticks int64) string {
	return decimal.New(ticks, -c.precision).String()
}

// Decimal returns ticks as a decimal value.
func (c Converter) Decimal(ticks int64) decimal.Decimal {
	return decimal.New(ticks, -c.precision)
}
