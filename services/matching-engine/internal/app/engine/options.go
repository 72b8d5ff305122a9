package engine

import (
	"time"

	"github.com/muhammadchandra19/exchange/pkg/amount"
)

// Options represents configuration options for the Engine.
type Options struct {
	// ReadBackoff is the pause after a failed read from the command source.
	ReadBackoff     time.Duration
	PricePrecision  int32
	AmountPrecision int32
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		ReadBackoff:     100 * time.Millisecond,
		PricePrecision:  amount.DefaultPrecision,
		AmountPrecision: amount.DefaultPrecision,
	}
}
