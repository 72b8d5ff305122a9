package gateway

import "time"

// Options represents configuration options for the Gateway.
type Options struct {
	SnapshotInterval time.Duration
}

// DefaultOptions returns the default gateway options.
func DefaultOptions() *Options {
	return &Options{
		SnapshotInterval: 10 * time.Second,
	}
}
