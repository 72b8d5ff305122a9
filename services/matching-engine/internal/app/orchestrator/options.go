package orchestrator

import (
	authv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1"
	networkv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/network/v1"
	persistencev1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/persistence/v1"
)

// FeatureFlags toggles the side effects of book events.
type FeatureFlags struct {
	// AutoSnapshot saves a snapshot on every published book.
	AutoSnapshot bool
	// NetworkEnabled publishes book, trade and private order events.
	NetworkEnabled bool
}

// DefaultFeatureFlags enables everything.
func DefaultFeatureFlags() *FeatureFlags {
	return &FeatureFlags{
		AutoSnapshot:   true,
		NetworkEnabled: true,
	}
}

// Dependencies are the adapters an orchestrator drives. Nil fields fall back
// to the no-op adapters.
type Dependencies struct {
	Persistence persistencev1.Adapter
	Network     networkv1.Adapter
	Auth        authv1.Adapter
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Persistence == nil {
		d.Persistence = persistencev1.Nop{}
	}
	if d.Network == nil {
		d.Network = networkv1.Nop{}
	}
	if d.Auth == nil {
		d.Auth = authv1.Nop{}
	}
	return d
}
