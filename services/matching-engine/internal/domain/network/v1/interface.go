package networkv1

import "context"

const (
	// ModeLocalOnly is reported when no network transport is configured.
	ModeLocalOnly = "local-only"

	// ChannelOrderBook carries published book snapshots.
	ChannelOrderBook = "orderbook"
	// ChannelTrade carries public trades.
	ChannelTrade = "trade"
)

// OrderChannel is the private channel of one user.
func OrderChannel(uuid string) string {
	return "order:" + uuid
}

// SessionStatus describes the transport the adapter connected with.
type SessionStatus struct {
	Mode string `json:"mode"`
}

// Health statuses.
const (
	HealthReady   = "ready"
	HealthStopped = "stopped"
)

// Health is the readiness report of one pair.
type Health struct {
	Status string `json:"status"`
	Pair   string `json:"pair"`
}

// Adapter publishes engine output to the outside world.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=networkv1_mock
type Adapter interface {
	Authenticate(ctx context.Context) (SessionStatus, error)
	PublishPublicEvent(ctx context.Context, channel string, payload any) error
	PublishPrivateEvent(ctx context.Context, channel string, payload any) error
	PublishHealth(ctx context.Context, health Health) error
}

// Publisher is a plain topic sink.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// Nop discards everything it is given.
type Nop struct{}

var (
	_ Adapter   = Nop{}
	_ Publisher = Nop{}
)

// Authenticate implements Adapter.
func (Nop) Authenticate(context.Context) (SessionStatus, error) {
	return SessionStatus{Mode: ModeLocalOnly}, nil
}

// PublishPublicEvent implements Adapter.
func (Nop) PublishPublicEvent(context.Context, string, any) error { return nil }

// PublishPrivateEvent implements Adapter.
func (Nop) PublishPrivateEvent(context.Context, string, any) error { return nil }

// PublishHealth implements Adapter.
func (Nop) PublishHealth(context.Context, Health) error { return nil }

// Publish implements Publisher.
func (Nop) Publish(context.Context, string, any) error { return nil }
