package network

import (
	"context"
	"time"

	"github.com/muhammadchandra19/exchange/pkg/grpclib/health"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	"github.com/muhammadchandra19/exchange/pkg/util"
	eventv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/event/v1"
	networkv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/network/v1"
	"github.com/oklog/ulid/v2"
)

// Envelope wraps every outbound payload.
type Envelope struct {
	ID        string    `json:"id"`
	Channel   string    `json:"channel"`
	Pair      string    `json:"pair"`
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEnvelope wraps payload for channel. The pair is taken from ctx and the
// type from the payload's event kind when it is an engine event.
func NewEnvelope(ctx context.Context, channel string, payload any) Envelope {
	kind := "message"
	if ev, ok := payload.(eventv1.Event); ok {
		kind = string(ev.Kind())
	}

	return Envelope{
		ID:        ulid.Make().String(),
		Channel:   channel,
		Pair:      util.GetPair(ctx),
		Type:      kind,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// healthReporter maps pair health onto the gRPC health service.
type healthReporter struct {
	server *health.Server
	logger *logger.Logger
}

// PublishHealth marks the pair SERVING when it is ready. server may be nil.
func (h healthReporter) PublishHealth(ctx context.Context, status networkv1.Health) error {
	if h.server != nil {
		h.server.SetServing(status.Pair, status.Status == networkv1.HealthReady)
	}
	h.logger.InfoContext(ctx, "pair health changed",
		logger.NewField("pair", status.Pair),
		logger.NewField("status", status.Status),
	)
	return nil
}
