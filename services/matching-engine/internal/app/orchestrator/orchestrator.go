package orchestrator

import (
	"context"
	"sync"

	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	"github.com/muhammadchandra19/exchange/pkg/util"
	authv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1"
	eventv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/event/v1"
	networkv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/network/v1"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	persistencev1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/persistence/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/usecase/orderbook"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/usecase/sink"
)

// Rate limit actions.
const (
	ActionSubmitOrder = "submitOrder"
	ActionCancelOrder = "cancelOrder"
	ActionEditOrder   = "editOrder"
)

// Orchestrator fronts one pair's book with session checks, rate limiting,
// persistence and network publication. Side effects run on a sink in the
// order the book produced them; their failures are logged and dropped.
type Orchestrator struct {
	pair        string
	book        *orderbook.Orderbook
	persistence persistencev1.Adapter
	network     networkv1.Adapter
	auth        authv1.Adapter
	flags       FeatureFlags
	queue       *sink.Queue
	logger      *logger.Logger

	base context.Context

	mu     sync.RWMutex
	status networkv1.SessionStatus
}

// New creates an orchestrator for pair and subscribes it to every book event.
func New(pair string, deps Dependencies, flags *FeatureFlags, log *logger.Logger) *Orchestrator {
	if flags == nil {
		flags = DefaultFeatureFlags()
	}
	deps = deps.withDefaults()
	log = log.WithFields(logger.NewField("pair", pair), logger.NewField("component", "orchestrator"))

	o := &Orchestrator{
		pair:        pair,
		book:        orderbook.NewOrderbook(pair, nil),
		persistence: deps.Persistence,
		network:     deps.Network,
		auth:        deps.Auth,
		flags:       *flags,
		queue:       sink.NewQueue(log),
		logger:      log,
		base:        util.WithPair(context.Background(), pair),
	}
	o.book.Dispatcher().OnAny(o.handleEvent)
	return o
}

// Pair returns the pair the orchestrator serves.
func (o *Orchestrator) Pair() string {
	return o.pair
}

// Book returns the underlying order book for read-only queries.
func (o *Orchestrator) Book() *orderbook.Orderbook {
	return o.book
}

// Init restores the book, authenticates against the network and reports the
// pair as ready. Without a snapshot the book is replayed from the journal's
// open orders.
func (o *Orchestrator) Init(ctx context.Context) error {
	ctx = util.WithPair(ctx, o.pair)

	snapshot, err := o.persistence.LoadSnapshot(ctx, o.pair)
	if err != nil {
		o.logger.ErrorContext(ctx, err, logger.NewField("action", "load snapshot"))
		return err
	}

	if snapshot == nil {
		orders, err := o.persistence.LoadOpenOrders(ctx, o.pair)
		if err != nil {
			o.logger.ErrorContext(ctx, err, logger.NewField("action", "load open orders"))
			return err
		}
		if len(orders) > 0 {
			snapshot = &snapshotv1.Snapshot{Pair: o.pair, Orders: orders}
		}
	}

	if snapshot != nil {
		if err := o.book.Rebuild(snapshot); err != nil {
			o.logger.ErrorContext(ctx, err, logger.NewField("action", "rebuild"))
			return err
		}
		o.logger.InfoContext(ctx, "order book restored", logger.NewField("orders", len(snapshot.Orders)))
	}

	status, err := o.network.Authenticate(ctx)
	if err != nil {
		o.logger.ErrorContext(ctx, err, logger.NewField("action", "authenticate"))
		return err
	}
	o.mu.Lock()
	o.status = status
	o.mu.Unlock()

	if err := o.network.PublishHealth(ctx, networkv1.Health{Status: networkv1.HealthReady, Pair: o.pair}); err != nil {
		o.logger.ErrorContext(ctx, err, logger.NewField("action", "publish health"))
		return err
	}

	o.logger.InfoContext(ctx, "orchestrator ready", logger.NewField("mode", status.Mode))
	return nil
}

// NetworkStatus returns the session status reported by Init.
func (o *Orchestrator) NetworkStatus() networkv1.SessionStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

// SubmitOrder places input for session. A nil order with a nil error means
// the book rejected it; the rejection is journaled from its event.
func (o *Orchestrator) SubmitOrder(ctx context.Context, session authv1.Session, input orderbookv1.OrderInput) (*orderbookv1.Order, error) {
	if err := o.authorize(ctx, session, ActionSubmitOrder); err != nil {
		return nil, err
	}

	order, err := o.book.SubmitOrder(input)
	if err != nil || order == nil {
		return order, err
	}

	o.persistOrder(ctx, *order, session, persistencev1.ActionSubmit)
	return order, nil
}

// CancelOrder cancels the resting order ouid for session.
func (o *Orchestrator) CancelOrder(ctx context.Context, session authv1.Session, ouid string) (*orderbookv1.Order, error) {
	if err := o.authorize(ctx, session, ActionCancelOrder); err != nil {
		return nil, err
	}

	order, err := o.book.CancelOrder(ouid)
	if err != nil || order == nil {
		return order, err
	}

	meta := o.meta(session, persistencev1.ActionCancel)
	cancelled := *order
	o.queue.Enqueue(util.WithPair(ctx, o.pair), "persistOrderCancel", func(ctx context.Context) error {
		return o.persistence.PersistOrderCancel(ctx, cancelled, meta)
	})
	return order, nil
}

// EditOrder applies updates to the resting order ouid for session.
func (o *Orchestrator) EditOrder(ctx context.Context, session authv1.Session, ouid string, updates orderbookv1.OrderUpdates) (*orderbookv1.Order, error) {
	if err := o.authorize(ctx, session, ActionEditOrder); err != nil {
		return nil, err
	}

	order, err := o.book.EditOrder(ouid, updates)
	if err != nil || order == nil {
		return order, err
	}

	o.persistOrder(ctx, *order, session, persistencev1.ActionEdit)
	return order, nil
}

// ValidateSubscription checks that session is valid and may listen on topic.
func (o *Orchestrator) ValidateSubscription(ctx context.Context, session authv1.Session, topic string) error {
	if !o.auth.ValidateSession(ctx, session) {
		return errors.New(errors.Unauthenticated, "session is not authenticated", "session")
	}
	if !o.auth.ValidateSubscription(ctx, session, topic) {
		return errors.New(errors.SubscriptionRejected, "subscription to "+topic+" rejected", "topic")
	}
	return nil
}

// Snapshot returns the current serialized book.
func (o *Orchestrator) Snapshot() *snapshotv1.Snapshot {
	return o.book.Snapshot()
}

// Flush waits until every queued side effect has run.
func (o *Orchestrator) Flush(ctx context.Context) error {
	return o.queue.Flush(ctx)
}

// Close reports the pair as stopped and drains the sink.
func (o *Orchestrator) Close(ctx context.Context) error {
	o.queue.Enqueue(o.base, "publishHealth", func(ctx context.Context) error {
		return o.network.PublishHealth(ctx, networkv1.Health{Status: networkv1.HealthStopped, Pair: o.pair})
	})
	return o.queue.Close(ctx)
}

func (o *Orchestrator) authorize(ctx context.Context, session authv1.Session, action string) error {
	if !o.auth.ValidateSession(ctx, session) {
		return errors.New(errors.Unauthenticated, "session is not authenticated", "session")
	}

	if err := o.auth.RateLimit(ctx, session, action); err != nil {
		o.logger.WarnContext(ctx, "rate limited", logger.NewField("action", action), logger.NewField("userId", session.UserID))
		if errors.CodeOf(err) == "" {
			return errors.New(errors.RateLimited, err.Error(), "session")
		}
		return err
	}
	return nil
}

func (o *Orchestrator) meta(session authv1.Session, action persistencev1.Action) persistencev1.Meta {
	return persistencev1.Meta{Pair: o.pair, Session: session, Action: action}
}

func (o *Orchestrator) persistOrder(ctx context.Context, order orderbookv1.Order, session authv1.Session, action persistencev1.Action) {
	meta := o.meta(session, action)
	o.queue.Enqueue(util.WithPair(ctx, o.pair), "persistOrder", func(ctx context.Context) error {
		return o.persistence.PersistOrder(ctx, order, meta)
	})
}

// handleEvent runs under the book lock. It only enqueues.
func (o *Orchestrator) handleEvent(ev eventv1.Event) {
	switch e := ev.(type) {
	case eventv1.OrderBookPublished:
		if o.flags.AutoSnapshot {
			o.enqueue("saveSnapshot", func(ctx context.Context) error {
				return o.persistence.SaveSnapshot(ctx, o.pair, e.Snapshot)
			})
		}
		if o.flags.NetworkEnabled {
			o.enqueue("publishOrderBook", func(ctx context.Context) error {
				return o.network.PublishPublicEvent(ctx, networkv1.ChannelOrderBook, e.Snapshot)
			})
		}

	case eventv1.TradeExecuted:
		o.enqueue("persistTrade", func(ctx context.Context) error {
			return o.persistence.PersistTrade(ctx, e.Trade)
		})
		if o.flags.NetworkEnabled {
			o.enqueue("publishTrade", func(ctx context.Context) error {
				return o.network.PublishPublicEvent(ctx, networkv1.ChannelTrade, e.Trade)
			})
			o.publishPrivate(e.Taker.UUID, e)
			o.publishPrivate(e.Maker.UUID, e)
		}

	case eventv1.OrderCreated:
		o.persistFromEvent(e.Order)

	case eventv1.OrderUpdated:
		o.persistFromEvent(e.Order)

	case eventv1.OrderCancelled:
		meta := persistencev1.Meta{Pair: o.pair, Action: persistencev1.ActionCancel}
		o.enqueue("persistOrderCancel", func(ctx context.Context) error {
			return o.persistence.PersistOrderCancel(ctx, e.Order, meta)
		})
		if o.flags.NetworkEnabled {
			o.publishPrivate(e.Order.UUID, e)
		}

	case eventv1.OrderRejected:
		meta := persistencev1.Meta{Pair: o.pair, Action: persistencev1.ActionUpdate}
		o.enqueue("persistOrderReject", func(ctx context.Context) error {
			return o.persistence.PersistOrderReject(ctx, e.Input, e.Reason, meta)
		})
	}
}

func (o *Orchestrator) persistFromEvent(order orderbookv1.Order) {
	meta := persistencev1.Meta{Pair: o.pair, Action: persistencev1.ActionUpdate}
	o.enqueue("persistOrder", func(ctx context.Context) error {
		return o.persistence.PersistOrder(ctx, order, meta)
	})
}

func (o *Orchestrator) publishPrivate(uuid string, payload eventv1.Event) {
	channel := networkv1.OrderChannel(uuid)
	o.enqueue("publishPrivate", func(ctx context.Context) error {
		return o.network.PublishPrivateEvent(ctx, channel, payload)
	})
}

func (o *Orchestrator) enqueue(name string, job sink.Job) {
	o.queue.Enqueue(o.base, name, job)
}
