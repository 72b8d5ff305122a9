package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/muhammadchandra19/exchange/pkg/logger"
	"github.com/muhammadchandra19/exchange/pkg/util"
	eventv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/event/v1"
	networkv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/network/v1"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	persistencev1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/persistence/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/usecase/orderbook"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/usecase/sink"
)

// Network topics written by AttachNetworkObservers.
const (
	TopicTrade       = "engine:trade"
	TopicReject      = "engine:reject"
	TopicOrderCreate = "engine:order:create"
	TopicOrderUpdate = "engine:order:update"
	TopicOrderCancel = "engine:order:cancel"
)

// Gateway owns one pair's book, restores it from the last snapshot and
// saves a new snapshot on a fixed interval.
type Gateway struct {
	pair        string
	book        *orderbook.Orderbook
	persistence persistencev1.SnapshotPersister
	network     networkv1.Publisher
	queue       *sink.Queue
	logger      *logger.Logger
	options     *Options

	// base carries the pair into sink jobs.
	base context.Context

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a gateway for pair. persistence and network may be nil; without
// persistence Restore does nothing and without network there are no observers.
func New(
	pair string,
	persistence persistencev1.SnapshotPersister,
	network networkv1.Publisher,
	log *logger.Logger,
	options *Options,
) *Gateway {
	if options == nil {
		options = DefaultOptions()
	}
	log = log.WithFields(logger.NewField("pair", pair), logger.NewField("component", "gateway"))

	return &Gateway{
		pair:        pair,
		book:        orderbook.NewOrderbook(pair, nil),
		persistence: persistence,
		network:     network,
		queue:       sink.NewQueue(log),
		logger:      log,
		options:     options,
		base:        util.WithPair(context.Background(), pair),
	}
}

// Pair returns the pair the gateway serves.
func (g *Gateway) Pair() string {
	return g.pair
}

// Book returns the underlying order book for read-only queries.
func (g *Gateway) Book() *orderbook.Orderbook {
	return g.book
}

// Restore rebuilds the book from the last snapshot and starts periodic
// snapshotting. Calling it again does not start a second timer.
func (g *Gateway) Restore(ctx context.Context) error {
	if g.persistence == nil {
		return nil
	}
	g.logger.InfoContext(ctx, "restoring order book")

	snapshot, err := g.persistence.LoadSnapshot(ctx, g.pair)
	if err != nil {
		g.logger.ErrorContext(ctx, err, logger.NewField("action", "load snapshot"))
		return err
	}
	if snapshot != nil {
		if err := g.book.Rebuild(snapshot); err != nil {
			g.logger.ErrorContext(ctx, err, logger.NewField("action", "rebuild"))
			return err
		}
		g.logger.InfoContext(ctx, "order book restored",
			logger.NewField("orders", len(snapshot.Orders)),
			logger.NewField("tradeCounter", snapshot.TradeCounter),
		)
	}

	g.startSnapshotting()
	return nil
}

func (g *Gateway) startSnapshotting() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(g.base)
	g.cancel = cancel

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		ticker := time.NewTicker(g.options.SnapshotInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				g.logger.Debug("saving snapshot")
				g.saveSnapshot(ctx)
			}
		}
	}()
}

func (g *Gateway) saveSnapshot(ctx context.Context) {
	if err := g.persistence.SaveSnapshot(ctx, g.pair, g.book.Snapshot()); err != nil {
		g.logger.ErrorContext(ctx, err, logger.NewField("action", "save snapshot"))
	}
}

// Stop stops the snapshot timer, writes a final snapshot and drains the
// network sink. A later Restore starts the timer again.
func (g *Gateway) Stop(ctx context.Context) error {
	g.mu.Lock()
	cancel := g.cancel
	g.cancel = nil
	g.mu.Unlock()

	if cancel != nil {
		cancel()
		done := make(chan struct{})
		go func() {
			g.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			g.logger.Warn("gateway stop timeout exceeded")
			return ctx.Err()
		}
		g.saveSnapshot(ctx)
	}

	return g.queue.Close(ctx)
}

// Submit passes input to the book. Errors are logged and returned.
func (g *Gateway) Submit(input orderbookv1.OrderInput) (*orderbookv1.Order, error) {
	order, err := g.book.SubmitOrder(input)
	if err != nil {
		g.logError(err, "submit", input.OUID)
	}
	return order, err
}

// Update passes an edit to the book. Errors are logged and returned.
func (g *Gateway) Update(ouid string, updates orderbookv1.OrderUpdates) (*orderbookv1.Order, error) {
	order, err := g.book.EditOrder(ouid, updates)
	if err != nil {
		g.logError(err, "update", ouid)
	}
	return order, err
}

// Cancel passes a cancellation to the book. Errors are logged and returned.
func (g *Gateway) Cancel(ouid string) (*orderbookv1.Order, error) {
	order, err := g.book.CancelOrder(ouid)
	if err != nil {
		g.logError(err, "cancel", ouid)
	}
	return order, err
}

func (g *Gateway) logError(err error, operation, ouid string) {
	g.logger.Error(err, logger.NewField("operation", operation), logger.NewField("ouid", ouid))
}

// AttachNetworkObservers forwards trades, rejects and order lifecycle events
// to the network publisher. Publishing happens on the sink after the book
// operation; failures are logged and never retried.
func (g *Gateway) AttachNetworkObservers() {
	if g.network == nil {
		return
	}

	d := g.book.Dispatcher()
	d.On(eventv1.KindTradeExecuted, func(ev eventv1.Event) {
		trade := ev.(eventv1.TradeExecuted)
		g.logger.Info("trade", logger.NewField("tradeId", trade.TradeID), logger.NewField("price", trade.Price), logger.NewField("quantity", trade.Quantity))
		g.emit(TopicTrade, ev)
	})
	d.On(eventv1.KindOrderRejected, func(ev eventv1.Event) {
		g.logger.Warn("order rejected", logger.NewField("reason", ev.(eventv1.OrderRejected).Reason))
		g.emit(TopicReject, ev)
	})
	d.On(eventv1.KindOrderCreated, func(ev eventv1.Event) { g.emit(TopicOrderCreate, ev) })
	d.On(eventv1.KindOrderUpdated, func(ev eventv1.Event) { g.emit(TopicOrderUpdate, ev) })
	d.On(eventv1.KindOrderCancelled, func(ev eventv1.Event) { g.emit(TopicOrderCancel, ev) })
}

func (g *Gateway) emit(topic string, ev eventv1.Event) {
	g.queue.Enqueue(g.base, topic, func(ctx context.Context) error {
		return g.network.Publish(ctx, topic, ev)
	})
}

// Flush waits until every queued publish has run.
func (g *Gateway) Flush(ctx context.Context) error {
	return g.queue.Flush(ctx)
}

// Snapshot returns the current serialized book.
func (g *Gateway) Snapshot() *snapshotv1.Snapshot {
	return g.book.Snapshot()
}
