package engine

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/muhammadchandra19/exchange/pkg/amount"
	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	"github.com/muhammadchandra19/exchange/pkg/util"
	orderreaderv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/order-reader/v1"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	"github.com/segmentio/kafka-go"
	"go.uber.org/multierr"
)

// Stats counts commands handled by the processor.
type Stats struct {
	Processed int64 `json:"processed"`
	Failed    int64 `json:"failed"`
	Skipped   int64 `json:"skipped"`
}

// Engine hosts one market per pair and feeds them commands from the order
// reader.
type Engine struct {
	markets     map[string]Market
	pairs       []string
	orderReader orderreaderv1.OrderReader
	logger      *logger.Logger

	price    amount.Converter
	quantity amount.Converter

	readBackoff time.Duration

	mu      sync.RWMutex
	stats   Stats
	started bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates an engine over markets. orderReader may be nil, in which
// case commands only arrive through Dispatch.
func NewEngine(
	markets []Market,
	orderReader orderreaderv1.OrderReader,
	logger *logger.Logger,
	options *Options,
) *Engine {
	if options == nil {
		options = DefaultEngineOptions()
	}

	e := &Engine{
		markets:     make(map[string]Market, len(markets)),
		orderReader: orderReader,
		logger:      logger,
		price:       amount.NewConverter(options.PricePrecision),
		quantity:    amount.NewConverter(options.AmountPrecision),
		readBackoff: options.ReadBackoff,
	}
	for _, m := range markets {
		e.markets[m.Pair()] = m
		e.pairs = append(e.pairs, m.Pair())
	}
	sort.Strings(e.pairs)

	return e
}

// Start initializes every market and starts the order processor.
func (e *Engine) Start(ctx context.Context) error {
	for _, pair := range e.pairs {
		if err := e.markets[pair].Init(util.WithPair(ctx, pair)); err != nil {
			return err
		}
		e.logger.Info("market started", logger.NewField("pair", pair))
	}

	e.ctx, e.cancel = context.WithCancel(ctx)

	if e.orderReader != nil {
		e.wg.Add(1)
		go e.runOrderProcessor()
	}

	e.mu.Lock()
	e.started = true
	e.mu.Unlock()

	e.logger.Info("engine started", logger.NewField("pairs", e.pairs))
	return nil
}

// Ready reports whether Start completed.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.started
}

// Stop stops the processor, then closes every market. Errors from all markets
// are returned together.
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	e.started = false
	e.mu.Unlock()

	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		e.logger.Warn("engine stop timeout exceeded")
		return ctx.Err()
	}

	var err error
	for _, pair := range e.pairs {
		err = multierr.Append(err, e.markets[pair].Close(ctx))
	}
	if err != nil {
		e.logger.Error(err, logger.NewField("action", "close markets"))
		return err
	}

	e.logger.Info("engine stopped gracefully")
	return nil
}

// Pairs returns the hosted pairs in sorted order.
func (e *Engine) Pairs() []string {
	return e.pairs
}

// Market returns the market of pair.
func (e *Engine) Market(pair string) (Market, bool) {
	m, ok := e.markets[pair]
	return m, ok
}

// Stats returns processor counters.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}

// Dispatch routes cmd to its pair's market after converting decimal amounts.
func (e *Engine) Dispatch(ctx context.Context, cmd *orderreaderv1.Command) (*orderbookv1.Order, error) {
	market, ok := e.markets[cmd.Pair]
	if !ok {
		return nil, errors.New(errors.UnknownPair, "unknown pair: "+cmd.Pair, "pair")
	}
	ctx = util.WithPair(ctx, cmd.Pair)

	switch cmd.Action {
	case orderreaderv1.ActionSubmit:
		input, err := cmd.Order.ToInput(e.price, e.quantity)
		if err != nil {
			return nil, err
		}
		return market.Submit(ctx, cmd.Session, input)
	case orderreaderv1.ActionCancel:
		return market.Cancel(ctx, cmd.Session, cmd.OUID)
	case orderreaderv1.ActionEdit:
		updates, err := cmd.Updates.ToUpdates(e.price, e.quantity)
		if err != nil {
			return nil, err
		}
		return market.Edit(ctx, cmd.Session, cmd.OUID, updates)
	default:
		return nil, errors.New(errors.GeneralBadRequestError, "unknown action: "+string(cmd.Action), "action")
	}
}

// runOrderProcessor reads, dispatches and commits commands one at a time.
func (e *Engine) runOrderProcessor() {
	defer e.wg.Done()

	e.logger.Info("starting order processor")

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("order processor shutting down")
			if err := e.orderReader.Close(); err != nil {
				e.logger.Error(err, logger.NewField("action", "close_order_reader"))
			}
			return
		default:
		}

		msg, cmd, err := e.orderReader.ReadMessage(e.ctx)
		if err != nil {
			if e.ctx.Err() != nil {
				continue
			}
			if errors.ErrorCodeEquals(err, string(errors.GeneralBadRequestError)) {
				e.logger.ErrorContext(e.ctx, err, logger.NewField("action", "decode_command"), logger.NewField("offset", msg.Offset))
				e.count(func(s *Stats) { s.Skipped++ })
				e.commit(msg)
				continue
			}

			e.logger.ErrorContext(e.ctx, err, logger.NewField("action", "read_command"))
			select {
			case <-e.ctx.Done():
			case <-time.After(e.readBackoff):
			}
			continue
		}

		e.handle(cmd)
		e.commit(msg)
	}
}

func (e *Engine) handle(cmd *orderreaderv1.Command) {
	ctx := util.ContextWithRequestID(e.ctx, "")

	order, err := e.Dispatch(ctx, cmd)
	if err != nil {
		fields := []logger.Field{
			logger.NewField("action", cmd.Action),
			logger.NewField("commandPair", cmd.Pair),
		}
		if errors.ErrorCodeEquals(err, string(errors.UnknownPair)) {
			e.logger.WarnContext(ctx, "command for unknown pair skipped", fields...)
			e.count(func(s *Stats) { s.Skipped++ })
			return
		}
		e.logger.ErrorContext(ctx, err, fields...)
		e.count(func(s *Stats) { s.Failed++ })
		return
	}

	e.count(func(s *Stats) { s.Processed++ })
	if order != nil {
		e.logger.DebugContext(ctx, "command processed",
			logger.NewField("action", cmd.Action),
			logger.NewField("ouid", order.OUID),
			logger.NewField("orderId", order.ID),
		)
	}
}

func (e *Engine) commit(msg kafka.Message) {
	if err := e.orderReader.CommitMessages(e.ctx, msg); err != nil {
		e.logger.ErrorContext(e.ctx, err, logger.NewField("action", "commit_command"))
	}
}

func (e *Engine) count(fn func(s *Stats)) {
	e.mu.Lock()
	fn(&e.stats)
	e.mu.Unlock()
}
