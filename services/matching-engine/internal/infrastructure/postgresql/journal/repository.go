package journal

import (
	"context"
	"encoding/json"

	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	"github.com/muhammadchandra19/exchange/pkg/postgresql"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
)

// Tables written by the journal.
var Tables = []string{"engine_orders", "engine_trades", "engine_rejects"}

const (
	upsertOrderQuery = `INSERT INTO engine_orders (pair, id, ouid, uuid, user_id, price, quantity, filled_quantity, match_constraint, order_type, direction, status, last_action)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (pair, id) DO UPDATE SET
	price = EXCLUDED.price,
	quantity = EXCLUDED.quantity,
	filled_quantity = GREATEST(engine_orders.filled_quantity, EXCLUDED.filled_quantity),
	match_constraint = EXCLUDED.match_constraint,
	order_type = EXCLUDED.order_type,
	direction = EXCLUDED.direction,
	user_id = CASE WHEN EXCLUDED.user_id = '' THEN engine_orders.user_id ELSE EXCLUDED.user_id END,
	status = CASE WHEN engine_orders.status IN ('filled', 'cancelled', 'rejected') THEN engine_orders.status ELSE EXCLUDED.status END,
	last_action = EXCLUDED.last_action,
	placed_at = CASE WHEN EXCLUDED.last_action = 'edit' AND engine_orders.status = 'open' THEN NOW() ELSE engine_orders.placed_at END,
	updated_at = NOW()`

	insertTradeQuery = `INSERT INTO engine_trades (pair, trade_id, taker_id, maker_id, taker_uuid, maker_uuid, taker_direction, price, quantity)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (pair, trade_id) DO NOTHING`

	fillOrderQuery = `UPDATE engine_orders SET
	filled_quantity = GREATEST(filled_quantity, $3),
	status = CASE WHEN status IN ('filled', 'cancelled', 'rejected') THEN status WHEN $3 >= quantity THEN 'filled' ELSE status END,
	updated_at = NOW()
WHERE pair = $1 AND id = $2`

	insertRejectQuery = `INSERT INTO engine_rejects (pair, order_id, ouid, user_id, reason, action, payload)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	rejectOrderQuery = `UPDATE engine_orders SET status = 'rejected', updated_at = NOW() WHERE pair = $1 AND id = $2 AND status = 'open'`

	openOrdersQuery = `SELECT id, ouid, uuid, price, quantity, filled_quantity, match_constraint, order_type, direction
FROM engine_orders
WHERE pair = $1 AND status = 'open'
ORDER BY placed_at, id`
)

type repository struct {
	db     postgresql.PostgreSQLClient
	logger logger.Interface
}

var _ Repository = (*repository)(nil)

// NewRepository creates a new repository.
func NewRepository(db postgresql.PostgreSQLClient, logger logger.Interface) *repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// SaveOrder upserts an order row.
func (r *repository) SaveOrder(ctx context.Context, record OrderRecord) error {
	o := record.Order
	_, err := r.db.Exec(ctx, upsertOrderQuery,
		record.Pair,
		o.ID,
		o.OUID,
		o.UUID,
		record.UserID,
		o.Price,
		o.Quantity,
		o.FilledQuantity,
		string(o.MatchConstraint),
		string(o.OrderType),
		string(o.Direction),
		string(record.Status),
		record.Action,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, err, logger.NewField("pair", record.Pair), logger.NewField("ouid", o.OUID))
		return errors.TracerFromError(err)
	}

	r.logger.DebugContext(ctx, "journaled order",
		logger.NewField("ouid", o.OUID),
		logger.NewField("status", record.Status),
		logger.NewField("action", record.Action),
	)
	return nil
}

// SaveTrade inserts the trade and applies the fill to both orders.
func (r *repository) SaveTrade(ctx context.Context, trade orderbookv1.Trade) error {
	err := postgresql.WithTx(ctx, r.db, func(txCtx context.Context) error {
		if _, err := r.db.Exec(txCtx, insertTradeQuery,
			trade.Pair,
			trade.TradeID,
			trade.Taker.ID,
			trade.Maker.ID,
			trade.Taker.UUID,
			trade.Maker.UUID,
			string(trade.Taker.Direction),
			trade.Price,
			trade.Quantity,
		); err != nil {
			return err
		}

		for _, o := range []orderbookv1.Order{trade.Taker, trade.Maker} {
			if _, err := r.db.Exec(txCtx, fillOrderQuery, trade.Pair, o.ID, o.FilledQuantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.ErrorContext(ctx, err, logger.NewField("pair", trade.Pair), logger.NewField("tradeId", trade.TradeID))
		return errors.TracerFromError(err)
	}
	return nil
}

// SaveReject records the rejection. A rejected edit also closes the order it
// replaced, since that order has already left the book.
func (r *repository) SaveReject(ctx context.Context, record RejectRecord) error {
	payload, err := json.Marshal(record.Input)
	if err != nil {
		return errors.TracerFromError(err)
	}

	err = postgresql.WithTx(ctx, r.db, func(txCtx context.Context) error {
		if _, err := r.db.Exec(txCtx, insertRejectQuery,
			record.Pair,
			record.Input.ID,
			record.Input.OUID,
			record.UserID,
			string(record.Reason),
			record.Action,
			string(payload),
		); err != nil {
			return err
		}

		if record.Input.ID > 0 {
			if _, err := r.db.Exec(txCtx, rejectOrderQuery, record.Pair, record.Input.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.ErrorContext(ctx, err, logger.NewField("pair", record.Pair), logger.NewField("ouid", record.Input.OUID))
		return errors.TracerFromError(err)
	}
	return nil
}

// OpenOrders lists pair's open orders in priority order.
func (r *repository) OpenOrders(ctx context.Context, pair string) ([]orderbookv1.Order, error) {
	rows, err := r.db.Query(ctx, openOrdersQuery, pair)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	var orders []orderbookv1.Order
	for rows.Next() {
		var (
			o                                orderbookv1.Order
			constraint, orderType, direction string
		)
		if err := rows.Scan(
			&o.ID,
			&o.OUID,
			&o.UUID,
			&o.Price,
			&o.Quantity,
			&o.FilledQuantity,
			&constraint,
			&orderType,
			&direction,
		); err != nil {
			return nil, errors.TracerFromError(err)
		}
		o.MatchConstraint = orderbookv1.MatchConstraint(constraint)
		o.OrderType = orderbookv1.OrderType(orderType)
		o.Direction = orderbookv1.Direction(direction)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	r.logger.InfoContext(ctx, "loaded open orders", logger.NewField("pair", pair), logger.NewField("count", len(orders)))
	return orders, nil
}
