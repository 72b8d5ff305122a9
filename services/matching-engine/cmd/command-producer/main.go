package main

import (
	"context"
	"encoding/json"
	"flag"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	authv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1"
	orderreaderv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/order-reader/v1"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type generator struct {
	rnd         *rand.Rand
	pairs       []string
	users       []authv1.Session
	basePrice   decimal.Decimal
	priceSpread float64

	resting map[string][]string // pair -> ouids that may still rest
}

func newGenerator(seed int64, pairs []string, users int, basePrice, priceSpread float64) *generator {
	g := &generator{
		rnd:         rand.New(rand.NewSource(seed)),
		pairs:       pairs,
		basePrice:   decimal.NewFromFloat(basePrice),
		priceSpread: priceSpread,
		resting:     map[string][]string{},
	}
	for i := 0; i < users; i++ {
		id := uuid.NewString()
		g.users = append(g.users, authv1.Session{Token: "token-" + id, UserID: id})
	}
	return g
}

// next returns a submit most of the time and a cancel or edit of an earlier
// order otherwise.
func (g *generator) next() orderreaderv1.Command {
	pair := g.pairs[g.rnd.Intn(len(g.pairs))]
	session := g.users[g.rnd.Intn(len(g.users))]

	if ouids := g.resting[pair]; len(ouids) > 0 && g.rnd.Float64() < 0.15 {
		i := g.rnd.Intn(len(ouids))
		ouid := ouids[i]
		g.resting[pair] = append(ouids[:i], ouids[i+1:]...)

		if g.rnd.Float64() < 0.5 {
			return orderreaderv1.Command{Pair: pair, Action: orderreaderv1.ActionCancel, Session: session, OUID: ouid}
		}
		price := g.price(g.rnd.Float64() < 0.5)
		g.resting[pair] = append(g.resting[pair], ouid)
		return orderreaderv1.Command{
			Pair:    pair,
			Action:  orderreaderv1.ActionEdit,
			Session: session,
			OUID:    ouid,
			Updates: &orderreaderv1.UpdatesPayload{Price: &price},
		}
	}

	bid := g.rnd.Float64() < 0.5
	direction := orderbookv1.DirectionAsk
	if bid {
		direction = orderbookv1.DirectionBid
	}

	payload := &orderreaderv1.OrderPayload{
		OUID:            uuid.NewString(),
		UUID:            session.UserID,
		Quantity:        decimal.NewFromFloat(0.01 + g.rnd.Float64()*9.99).Round(3).String(),
		MatchConstraint: orderbookv1.MatchConstraintGTC,
		OrderType:       orderbookv1.OrderTypeLimit,
		Direction:       direction,
	}
	if g.rnd.Float64() < 0.3 {
		payload.MatchConstraint = orderbookv1.MatchConstraintIOC
		payload.OrderType = orderbookv1.OrderTypeMarket
	} else {
		payload.Price = g.price(bid)
		g.resting[pair] = append(g.resting[pair], payload.OUID)
	}

	return orderreaderv1.Command{Pair: pair, Action: orderreaderv1.ActionSubmit, Session: session, Order: payload}
}

// price is below the base for bids and above it for asks.
func (g *generator) price(bid bool) string {
	offset := decimal.NewFromFloat(g.rnd.Float64() * g.priceSpread * 0.8)
	if bid {
		offset = offset.Neg()
	}
	p := g.basePrice.Add(offset).Round(1)
	if !p.IsPositive() {
		p = g.basePrice
	}
	return p.String()
}

func main() {
	var (
		brokers     = flag.String("brokers", "localhost:9092", "Kafka broker addresses (comma-separated)")
		topic       = flag.String("topic", "engine.commands", "Kafka command topic")
		pairs       = flag.String("pairs", "BTC-USD", "Pairs to generate commands for (comma-separated)")
		delay       = flag.Duration("delay", 100*time.Millisecond, "Delay between commands")
		count       = flag.Int("count", 1000, "Number of commands to send")
		users       = flag.Int("users", 10, "Number of distinct sessions")
		basePrice   = flag.Float64("base-price", 3945.5, "Base price for orders")
		priceSpread = flag.Float64("price-spread", 200.0, "Price spread range")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	)
	flag.Parse()

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:        *topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	defer writer.Close()

	ctx := context.Background()
	gen := newGenerator(*seed, strings.Split(*pairs, ","), *users, *basePrice, *priceSpread)
	actions := map[orderreaderv1.Action]int{}

	log.Info("sending commands",
		logger.NewField("brokers", *brokers),
		logger.NewField("topic", *topic),
		logger.NewField("count", *count),
	)

	for i := 0; i < *count; i++ {
		cmd := gen.next()
		value, err := json.Marshal(cmd)
		if err != nil {
			log.Error(err, logger.NewField("index", i))
			continue
		}

		// Keyed by pair so one pair's commands stay on one partition, in order.
		msg := kafka.Message{Key: []byte(cmd.Pair), Value: value, Time: time.Now()}
		if err := writer.WriteMessages(ctx, msg); err != nil {
			log.Error(err, logger.NewField("index", i), logger.NewField("action", cmd.Action))
			continue
		}
		actions[cmd.Action]++

		if (i+1)%100 == 0 || i == *count-1 {
			log.Info("progress", logger.NewField("sent", i+1), logger.NewField("total", *count))
		}
		if i < *count-1 {
			time.Sleep(*delay)
		}
	}

	log.Info("done",
		logger.NewField("submit", actions[orderreaderv1.ActionSubmit]),
		logger.NewField("cancel", actions[orderreaderv1.ActionCancel]),
		logger.NewField("edit", actions[orderreaderv1.ActionEdit]),
	)
}
