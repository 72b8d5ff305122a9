package util

import (
	"context"
)

type key string

const (
	requestIDKey = key("x-request-id")
	pairKey      = key("pair")
	actorIDKey   = key("actor-id")
)

// WithPair returns a context tagged with the trading pair being processed.
func WithPair(ctx context.Context, pair string) context.Context {
	return context.WithValue(ctx, pairKey, pair)
}

// GetPair returns the trading pair from context, or "".
func GetPair(ctx context.Context) string {
	pair, _ := ctx.Value(pairKey).(string)
	return pair
}

// WithActorID returns a context carrying the user the call acts for.
func WithActorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, actorIDKey, id)
}

// GetActorID returns the acting user id from context, or "".
func GetActorID(ctx context.Context) string {
	id, _ := ctx.Value(actorIDKey).(string)
	return id
}
