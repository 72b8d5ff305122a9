package authv1

import "context"

// Session identifies the caller of a mutating operation.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// Adapter decides who may act on the book and what they may listen to.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=authv1_mock
type Adapter interface {
	ValidateSession(ctx context.Context, session Session) bool
	// ValidateSubscription is called only for sessions ValidateSession accepted.
	ValidateSubscription(ctx context.Context, session Session, topic string) bool
	// RateLimit returns an error to abort action before the book is touched.
	RateLimit(ctx context.Context, session Session, action string) error
}

// Nop accepts every session and subscription and never limits.
type Nop struct{}

var _ Adapter = Nop{}

// ValidateSession implements Adapter.
func (Nop) ValidateSession(context.Context, Session) bool { return true }

// ValidateSubscription implements Adapter.
func (Nop) ValidateSubscription(context.Context, Session, string) bool { return true }

// RateLimit implements Adapter.
func (Nop) RateLimit(context.Context, Session, string) error { return nil }
