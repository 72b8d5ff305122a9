package snapshotv1

import "context"

// Store defines the interface for storing and loading snapshots of the order book.
// Load returns nil without error when no snapshot exists for pair.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=snapshotv1_mock
type Store interface {
	Save(ctx context.Context, pair string, snapshot *Snapshot) error
	Load(ctx context.Context, pair string) (*Snapshot, error)
}
