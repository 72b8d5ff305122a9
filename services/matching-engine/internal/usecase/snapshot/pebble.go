package snapshot

import (
	"context"
	stderrors "errors"

	"github.com/cockroachdb/pebble"
	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
)

const pebbleKeyPrefix = "snapshot/"

// PebbleStore keeps snapshots in an embedded Pebble database, one key per pair.
type PebbleStore struct {
	db     *pebble.DB
	logger *logger.Logger
}

var _ snapshotv1.Store = (*PebbleStore)(nil)

// OpenPebbleStore opens (or creates) the database at path. opts may be nil.
func OpenPebbleStore(path string, opts *pebble.Options, log *logger.Logger) (*PebbleStore, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errors.NewTracer(string(errors.PebbleOpenError)).Wrap(err)
	}
	return &PebbleStore{db: db, logger: log}, nil
}

// Close flushes and closes the database.
func (s *PebbleStore) Close() error {
	return s.db.Close()
}

// Save writes the snapshot with a synced write.
func (s *PebbleStore) Save(ctx context.Context, pair string, snapshot *snapshotv1.Snapshot) error {
	buf, err := snapshot.Marshal()
	if err != nil {
		return errors.NewTracer("snapshot_marshal_error").Wrap(err)
	}

	if err := s.db.Set(pebbleKey(pair), buf, pebble.Sync); err != nil {
		s.logger.ErrorContext(ctx, err, logger.NewField("pair", pair), logger.NewField("action", "store snapshot"))
		return errors.NewTracer("snapshot_store_error").Wrap(err)
	}

	s.logger.DebugContext(ctx, "snapshot stored", logger.NewField("pair", pair), logger.NewField("bytes", len(buf)))
	return nil
}

// Load reads pair's snapshot. A missing key yields nil, nil.
func (s *PebbleStore) Load(ctx context.Context, pair string) (*snapshotv1.Snapshot, error) {
	val, closer, err := s.db.Get(pebbleKey(pair))
	if err != nil {
		if stderrors.Is(err, pebble.ErrNotFound) {
			s.logger.WarnContext(ctx, "no snapshot found", logger.NewField("pair", pair))
			return nil, nil
		}
		s.logger.ErrorContext(ctx, err, logger.NewField("pair", pair), logger.NewField("action", "load snapshot"))
		return nil, errors.NewTracer("snapshot_load_error").Wrap(err)
	}
	defer closer.Close()

	// val is only valid until closer is closed; Unmarshal copies what it keeps.
	return snapshotv1.Unmarshal(val)
}

func pebbleKey(pair string) []byte {
	return []byte(pebbleKeyPrefix + pair)
}
