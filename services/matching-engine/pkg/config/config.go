package config

import (
	stderrors "errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/postgresql"
	"github.com/muhammadchandra19/exchange/pkg/redis"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and an optional .env file.
func Load[T any](cfg T) error {
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return err
	}

	return env.Parse(cfg)
}

// Frontend selects the per-pair wrapper around the order book.
type Frontend string

const (
	// FrontendOrchestrator adds auth, journaling and network fan-out.
	FrontendOrchestrator Frontend = "orchestrator"
	// FrontendGateway restores from snapshots and saves them on a timer.
	FrontendGateway Frontend = "gateway"
)

// Snapshot backends.
const (
	SnapshotBackendRedis  = "redis"
	SnapshotBackendPebble = "pebble"
)

// Network drivers.
const (
	NetworkDriverKafka = "kafka"
	NetworkDriverRedis = "redis"
	NetworkDriverNone  = "none"
)

// Config holds the configuration for the application
type Config struct {
	Pairs           []string `env:"PAIRS,required" envSeparator:","` // e.g. BTC-USD,ETH-USD
	PricePrecision  int32    `env:"PRICE_PRECISION" envDefault:"8"`
	AmountPrecision int32    `env:"AMOUNT_PRECISION" envDefault:"8"`
	Frontend        Frontend `env:"FRONTEND" envDefault:"orchestrator"`

	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"10s"`
	SnapshotBackend  string        `env:"SNAPSHOT_BACKEND" envDefault:"redis"`
	PebbleDir        string        `env:"PEBBLE_DIR" envDefault:"data/snapshots"`
	NetworkDriver    string        `env:"NETWORK_DRIVER" envDefault:"kafka"`

	AutoSnapshot   bool `env:"AUTO_SNAPSHOT" envDefault:"true"`
	NetworkEnabled bool `env:"NETWORK_ENABLED" envDefault:"true"`

	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCAddr string `env:"GRPC_ADDR" envDefault:":9090"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	KafkaConfig `envPrefix:"KAFKA_"` // Kafka configuration
	Redis       redis.Config         `envPrefix:"REDIS_"`
	Postgres    postgresql.Config    `envPrefix:"POSTGRES_"`
}

// KafkaConfig holds the configuration for Kafka consumer and producer.
type KafkaConfig struct {
	Brokers      []string `env:"BROKERS" envDefault:"localhost:9092" envSeparator:","`
	CommandTopic string   `env:"COMMAND_TOPIC" envDefault:"engine.commands"`
	EventTopic   string   `env:"EVENT_TOPIC" envDefault:"engine.events"`
	GroupID      string   `env:"GROUP_ID" envDefault:"matching-engine"`

	// WriteBatchTimeout bounds how long a synchronous publish waits for its batch to fill.
	WriteBatchTimeout time.Duration `env:"WRITE_BATCH_TIMEOUT" envDefault:"10ms"`
}

// Validate rejects combinations the binary cannot start with.
func (c *Config) Validate() error {
	if len(c.Pairs) == 0 {
		return errors.New(errors.GeneralBadRequestError, "at least one pair is required", "PAIRS")
	}
	seen := make(map[string]struct{}, len(c.Pairs))
	for _, pair := range c.Pairs {
		if pair == "" {
			return errors.New(errors.GeneralBadRequestError, "pair names cannot be empty", "PAIRS")
		}
		if _, dup := seen[pair]; dup {
			return errors.New(errors.GeneralBadRequestError, "duplicate pair "+pair, "PAIRS")
		}
		seen[pair] = struct{}{}
	}

	switch c.Frontend {
	case FrontendOrchestrator, FrontendGateway:
	default:
		return errors.New(errors.GeneralBadRequestError, "unknown frontend "+string(c.Frontend), "FRONTEND")
	}
	switch c.SnapshotBackend {
	case SnapshotBackendRedis, SnapshotBackendPebble:
	default:
		return errors.New(errors.GeneralBadRequestError, "unknown snapshot backend "+c.SnapshotBackend, "SNAPSHOT_BACKEND")
	}
	switch c.NetworkDriver {
	case NetworkDriverKafka, NetworkDriverRedis, NetworkDriverNone:
	default:
		return errors.New(errors.GeneralBadRequestError, "unknown network driver "+c.NetworkDriver, "NETWORK_DRIVER")
	}
	if c.SnapshotInterval <= 0 {
		return errors.New(errors.GeneralBadRequestError, "snapshot interval must be positive", "SNAPSHOT_INTERVAL")
	}
	if c.PricePrecision < 0 || c.AmountPrecision < 0 {
		return errors.New(errors.GeneralBadRequestError, "precision cannot be negative", "PRICE_PRECISION")
	}
	return nil
}
