package redis

import (
	"time"

	"github.com/muhammadchandra19/exchange/pkg/errors"
)

// Mode represents the mode of the Redis client.
type Mode string

const (
	// Standalone Mode is for a single Redis instance.
	Standalone Mode = "standalone"
	// Cluster Mode is for a Redis cluster setup.
	Cluster Mode = "cluster"
)

// Config holds the configuration for the Redis client.
type Config struct {
	Mode     Mode   `env:"MODE" envDefault:"standalone"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`

	Addrs []string `env:"ADDRS" envDefault:"localhost:6379"`

	ConnectTimeout      time.Duration `env:"CONNECT_TIMEOUT" envDefault:"5s"`
	MaxRetries          int           `env:"MAX_RETRIES" envDefault:"3"`
	MinRetryBackoff     time.Duration `env:"MIN_RETRY_BACKOFF" envDefault:"100ms"`
	MaxRetryBackoff     time.Duration `env:"MAX_RETRY_BACKOFF" envDefault:"2s"`
	PoolSize            int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns        int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	MaxIdleConns        int           `env:"MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime     time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
	ConnMaxIdleTime     time.Duration `env:"CONN_MAX_IDLE_TIME" envDefault:"10m"`
	PoolTimeout         time.Duration `env:"POOL_TIMEOUT" envDefault:"4s"`
	PrefixKey           string        `env:"PREFIX_KEY" envDefault:"exchange:"`
	ReconnectMaxRetries int           `env:"RECONNECT_MAX_RETRIES" envDefault:"3"`
}

// DefaultConfig returns a default configuration for the Redis client.
func DefaultConfig() *Config {
	return &Config{
		Mode:                Standalone,
		Addrs:               []string{"localhost:6379"},
		ConnectTimeout:      5 * time.Second,
		MaxRetries:          3,
		MinRetryBackoff:     100 * time.Millisecond,
		MaxRetryBackoff:     2 * time.Second,
		PoolSize:            10,
		MinIdleConns:        2,
		MaxIdleConns:        10,
		ConnMaxLifetime:     30 * time.Minute,
		ConnMaxIdleTime:     10 * time.Minute,
		PoolTimeout:         4 * time.Second,
		PrefixKey:           "exchange:",
		ReconnectMaxRetries: 3,
	}
}

// Key prefixes k with the configured PrefixKey.
func (c *Config) Key(k string) string {
	return c.PrefixKey + k
}

// Validate checks the settings Connect depends on.
func (c *Config) Validate() error {
	invalid := func(msg string) error {
		return errors.NewErrorDetails(msg, string(errors.RedisConfigError), "connect")
	}

	switch {
	case len(c.Addrs) == 0:
		return invalid("Redis addresses are empty")
	case c.Mode != Standalone && c.Mode != Cluster:
		return invalid("Invalid Redis mode")
	case c.ConnectTimeout <= 0:
		return invalid("Invalid Redis connect timeout")
	case c.PoolSize <= 0:
		return invalid("Invalid Redis pool size")
	case c.MaxIdleConns < 0:
		return invalid("Invalid Redis max idle connections")
	case c.ConnMaxLifetime <= 0:
		return invalid("Invalid Redis connection max lifetime")
	case c.ConnMaxIdleTime <= 0:
		return invalid("Invalid Redis connection max idle time")
	case c.PoolTimeout <= 0:
		return invalid("Invalid Redis pool timeout")
	case c.MaxRetries < 0, c.MinRetryBackoff < 0, c.MaxRetryBackoff < 0:
		return invalid("Invalid Redis retry settings")
	}
	return nil
}
