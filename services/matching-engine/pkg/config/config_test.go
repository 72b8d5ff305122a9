package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PAIRS", "BTC-USD,ETH-USD")
	t.Setenv("REDIS_ADDRS", "redis-1:6379")
	t.Setenv("POSTGRES_HOST", "db")

	cfg := &Config{}
	require.NoError(t, Load(cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"BTC-USD", "ETH-USD"}, cfg.Pairs)
	assert.Equal(t, int32(8), cfg.PricePrecision)
	assert.Equal(t, FrontendOrchestrator, cfg.Frontend)
	assert.Equal(t, 10*time.Second, cfg.SnapshotInterval)
	assert.Equal(t, SnapshotBackendRedis, cfg.SnapshotBackend)
	assert.True(t, cfg.AutoSnapshot)
	assert.True(t, cfg.NetworkEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Brokers)
	assert.Equal(t, "engine.commands", cfg.CommandTopic)
	assert.Equal(t, 10*time.Millisecond, cfg.WriteBatchTimeout)
	assert.Equal(t, []string{"redis-1:6379"}, cfg.Redis.Addrs)
	assert.Equal(t, "exchange:", cfg.Redis.PrefixKey)
	assert.Equal(t, "db", cfg.Postgres.Host)
	assert.True(t, cfg.Postgres.Enabled())
}

func TestLoad_RequiresPairs(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, Load(cfg))
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Pairs:            []string{"BTC-USD"},
			Frontend:         FrontendGateway,
			SnapshotInterval: time.Second,
			SnapshotBackend:  SnapshotBackendPebble,
			NetworkDriver:    NetworkDriverNone,
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "duplicate pair", mutate: func(c *Config) { c.Pairs = []string{"BTC-USD", "BTC-USD"} }, wantErr: true},
		{name: "empty pair", mutate: func(c *Config) { c.Pairs = []string{""} }, wantErr: true},
		{name: "unknown frontend", mutate: func(c *Config) { c.Frontend = "rest" }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.SnapshotBackend = "s3" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.NetworkDriver = "nats" }, wantErr: true},
		{name: "zero interval", mutate: func(c *Config) { c.SnapshotInterval = 0 }, wantErr: true},
		{name: "negative precision", mutate: func(c *Config) { c.AmountPrecision = -1 }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
