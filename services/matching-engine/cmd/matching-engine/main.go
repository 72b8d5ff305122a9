package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhammadchandra19/exchange/pkg/grpclib/health"
	"github.com/muhammadchandra19/exchange/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	migrationpg "github.com/muhammadchandra19/exchange/pkg/migration-pg"
	"github.com/muhammadchandra19/exchange/pkg/postgresql"
	"github.com/muhammadchandra19/exchange/pkg/redis"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/app/engine"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/app/gateway"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/app/ops"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/app/orchestrator"
	networkv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/network/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/infrastructure/postgresql/journal"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/infrastructure/postgresql/migrations"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/usecase/auth"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/usecase/network"
	orderreader "github.com/muhammadchandra19/exchange/services/matching-engine/internal/usecase/order-reader"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/usecase/persistence"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/usecase/snapshot"
	"github.com/muhammadchandra19/exchange/services/matching-engine/pkg/config"
	"google.golang.org/grpc"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	config.MustLoad(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	l, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.LogLevel)))
	if err != nil {
		panic(err)
	}
	log = l.WithFields(logger.NewField("service", "matching-engine"))
}

// closer runs on shutdown in reverse registration order.
type closer func(ctx context.Context) error

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var closers []closer
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](shutdownCtx); err != nil {
				log.Error(err, logger.NewField("action", "shutdown"))
			}
		}
		_ = log.Sync()
	}()

	checks := map[string]healthcheck.Checker{}

	rclient := redis.NewClient(log, &cfg.Redis)
	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.NewField("action", "connect_redis"))
		return
	}
	closers = append(closers, rclient.Disconnect)
	checks["redis"] = rclient.Ping

	var repo journal.Repository
	if cfg.Postgres.Enabled() {
		pg, err := postgresql.NewClient(ctx, cfg.Postgres)
		if err != nil {
			log.Error(err, logger.NewField("action", "connect_postgres"))
			return
		}
		closers = append(closers, func(context.Context) error { pg.Close(); return nil })
		checks["postgres"] = pg.Ping

		runner := migrationpg.NewRunner(pg, migrationpg.Config{FS: migrations.FS}, log)
		if err := runner.MigrateUp(ctx, 0); err != nil {
			log.Error(err, logger.NewField("action", "migrate_postgres"))
			return
		}
		repo = journal.NewRepository(pg, log)
	} else {
		log.Warn("POSTGRES_HOST not set, journal disabled")
	}

	snapshots, err := newSnapshotStore(rclient)
	if err != nil {
		log.Error(err, logger.NewField("action", "open_snapshot_store"))
		return
	}
	if c, ok := snapshots.(interface{ Close() error }); ok {
		closers = append(closers, func(context.Context) error { return c.Close() })
	}
	store := persistence.NewStore(snapshots, repo, log)

	healthServer := health.NewServer()
	netAdapter, closeNet := newNetworkAdapter(rclient, healthServer)
	closers = append(closers, closeNet)

	validator := auth.NewRedisValidator(rclient, &cfg.Redis, nil, log)

	markets := make([]engine.Market, 0, len(cfg.Pairs))
	for _, pair := range cfg.Pairs {
		switch cfg.Frontend {
		case config.FrontendGateway:
			g := gateway.New(pair, store, netAdapter, log, &gateway.Options{SnapshotInterval: cfg.SnapshotInterval})
			if cfg.NetworkEnabled {
				g.AttachNetworkObservers()
			}
			markets = append(markets, engine.NewGatewayMarket(g))
		default:
			o := orchestrator.New(pair, orchestrator.Dependencies{
				Persistence: store,
				Network:     netAdapter,
				Auth:        validator,
			}, &orchestrator.FeatureFlags{
				AutoSnapshot:   cfg.AutoSnapshot,
				NetworkEnabled: cfg.NetworkEnabled,
			}, log)
			markets = append(markets, engine.NewOrchestratorMarket(o))
		}
	}

	reader := orderreader.NewReader(cfg.KafkaConfig, log)
	eng := engine.NewEngine(markets, reader, log, &engine.Options{
		ReadBackoff:     engine.DefaultEngineOptions().ReadBackoff,
		PricePrecision:  cfg.PricePrecision,
		AmountPrecision: cfg.AmountPrecision,
	})
	if err := eng.Start(ctx); err != nil {
		log.Error(err, logger.NewField("action", "start_engine"))
		return
	}
	closers = append(closers, eng.Stop)

	grpcServer := grpc.NewServer()
	healthServer.Register(grpcServer)
	lis, err := (&net.ListenConfig{}).Listen(ctx, "tcp", cfg.GRPCAddr)
	if err != nil {
		log.Error(err, logger.NewField("action", "listen_grpc"))
		return
	}
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Error(err, logger.NewField("action", "serve_grpc"))
		}
	}()
	closers = append(closers, func(context.Context) error {
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		return nil
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           ops.NewRouter(eng, checks, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err, logger.NewField("action", "serve_http"))
		}
	}()
	closers = append(closers, httpServer.Shutdown)

	log.Info("matching engine started",
		logger.NewField("pairs", cfg.Pairs),
		logger.NewField("frontend", cfg.Frontend),
		logger.NewField("http", cfg.HTTPAddr),
		logger.NewField("grpc", cfg.GRPCAddr),
	)

	sig := <-sigChan
	log.Info("received shutdown signal", logger.NewField("signal", sig.String()))
	cancel()
}

func newSnapshotStore(rclient redis.Client) (snapshotv1.Store, error) {
	if cfg.SnapshotBackend == config.SnapshotBackendPebble {
		return snapshot.OpenPebbleStore(cfg.PebbleDir, nil, log)
	}
	return snapshot.NewRedisStore(rclient, &cfg.Redis, log), nil
}

type networkAdapter interface {
	networkv1.Adapter
	networkv1.Publisher
}

func newNetworkAdapter(rclient redis.Client, hs *health.Server) (networkAdapter, closer) {
	noop := func(context.Context) error { return nil }

	switch cfg.NetworkDriver {
	case config.NetworkDriverKafka:
		a := network.NewKafkaAdapter(cfg.KafkaConfig, hs, log)
		return a, func(context.Context) error { return a.Close() }
	case config.NetworkDriverRedis:
		return network.NewRedisAdapter(rclient, &cfg.Redis, hs, log), noop
	default:
		return networkv1.Nop{}, noop
	}
}
