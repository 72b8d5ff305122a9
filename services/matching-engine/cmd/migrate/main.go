package main

import (
	"context"
	"flag"

	"github.com/muhammadchandra19/exchange/pkg/logger"
	migrationpg "github.com/muhammadchandra19/exchange/pkg/migration-pg"
	"github.com/muhammadchandra19/exchange/pkg/postgresql"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/infrastructure/postgresql/migrations"
	"github.com/muhammadchandra19/exchange/services/matching-engine/pkg/config"
)

type migrateConfig struct {
	Postgres postgresql.Config `envPrefix:"POSTGRES_"`
}

func main() {
	var (
		direction = flag.String("direction", "up", "Migration direction: up or down")
		steps     = flag.Int("steps", 0, "Number of steps to migrate (0 = all, up only)")
	)
	flag.Parse()

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	cfg := &migrateConfig{}
	if err := config.Load(cfg); err != nil {
		log.GetZap().Fatal("failed to load config: " + err.Error())
	}
	if !cfg.Postgres.Enabled() {
		log.GetZap().Fatal("POSTGRES_HOST is required")
	}

	client, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.GetZap().Fatal("failed to connect to postgres: " + err.Error())
	}
	defer client.Close()

	runner := migrationpg.NewRunner(client, migrationpg.Config{FS: migrations.FS}, log)

	switch *direction {
	case "up":
		err = runner.MigrateUp(ctx, *steps)
	case "down":
		err = runner.MigrateDown(ctx, *steps)
	default:
		log.GetZap().Fatal("invalid direction: " + *direction + ", use 'up' or 'down'")
	}
	if err != nil {
		log.Error(err, logger.NewField("direction", *direction))
		return
	}

	log.Info("migration completed", logger.NewField("direction", *direction))
}
