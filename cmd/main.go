package main

import (
	"log/slog"
	"os"

	"github.com/acdih/fabric-config/config"
	"github.com/acdih/fabric-config/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	mgr := config.New()

	cfg, err := mgr.Settings()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("err", err))
		return 1
	}

	log := logger.New(cfg.LogLevel, cfg.LogFile, false)

	creds, err := mgr.Credentials()
	if err != nil {
		log.Error("failed to derive credentials", slog.Any("err", err))
		return 1
	}

	pool, err := mgr.RedisPool()
	if err != nil {
		log.Error("failed to derive redis pool config", slog.Any("err", err))
		return 1
	}

	log.Info("configuration loaded",
		slog.String("project_id", creds.ProjectID),
		slog.String("client_email", creds.ClientEmail),
		slog.String("firestore_url", cfg.FirestoreDatabaseURL),
		slog.Float64("causal_confidence_threshold", cfg.CausalConfidenceThreshold),
		slog.Float64("correlation_threshold", cfg.CorrelationThreshold),
		slog.Int("max_workers", cfg.MaxWorkers))

	log.Info("redis pool derived",
		slog.String("url", pool.URL),
		slog.Int("max_connections", pool.MaxConnections))

	return 0
}
