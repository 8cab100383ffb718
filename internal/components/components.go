package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"liveCrime/internal/api"
	"liveCrime/internal/config"
	"liveCrime/internal/metrics"
	"liveCrime/internal/redis"
	"liveCrime/internal/service"
	"liveCrime/internal/storage/postgres"
	"liveCrime/internal/storage/s3"
	"liveCrime/internal/workers"
	"liveCrime/pkg/logger"
)

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	AlertSender *service.AlertSender
	EvidenceGC  *workers.EvidenceGC
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	logger.Info("Initializing blob store")
	blobs, err := s3.NewBlobStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init blob store: %w", err)
	}

	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:queue")
	ticketCache := redis.NewTicketCache(redisClient)

	ticketSvc := service.NewTicketService(storage.Tickets(), storage.Evidences(), ticketCache, alertQueue, logger)
	evidenceSvc := service.NewEvidenceService(blobs, storage.Evidences(), cfg.Http.PublicBaseURL, logger)
	statsSvc := service.NewStatsService(storage.Stats())

	srv := service.NewService(ticketSvc, evidenceSvc, statsSvc)

	m := metrics.New()

	httpServer := api.NewServer(cfg, logger, srv, m)
	logger.Info("Initialized server")

	alertSender := service.NewAlertSender(logger, cfg.Alert, alertQueue)
	evidenceGC := workers.NewEvidenceGC(logger, storage.Evidence, blobs, cfg.GC.Interval, cfg.GC.OrphanAge)

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		AlertSender: alertSender,
		EvidenceGC:  evidenceGC,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
