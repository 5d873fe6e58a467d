package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/zvrva/flightlog/config"
	"github.com/zvrva/flightlog/internal/bootstrap"
	"github.com/zvrva/flightlog/internal/cache"
	"github.com/zvrva/flightlog/internal/kafka"
	"github.com/zvrva/flightlog/internal/repository"
	"github.com/zvrva/flightlog/internal/service/importer"
	"github.com/zvrva/flightlog/internal/service/stats"
	"github.com/zvrva/flightlog/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Import.FlightsCacheTTLSecs)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	importSvc := importer.NewService(flightRepo, redisCache, log,
		importer.WithProducer(producer, cfg.Kafka.ImportsTopic))
	statsSvc := stats.NewService(flightRepo, redisCache)

	log.Info("starting server", "address", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, importSvc, statsSvc); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
