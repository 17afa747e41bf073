package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/DehBarca/ordernotify/internal/analytics"
	"github.com/DehBarca/ordernotify/internal/config"
	"github.com/DehBarca/ordernotify/internal/dispatch"
	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/export"
	"github.com/DehBarca/ordernotify/internal/history"
	httpserver "github.com/DehBarca/ordernotify/internal/interfaces/http"
	"github.com/DehBarca/ordernotify/internal/notifier"
	"github.com/DehBarca/ordernotify/internal/validation"
	"github.com/DehBarca/ordernotify/pkg/database"
	"github.com/DehBarca/ordernotify/pkg/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting order dispatch service",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		logger.Fatal("Failed to create data directory", zap.Error(err))
	}

	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, logger)
	if err := migrator.RunMigrations(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Handler registry with the built-in channels. Each handler is
	// wrapped per the notify config: retry always, send logging when
	// enabled.
	registry := notifier.NewRegistry(logger)
	registerBuiltin := func(kind channel.Kind, handler notifier.Handler) {
		wrapped := notifier.Handler(notifier.NewRetrying(handler, cfg.Notify.MaxAttempts, logger))
		if cfg.Notify.LogSends {
			wrapped = notifier.NewLogging(wrapped, logger)
		}
		registry.Register(kind, wrapped)
	}
	registerBuiltin(channel.KindEmail, notifier.NewEmail(notifier.NewConsoleTransport("email", logger)))
	registerBuiltin(channel.KindSMS, notifier.NewSMS(notifier.NewConsoleTransport("sms", logger)))
	registerBuiltin(channel.KindPush, notifier.NewPush(notifier.NewConsoleTransport("push", logger)))

	// "all" fans out to every built-in channel the customer has an
	// address for; members that fail are recorded as failed parts.
	group := notifier.NewComposite(channel.Kind("all"))
	group.Add(notifier.NewEmail(notifier.NewConsoleTransport("email", logger)))
	group.Add(notifier.NewSMS(notifier.NewConsoleTransport("sms", logger)))
	group.Add(notifier.NewPush(notifier.NewConsoleTransport("push", logger)))
	registry.Register(channel.Kind("all"), group)

	kvLogger := utils.NewKVLogger(logger)
	historyLog := history.NewLog()

	engine := dispatch.NewEngine(
		validation.DefaultChain(),
		registry,
		historyLog,
		dispatch.WithLogger(kvLogger),
		dispatch.WithConfig(dispatch.Config{
			MaxAttempts: cfg.Notify.MaxAttempts,
			LogSends:    cfg.Notify.LogSends,
		}),
	)

	engine.AddListener(dispatch.NewAuditTrail())
	engine.AddListener(history.NewArchive(db.DB, logger))

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()

		engine.AddListener(analytics.NewRedisCounter(redisClient, cfg.Redis.Prefix, logger))
		logger.Info("Redis analytics enabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		engine.AddListener(analytics.NewCounter())
	}

	server := httpserver.NewServer(httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, engine, export.NewExcelWriter(logger), kvLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Order dispatch service stopped")
}
