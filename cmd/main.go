package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "growroom/docs"
	"growroom/internal/config"
	"growroom/internal/device"
	"growroom/internal/handlers"
	"growroom/internal/logger"
	"growroom/internal/repository"
	"growroom/internal/repository/db"
	"growroom/internal/repository/mongodb"
	"growroom/internal/scheduler"
	"growroom/internal/server"
	"growroom/internal/service"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title        growroom API
// @version      1.0
// @description  BioBizz feeding schedule, dosage calculator and grow monitoring.
// @BasePath     /
func main() {
	configPath := flag.String("config", "", "path to config file (default configs/config.yml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error reading config:", err)
		os.Exit(1)
	}

	log := logger.Get(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = log.Sync() }()

	repos, closeStore, err := openStorage(cfg.Storage, log)
	if err != nil {
		log.Fatalw("failed to open storage", "driver", cfg.Storage.Driver, "err", err)
	}
	defer closeStore()

	services := service.NewService(repos, service.Options{
		DefaultSubstrate: cfg.Dosing.DefaultSubstrate,
		MaxLiters:        cfg.Dosing.MaxLiters,
		Device:           newDevice(cfg.Device, log),
		Log:              log.Component("telemetry"),
	})
	apiHandler := handlers.NewHandler(services, log.Component("http"))

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Telemetry.Run(ctx, cfg.Device.PollInterval)

	sched := scheduler.New(cfg.Scheduler, services.Advisor, services.Inventory, services.EventLog, log.Component("scheduler"))
	if err := sched.Start(); err != nil {
		log.Fatalw("failed to start scheduler", "err", err)
	}

	srv := server.New(cfg.Server.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	waitForShutdown(cancel, srv, sched, log)
}

// openStorage builds the repositories for the configured driver and returns
// a func that releases the underlying connection.
func openStorage(cfg config.StorageConfig, log *logger.Logger) (*repository.Repository, func(), error) {
	switch cfg.Driver {
	case config.DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		store, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("storage_ready", "driver", cfg.Driver, "db", cfg.MongoDB)
		return store.Repository(), func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := store.Close(ctx); err != nil {
				log.Errorw("failed to close mongodb", "err", err)
			}
		}, nil
	default:
		sqlDB, err := db.InitDB(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("storage_ready", "driver", cfg.Driver, "path", cfg.SQLitePath)
		return repository.NewRepository(sqlDB), func() {
			if err := sqlDB.Close(); err != nil {
				log.Errorw("failed to close sqlite", "err", err)
			}
		}, nil
	}
}

// newDevice returns nil when no controller is configured so telemetry polling stays off.
func newDevice(cfg config.DeviceConfig, log *logger.Logger) device.Client {
	if cfg.BaseURL == "" {
		log.Infow("device_polling_disabled")
		return nil
	}
	log.Infow("device_polling_enabled", "base_url", cfg.BaseURL, "interval", cfg.PollInterval)
	return device.NewClient(cfg.BaseURL, cfg.Timeout)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http_listen", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, sched *scheduler.Scheduler, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()
	sched.Stop()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
