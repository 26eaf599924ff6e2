// SIT collector — observes the upstream train simulation, reconciles the
// world state into PostgreSQL and fans realtime update frames out over gRPC
// and NATS.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/simtrack/sit-collector/pkg/api"
	"github.com/simtrack/sit-collector/pkg/cleanup"
	"github.com/simtrack/sit-collector/pkg/collector"
	"github.com/simtrack/sit-collector/pkg/config"
	"github.com/simtrack/sit-collector/pkg/database"
	"github.com/simtrack/sit-collector/pkg/dispatch"
	"github.com/simtrack/sit-collector/pkg/journey"
	"github.com/simtrack/sit-collector/pkg/services"
	"github.com/simtrack/sit-collector/pkg/static"
	"github.com/simtrack/sit-collector/pkg/upstream"
	"github.com/simtrack/sit-collector/pkg/version"
	sitv1 "github.com/simtrack/sit-collector/proto"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	slog.Info("Starting SIT collector", "version", version.Full(), "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Reference data bundles
	bundle, err := static.Load(cfg.Static.Dir)
	if err != nil {
		slog.Error("Failed to load reference bundles", "dir", cfg.Static.Dir, "error", err)
		os.Exit(1)
	}
	slog.Info("Reference bundles loaded", "points", bundle.Points.Len())

	// 4. Snapshot caches, optionally replicated through Redis
	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Error("Invalid redis URL", "error", err)
			os.Exit(1)
		}
		rdb = redis.NewClient(opts)
		defer rdb.Close()
	}
	serverCache := collector.NewServerCache(rdb, cfg.Redis.TTL)
	defer serverCache.Close()
	postCache := collector.NewPostCache(rdb, cfg.Redis.TTL)
	defer postCache.Close()
	digestCache := journey.NewDigestCache(rdb, cfg.Redis.TTL)
	defer digestCache.Close()
	if rdb != nil {
		for name, pull := range map[string]func(context.Context) error{
			"server":         serverCache.Pull,
			"dispatch-post":  postCache.Pull,
			"journey-digest": digestCache.Pull,
		} {
			if err := pull(ctx); err != nil {
				slog.Warn("Cache warm-up failed, starting cold", "cache", name, "error", err)
			}
		}
	}

	// 5. Services
	serverService := services.NewServerService(dbClient.Client)
	postService := services.NewDispatchPostService(dbClient.Client)
	journeyService := services.NewJourneyService(dbClient.Client)
	vehicleService := services.NewVehicleService(dbClient.Client)

	// 6. Fan-out: broker (optional) behind the hub
	var publisher *dispatch.Publisher
	var sink dispatch.Sink
	if cfg.Broker.URL != "" {
		publisher, err = dispatch.Connect(cfg.Broker.URL, nil)
		if err != nil {
			slog.Error("Failed to connect to broker", "url", cfg.Broker.URL, "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		sink = publisher
	}
	hub := dispatch.NewHub(sink, nil)

	// 7. Journey reconciler
	reconciler := journey.NewReconciler(journeyService, bundle.Signals, digestCache, hub, cfg.Collector.GoneThreshold, nil)

	// 8. Collectors
	client := upstream.NewClient(cfg.Upstream)
	clock := collector.NewServerClock()
	serverCollector := collector.NewServerCollector(client, serverService, serverCache, hub, nil)
	postCollector := collector.NewPostCollector(client, postService, serverService, bundle.Points, postCache, hub, nil)
	trainCollector := collector.NewTrainCollector(client, reconciler, serverService, bundle.Points, clock, nil)
	vehicleCollector := collector.NewVehicleCollector(trainCollector, reconciler, vehicleService, serverService, bundle.Railcars, nil)
	timetableCollector := collector.NewTimetableCollector(client, reconciler, vehicleService, serverService, bundle.Points, clock, nil)

	manager := collector.NewManager(collector.Periods{
		Servers:   cfg.Collector.ServerPeriod,
		Posts:     cfg.Collector.PostPeriod,
		Trains:    cfg.Collector.TrainPeriod,
		Vehicles:  cfg.Collector.VehiclePeriod,
		Timetable: cfg.Collector.TimetablePeriod,
	}, serverCollector, postCollector, trainCollector, vehicleCollector, timetableCollector, nil)
	manager.Start()
	defer manager.Stop()
	slog.Info("Collectors started")

	// 9. Retention schedule
	retention := cleanup.NewService(journeyService, cleanup.Options{
		RetentionDays: cfg.Retention.Days,
		BatchSize:     cfg.Retention.BatchSize,
		Schedule:      cfg.Retention.Schedule,
	}, nil)
	if err := retention.Start(); err != nil {
		slog.Error("Failed to start retention schedule", "error", err)
		os.Exit(1)
	}
	defer retention.Stop()

	// 10. gRPC update stream
	grpcServer := grpc.NewServer()
	sitv1.RegisterUpdateStreamServer(grpcServer, dispatch.NewStreamServer(hub))
	grpcListener, err := net.Listen("tcp", cfg.Listen.GRPC)
	if err != nil {
		slog.Error("Failed to listen for gRPC", "addr", cfg.Listen.GRPC, "error", err)
		os.Exit(1)
	}
	errCh := make(chan error, 2)
	go func() {
		slog.Info("gRPC update stream listening", "addr", cfg.Listen.GRPC)
		if err := grpcServer.Serve(grpcListener); err != nil {
			errCh <- err
		}
	}()

	// 11. HTTP API
	var brokerStats api.Stats
	if publisher != nil {
		brokerStats = publisher
	}
	httpServer := &http.Server{
		Addr:    cfg.Listen.HTTP,
		Handler: api.NewServer(dbClient, serverService, postService, journeyService, hub, brokerStats).Router(),
	}
	go func() {
		slog.Info("HTTP API listening", "addr", cfg.Listen.HTTP)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 12. Wait for shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop producing before tearing down transports.
	manager.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	slog.Info("Shutdown complete")
}
