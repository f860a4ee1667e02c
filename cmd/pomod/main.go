package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pomo-lab/contract"
	api "pomo-lab/infrastructure/http"
	"pomo-lab/infrastructure/grpc/server"
	"pomo-lab/internal"
	"pomo-lab/observability"
	"pomo-lab/presence"
	"pomo-lab/projection"
	"pomo-lab/repositories"
	"pomo-lab/runtime"
	"pomo-lab/runtime/workers"
	"pomo-lab/sink"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal or a server failure.
// Deferred cleanups run before main exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	defaults, _ := config.SessionDefaults()
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Stats storage
	var (
		stats contract.StatsStore
		db    *badger.DB
	)
	switch config.StatsBackend {
	case internal.BackendSQLite:
		repo, err := repositories.OpenSQLiteStats(ctx, config.SQLiteFilepath, log)
		if err != nil {
			return fmt.Errorf("sqlite opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing SQLite...")
			_ = repo.Close()
		}()
		stats = repo
	default:
		var err error
		db, err = badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		stats = repositories.NewStatsRepository(db, log)
	}

	// 3. Supervision & Orchestration
	supervisor := workers.NewSupervisor(log, config.RestartInterval)
	registry := runtime.NewRegistry()
	tracker := presence.NewTracker()
	timeline := projection.NewTimeline(config.TimelineSize)
	monitoring := observability.NewMonitoringManager(log, config.MetricInterval, registry.Len)

	orchestrator := runtime.NewOrchestrator(log, supervisor, registry, stats, tracker, runtime.Options{
		TickInterval:           config.TickInterval,
		SinkTimeout:            config.SinkTimeout,
		NotificationBufferSize: config.NotificationBufferSize,
		Defaults:               defaults,
		Observer:               monitoring,
	})
	orchestrator.AddSinks(sink.NewLogSink(log), timeline)
	health := server.NewHealthServer(log, orchestrator.Ready, time.Second)

	capacity := workers.NewChannelCapacityWorker(log, orchestrator.Channels(), monitoring, config.MetricInterval)
	if err := orchestrator.Start(ctx, monitoring, health, capacity); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}

	// 4. Servers
	errChan := make(chan error, 3)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.HTTPHost, config.HTTPPort),
		Handler:           api.NewHandler(log, orchestrator, tracker, timeline, monitoring).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	grpcAddress := fmt.Sprintf("%s:%d", config.HTTPHost, config.GRPCPort)
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}
	grpcServer := grpc.NewServer()
	health.Register(grpcServer)
	go func() {
		log.Info("Starting gRPC health server", "address", grpcAddress)
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	var debugServer *http.Server
	if config.DebugPort > 0 && db != nil {
		debugServer = startDebugServer(log, config, db, monitoring, errChan)
	}

	// 5. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		log.Error("Server failure, shutting down", "error", err)
		stop()
		defer orchestrator.Stop()
		return err
	}

	// 6. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	if debugServer != nil {
		_ = debugServer.Shutdown(shutdownCtx)
	}
	grpcServer.GracefulStop()
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

func startDebugServer(log *slog.Logger, config internal.Config, db *badger.DB,
	monitoring *observability.MonitoringManager, errChan chan<- error) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/inspect", internal.NewInspectHandler(db, func() map[string]any {
		latest := monitoring.GetLatest()
		return map[string]any{
			"active_sessions":  latest.ActiveSessions,
			"sessions_started": latest.SessionsStarted,
			"work_completed":   latest.WorkCompleted,
			"credit_failures":  latest.CreditFailures,
			"rss_bytes":        latest.RssBytes,
			"goroutines":       latest.Goroutines,
			"uptime":           latest.Uptime,
		}
	}))
	debugServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.HTTPHost, config.DebugPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("Starting debug server", "url", fmt.Sprintf("http://%s/inspect", debugServer.Addr))
		if err := debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("debug server error: %w", err)
		}
	}()
	return debugServer
}
