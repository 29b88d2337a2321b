package main

import (
	"car-chat/auth"
	"car-chat/infrastructure/httpapi"
	"car-chat/infrastructure/ws"
	"car-chat/internal"
	"car-chat/moderation"
	"car-chat/observability"
	"car-chat/repositories"
	"car-chat/runtime"
	"car-chat/runtime/workers"
	"car-chat/services"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal or a server error.
// Returning instead of exiting lets the deferred cleanups run.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Account store (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	userRepository := repositories.NewUserRepository(db)
	tokens := auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration)
	authService := services.NewAuthService(log, userRepository, tokens)
	if err := authService.EnsureAdmin(config.BootstrapAdminEmail, config.BootstrapAdminPassword); err != nil {
		return fmt.Errorf("bootstrap admin failed: %w", err)
	}

	// 3. Hub state & routing
	metrics := observability.NewMetrics()
	orchestrator := runtime.NewOrchestrator(log,
		runtime.NewRegistry(),
		runtime.NewTopics(),
		runtime.NewHistory(config.HistoryLimit),
		runtime.NewConversations(),
		metrics, config.DeliveryTimeout, config.DetailMessages)

	moderator, err := moderation.NewModerator(config.CensoredWordList(), config.Replacement(), log)
	if err != nil {
		return fmt.Errorf("moderator setup failed: %w", err)
	}
	chatService := services.NewChatService(log, orchestrator, moderator, config.MaxContentLength)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Background workers
	monitoring := observability.NewMonitoringManager(log, metrics, orchestrator.Gauges, config.MetricInterval)
	sup := workers.NewSupervisor(log)
	sup.Add(
		monitoring,
		workers.NewTopicJanitor(log, orchestrator, config.TopicIdleTTL, config.JanitorInterval),
	)
	supervisorDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervisorDone)
	}()

	// 6. HTTP & websocket
	hub := ws.NewHandler(log, chatService, tokens, ws.Options{
		BufferSize:     config.ConnectionBufferSize,
		AllowedOrigins: config.AllowedOriginList(),
	})
	router := httpapi.NewRouter(log, chatService, authService, tokens)
	server := &http.Server{
		Addr:              config.Address(),
		Handler:           router.Handler(hub),
		ReadHeaderTimeout: 5 * time.Second,
	}
	server.RegisterOnShutdown(hub.CloseAll)

	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting car chat hub", "address", config.Address(), "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var debugServer *http.Server
	if config.DebugPort > 0 {
		debugServer = internal.NewDebugServer(config.DebugAddress(), monitoring.Snapshot, userRepository)
		go func() {
			log.Info("Starting debug server", "address", config.DebugAddress())
			if err := debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("debug server error: %w", err)
			}
		}()
	}

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		stop()
		<-supervisorDone
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	if debugServer != nil {
		_ = debugServer.Shutdown(shutdownCtx)
	}
	sup.Stop()
	<-supervisorDone
	log.Info("Program stopped cleanly")
	return nil
}
