package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamchat/auth"
	"teamchat/infrastructure/http/server"
	"teamchat/internal"
	"teamchat/moderation"
	"teamchat/observability"
	"teamchat/repositories"
	"teamchat/runtime/workers"
	"teamchat/services"

	env "github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2

	shutdownTimeout = 10 * time.Second
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a termination signal.
// Returning instead of exiting lets the deferred closes run.
func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := config.CharacterRune()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Storage
	db, err := badger.Open(buildBadgerOpts(ctx, config, logger))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	moderator, err := moderation.NewModerator(config.Words(), charReplacement)
	if err != nil {
		return exitConfig, fmt.Errorf("moderator init failed: %w", err)
	}

	userRepository := repositories.NewUserRepository(db)
	workspaceRepository := repositories.NewWorkspaceRepository(db)
	channelRepository := repositories.NewChannelRepository(db)
	messageRepository := repositories.NewMessageRepository(db, logger, config.LimitMessages)
	directMessageRepository := repositories.NewDirectMessageRepository(db)
	searchIndex := repositories.NewSearchIndex(blugeWriter, logger)

	// 3. Background indexing under supervision
	indexWorker := workers.NewIndexWorker(searchIndex, config.IndexBufferSize, config.IndexTimeout, logger)
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	supervisorDone := make(chan struct{})
	go func() {
		supervisor.Add(indexWorker).Run(ctx)
		close(supervisorDone)
	}()

	// 4. Services
	tokenIssuer := auth.NewTokenIssuer(config.JwtSecret, config.AuthTokenDuration)
	access := services.NewAccessChecker(userRepository, workspaceRepository, channelRepository)
	health, err := observability.NewHealthReporter(logger, indexWorker)
	if err != nil {
		return exitRuntime, fmt.Errorf("health reporter init failed: %w", err)
	}

	handler := server.NewHandler(server.Services{
		Auth:       services.NewAuthService(userRepository, tokenIssuer),
		Navigation: services.NewNavigationService(userRepository),
		Users:      services.NewUserService(userRepository),
		Workspaces: services.NewWorkspaceService(access, workspaceRepository, userRepository),
		Channels:   services.NewChannelService(access, channelRepository),
		Messages: services.NewMessageService(access, messageRepository, userRepository,
			workspaceRepository, searchIndex, indexWorker, moderator, logger),
		DirectMessages: services.NewDirectMessageService(access, directMessageRepository, moderator),
	}, health, logger)

	// 5. HTTP server
	httpServer := &http.Server{
		Addr:         config.Address(),
		Handler:      server.NewRouter(handler, tokenIssuer, config.Origins(), logger),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// 6. Wait for a signal or a listener failure, then shut down
	code, runErr := exitOK, error(nil)
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		code, runErr = exitRuntime, fmt.Errorf("http server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
	// Canceling ctx stops the supervised workers
	stop()
	<-supervisorDone

	return code, runErr
}

func buildBadgerOpts(ctx context.Context, config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}
