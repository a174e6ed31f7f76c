package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpctx "github.com/dtroode/freejob-server/internal/api/http/context"
	"github.com/dtroode/freejob-server/internal/api/http/router"
	httpserver "github.com/dtroode/freejob-server/internal/api/http/server"
	"github.com/dtroode/freejob-server/internal/metrics"
	"github.com/dtroode/freejob-server/internal/model"
	"github.com/dtroode/freejob-server/internal/server"
	"github.com/dtroode/freejob-server/internal/service"
	storage "github.com/dtroode/freejob-server/internal/storage/minio"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, logger, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	c, err := newContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize dependencies", "error", err)
		return err
	}
	defer c.Close()

	authService, err := service.NewAuth(c.users, c.hasher, c.tokenService, logger)
	if err != nil {
		logger.Error("failed to initialize auth service", "error", err)
		return err
	}

	storageClient, err := storage.New(ctx, storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Error("failed to initialize storage client", "error", err)
		return err
	}

	registry := metrics.NewRegistry()

	r := router.New(router.Dependencies{
		AuthService:    authService,
		TokenService:   c.tokenService,
		UserService:    c.userService,
		OfferService:   service.NewOffer(c.offers, c.applications, c.users, logger),
		ResumeService:  service.NewResume(storageClient, c.users, logger),
		ContextManager: httpctx.NewManager(),
		Pinger:         c.db,
		Metrics:        metrics.New(registry),
		Gatherer:       registry,
		AllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		Logger:         logger,
	})

	httpServer := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")

	return nil
}
