package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mealloan/backend/internal/auth"
	"github.com/mealloan/backend/internal/config"
	"github.com/mealloan/backend/internal/db"
	clientdomain "github.com/mealloan/backend/internal/domain/client"
	loandomain "github.com/mealloan/backend/internal/domain/loan"
	"github.com/mealloan/backend/internal/http/handlers"
	"github.com/mealloan/backend/internal/observability"
	postgresrepo "github.com/mealloan/backend/internal/repository/postgres"
	"github.com/mealloan/backend/internal/server"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect postgres", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := db.NewUserRepository(pool)
	if cfg.BootstrapUserID != "" && cfg.BootstrapPassword != "" {
		hash, err := auth.HashPassword(cfg.BootstrapPassword)
		if err != nil {
			logger.Error("failed to hash bootstrap password", "err", err)
			os.Exit(1)
		}
		if err := userRepo.EnsureUser(ctx, cfg.BootstrapUserID, hash); err != nil {
			logger.Error("failed to seed bootstrap user", "err", err)
			os.Exit(1)
		}
		logger.Info("bootstrap user ensured", "identifier", cfg.BootstrapUserID)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTSigningKey)
	authService := auth.NewService(userRepo, jwtManager, cfg.JWTTTL)
	loanService := loandomain.NewService(postgresrepo.NewLedgerRepository(pool))
	clientService := clientdomain.NewService(postgresrepo.NewClientRepository(pool))

	r := server.NewRouter(cfg, logger, server.Dependencies{
		Pinger:        pool,
		AuthHandler:   handlers.NewAuthHandler(authService, logger),
		LoanHandler:   handlers.NewLoanHandler(loanService, logger),
		ClientHandler: handlers.NewClientHandler(clientService, logger),
		JWTManager:    jwtManager,
	})
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("api server starting", "addr", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)
	logger.Info("api server stopped")
}
