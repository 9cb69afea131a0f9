package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/danghoa77/e-project-mobile/internal/auth"
	"github.com/danghoa77/e-project-mobile/internal/cart"
	"github.com/danghoa77/e-project-mobile/internal/config"
	"github.com/danghoa77/e-project-mobile/internal/gateway"
	httpapi "github.com/danghoa77/e-project-mobile/internal/http"
	"github.com/danghoa77/e-project-mobile/internal/payment"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	session := auth.NewSession(logger)
	if token := os.Getenv("STOREFRONT_TOKEN"); token != "" {
		session.SetToken(token)
	}
	session.OnLogout(func() {
		logger.Info("session logged out")
	})

	store := gateway.NewClient(cfg.APIBaseURL,
		gateway.WithTokenSource(session),
		gateway.WithLogger(logger),
	)

	cartManager := cart.NewManager(store, logger)
	returns := payment.NewReturnHandler(store, cartManager, logger)
	returnHandler := httpapi.NewPaymentReturnHandler(returns, logger)

	// Warm the local cart mirror; the listener works either way.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	if _, err := cartManager.Load(ctx); err != nil {
		logger.Warn("initial cart load failed", zap.Error(err))
	}
	cancel()

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      httpapi.NewRouter(returnHandler, cfg.RequestTimeout),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("payment return listener starting", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
