package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uniqo-ge/payment-server/internal/application"
	"github.com/uniqo-ge/payment-server/internal/application/services"
	"github.com/uniqo-ge/payment-server/internal/config"
	"github.com/uniqo-ge/payment-server/internal/infrastructure/credentials"
	"github.com/uniqo-ge/payment-server/internal/infrastructure/gateway"
	"github.com/uniqo-ge/payment-server/internal/interfaces/rest"
	"github.com/uniqo-ge/payment-server/internal/interfaces/rest/handlers"
	"github.com/uniqo-ge/payment-server/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting payment server",
		"port", cfg.Server.Port,
		"auth_scheme", cfg.Auth.Scheme,
		"gateway_url", cfg.Gateway.APIURL,
	)

	credentialProvider, err := credentials.NewProvider(cfg.Auth)
	if err != nil {
		logger.Error("failed to configure credential provider", "error", err)
		os.Exit(1)
	}

	gatewayClient := gateway.NewClient(cfg.Gateway)

	merchant := application.MerchantContext{
		MerchantID:  cfg.Gateway.MerchantID,
		CallbackURL: cfg.Gateway.RedirectURL,
		FrontendURL: cfg.Gateway.FrontendURL,
	}

	paymentService := services.NewPaymentService(
		credentialProvider,
		gatewayClient,
		merchant,
		cfg.Callback.Secret,
		logger,
	)

	h := handlers.NewHandlers(paymentService, logger)

	router := rest.NewRouter(h, cfg.CORS,
		middleware.Recovery(logger),
		middleware.Logging(logger),
		middleware.Timeout(cfg.Server.ReadTimeout),
	)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
