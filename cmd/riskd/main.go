package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/application/usecase"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/port"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/service"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/infrastructure/config"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/infrastructure/messaging"
	grpcpresentation "github.com/Beckdotan/BuildingsRiskAssesment/internal/presentation/grpc"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/presentation/rest"
	"github.com/Beckdotan/BuildingsRiskAssesment/pkg/kafka"
	"github.com/Beckdotan/BuildingsRiskAssesment/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting property-risk-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "property-risk-service",
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer meterProvider.Shutdown(context.Background())

	// Wire the event publisher. Without a broker the service runs
	// log-only, which is the development default.
	var publisher port.EventPublisher
	if cfg.KafkaEnabled() {
		producer := kafka.NewProducer(kafka.Config{Brokers: []string{cfg.KafkaBroker}})
		defer producer.Close()
		publisher = messaging.NewKafkaPublisher(producer, cfg.KafkaTopic, logger)
		logger.Info("event publishing enabled", "broker", cfg.KafkaBroker, "topic", cfg.KafkaTopic)
	} else {
		publisher = messaging.NewLogPublisher(logger)
		logger.Info("no Kafka broker configured, events will be logged only")
	}

	// Wire the engine and use case.
	engine := service.NewEngine()
	assessPropertyUC := usecase.NewAssessProperty(engine, publisher)

	// gRPC server.
	grpcHandler := grpcpresentation.NewRiskServiceHandler(assessPropertyUC, logger)
	grpcServer := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), logger)

	// HTTP server.
	meter := meterProvider.Meter("property-risk-service")
	assessmentHandler, err := rest.NewAssessmentHandler(assessPropertyUC, meter, logger)
	if err != nil {
		logger.Error("failed to initialize REST handler", "error", err)
		os.Exit(1)
	}

	healthHandler := rest.NewHealthHandler(logger, cfg.KafkaEnabled())

	httpMux := http.NewServeMux()
	assessmentHandler.RegisterRoutes(httpMux)
	healthHandler.RegisterRoutes(httpMux)
	httpMux.Handle("GET /metrics", metricsHandler)

	var httpHandler http.Handler = httpMux
	httpHandler = rest.CORSMiddleware(httpHandler)
	httpHandler = rest.RateLimitMiddleware(cfg.RateLimitRPS)(httpHandler)
	httpHandler = rest.LoggingMiddleware(logger)(httpHandler)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpHandler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("property-risk-service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down property-risk-service")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("property-risk-service stopped")
}
