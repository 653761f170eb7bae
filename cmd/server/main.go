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

	"github.com/telelink/customer-analytics/internal/application/usecase"
	"github.com/telelink/customer-analytics/internal/domain/service"
	"github.com/telelink/customer-analytics/internal/infrastructure/artifact"
	"github.com/telelink/customer-analytics/internal/infrastructure/config"
	"github.com/telelink/customer-analytics/internal/infrastructure/messaging"
	infrapostgres "github.com/telelink/customer-analytics/internal/infrastructure/postgres"
	grpcpresentation "github.com/telelink/customer-analytics/internal/presentation/grpc"
	"github.com/telelink/customer-analytics/internal/presentation/rest"
	"github.com/telelink/customer-analytics/pkg/kafka"
	"github.com/telelink/customer-analytics/pkg/observability"
	"github.com/telelink/customer-analytics/pkg/postgres"
)

func main() {
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Service: "customer-analytics",
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	logger.Info("starting customer-analytics")

	// Load model artifacts. Failure is fatal: the service never starts with
	// a partial or mismatched model set.
	registry, err := artifact.LoadRegistry(cfg.ArtifactDir)
	if err != nil {
		logger.Error("failed to load model artifacts", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("model artifacts loaded",
		slog.String("feature_spec_version", registry.Spec.Version),
		slog.Float64("decision_threshold", registry.Classifier.Threshold()),
	)

	riskScorer, err := service.NewRiskScorer(service.RiskBands{
		MediumCut: cfg.RiskMediumCut,
		HighCut:   cfg.RiskHighCut,
	})
	if err != nil {
		logger.Error("invalid risk band configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline, err := service.NewScoringPipeline(registry.Encoder, registry.Classifier, registry.Regressor, riskScorer)
	if err != nil {
		logger.Error("failed to build scoring pipeline", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect to PostgreSQL.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if cfg.MigrationsDir != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			logger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Initialize infrastructure adapters.
	predictionRepo := infrapostgres.NewPredictionRepository(pool)
	producer := kafka.NewProducer(kafka.Config{Brokers: []string{cfg.KafkaBroker}})
	defer producer.Close()
	eventPublisher := messaging.NewKafkaPublisher(producer, cfg.EventTopic, logger)

	// Initialize metrics. The provider backs the Prometheus exporter, so
	// instruments created on its meter show up on /metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "customer-analytics",
	})
	if err != nil {
		logger.Error("failed to initialize metrics", slog.String("error", err.Error()))
		os.Exit(1)
	}
	scoringMetrics, err := usecase.NewScoringMetrics(meterProvider.Meter("customer-analytics"))
	if err != nil {
		logger.Error("failed to create scoring instruments", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize use cases.
	scoreCustomerUC := usecase.NewScoreCustomer(predictionRepo, eventPublisher, pipeline, scoringMetrics)
	batchScoreUC := usecase.NewBatchScore(scoreCustomerUC, cfg.BatchConcurrency)
	getPredictionUC := usecase.NewGetPrediction(predictionRepo)
	getHistoryUC := usecase.NewGetCustomerHistory(predictionRepo)
	getStatisticsUC := usecase.NewGetStatistics(predictionRepo)

	// Initialize gRPC handler and server.
	grpcHandler := grpcpresentation.NewAnalyticsHandler(scoreCustomerUC, getPredictionUC, logger)
	grpcServer := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), logger)

	// Initialize HTTP server.
	healthHandler := rest.NewHealthHandler(logger, pool, registry.Spec.Version)
	predictHandler := rest.NewPredictHandler(scoreCustomerUC, batchScoreUC, getPredictionUC, getHistoryUC, getStatisticsUC, logger)

	httpMux := http.NewServeMux()
	healthHandler.RegisterRoutes(httpMux)
	predictHandler.RegisterRoutes(httpMux)
	httpMux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpMux,
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
		logger.Info("HTTP server starting", slog.String("address", cfg.HTTPAddress()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("customer-analytics started",
		slog.String("grpc_address", cfg.GRPCAddress()),
		slog.String("http_address", cfg.HTTPAddress()),
		slog.String("environment", cfg.Environment),
	)

	// Wait for shutdown signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("server error", slog.String("error", err.Error()))
	}

	// Graceful shutdown.
	logger.Info("shutting down customer-analytics")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	grpcServer.Stop()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		logger.Error("meter provider shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("customer-analytics stopped")
}
