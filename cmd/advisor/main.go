package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"golang.org/x/sync/errgroup"

	httpadapter "github.com/couchcryptid/athlete-weather-advisory/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/athlete-weather-advisory/internal/adapter/kafka"
	"github.com/couchcryptid/athlete-weather-advisory/internal/config"
	"github.com/couchcryptid/athlete-weather-advisory/internal/observability"
	"github.com/couchcryptid/athlete-weather-advisory/internal/pipeline"
)

// alwaysReady backs /readyz when the Kafka pipeline is disabled and the
// service only answers HTTP requests.
type alwaysReady struct{}

func (alwaysReady) CheckReadiness(context.Context) error { return nil }

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	advisorOpts := pipeline.AdvisorOptions{
		DefaultUnits: cfg.DefaultUnits,
		Alerts:       cfg.AlertPreferences(),
		AlertMinTier: cfg.AlertMinTier,
	}
	httpOpts := advisorOpts
	httpOpts.Source = pipeline.SourceHTTP
	kafkaOpts := advisorOpts
	kafkaOpts.Source = pipeline.SourceKafka

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	var ready sharedobs.ReadinessChecker = alwaysReady{}
	var reader *kafkaadapter.Reader
	var writer *kafkaadapter.Writer

	if cfg.PipelineEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger, metrics)
		transformer := pipeline.NewTransformer(pipeline.NewAdvisor(kafkaOpts, metrics, logger))
		p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
		ready = p

		g.Go(func() error {
			return p.Run(gctx)
		})
	} else {
		logger.Info("kafka pipeline disabled, serving HTTP only")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, ready, pipeline.NewAdvisor(httpOpts, metrics, logger), logger)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
		return nil
	})

	runErr := g.Wait()

	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	if runErr != nil {
		logger.Error("service stopped with error", "error", runErr)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
