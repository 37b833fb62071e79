package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cptzbik/halfmaraton/config"
	_ "github.com/cptzbik/halfmaraton/docs" // Swagger docs
	estimateDelivery "github.com/cptzbik/halfmaraton/internal/estimate/delivery/http"
	"github.com/cptzbik/halfmaraton/internal/estimate/usecase"
	"github.com/cptzbik/halfmaraton/internal/httpserver"
	"github.com/cptzbik/halfmaraton/internal/middleware"
	"github.com/cptzbik/halfmaraton/internal/regression"
	"github.com/cptzbik/halfmaraton/pkg/llmprovider"
	"github.com/cptzbik/halfmaraton/pkg/log"
	"github.com/cptzbik/halfmaraton/pkg/spaces"
)

// @title       Half-Marathon Estimator API
// @description Predicts half-marathon finish times from free-text runner descriptions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting half-marathon estimator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model artifact
	if err := ensureModelArtifact(ctx, logger, cfg); err != nil {
		logger.Errorf(ctx, "Model artifact unavailable: %v", err)
		return
	}

	pipeline, err := regression.Load(cfg.Model.LocalPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to load regression pipeline: %v", err)
		return
	}
	info := pipeline.Info()
	logger.Infof(ctx, "Regression pipeline loaded: name=%s trees=%d schema=%v",
		info.Name, info.TreeCount, info.Schema)

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))

	// 5. Estimate domain
	estimateUC := usecase.New(logger, llmManager, pipeline)
	estimateHandler := estimateDelivery.New(logger, estimateUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.HTTPServer),
		EstimateHandler: estimateHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// ensureModelArtifact makes sure the regression artifact exists locally,
// downloading it from Spaces when it does not.
func ensureModelArtifact(ctx context.Context, logger log.Logger, cfg *config.Config) error {
	if _, err := os.Stat(cfg.Model.LocalPath); err == nil {
		logger.Infof(ctx, "Model artifact found at %s", cfg.Model.LocalPath)
		return nil
	}

	if !cfg.Spaces.Enabled() {
		return fmt.Errorf("model artifact %s not found and Spaces credentials are not configured", cfg.Model.LocalPath)
	}

	client, err := spaces.New(ctx, spaces.Config{
		Region:          cfg.Spaces.Region,
		EndpointURL:     cfg.Spaces.EndpointURL,
		AccessKeyID:     cfg.Spaces.AccessKeyID,
		SecretAccessKey: cfg.Spaces.SecretAccessKey,
	})
	if err != nil {
		return fmt.Errorf("init spaces client: %w", err)
	}

	logger.Infof(ctx, "Downloading model artifact s3://%s/%s -> %s",
		cfg.Spaces.Bucket, cfg.Spaces.Key, cfg.Model.LocalPath)

	if err := client.DownloadFile(ctx, cfg.Spaces.Bucket, cfg.Spaces.Key, cfg.Model.LocalPath); err != nil {
		return fmt.Errorf("download model artifact: %w", err)
	}

	logger.Info(ctx, "Model artifact downloaded")
	return nil
}

func parseDurationOr(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
