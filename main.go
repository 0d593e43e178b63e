package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/markup-chain-poc/server/internal/core"
	"github.com/markup-chain-poc/server/internal/markup/model"
	"github.com/markup-chain-poc/server/internal/markup/pipeline"
	"github.com/markup-chain-poc/server/internal/markup/quotes"
	logx "github.com/markup-chain-poc/server/pkg/logger"
)

// AppConfig defines all configurable parameters for the markup runner,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment core.Environment `envconfig:"APP_ENV" default:"development"`

	// Markup configs
	Rates    model.RatesConfig
	Pipeline pipeline.Config
}

func loadConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("process environment config: %w", err)
	}
	if cfg.Pipeline.Scale < 0 {
		return AppConfig{}, fmt.Errorf("PIPELINE_SCALE must be non-negative, got %d", cfg.Pipeline.Scale)
	}
	return cfg, nil
}

func main() {
	ctx := context.Background()
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	envCfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logx.Init(logx.LoggerOpts{Environment: envCfg.Environment})

	rates, err := envCfg.Rates.Table()
	if err != nil {
		logx.Fatal().Err(err).Msg("Invalid markup rates")
	}

	// ====================================================
	p, err := pipeline.BuildFromConfig(ctx, envCfg.Pipeline, rates, os.Stdout)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build markup pipeline")
	}
	manager := quotes.NewManager(p)

	testQuotes := []quotes.Request{
		{Price: "1299.99", Headcount: 3, Category: "FOOD"},
		{Price: "5432.00", Headcount: 1, Category: "PHARMA"},
		{Price: "12456.95", Headcount: 4, Category: "OTHER"},
	}

	for i, q := range testQuotes {
		if _, err := manager.Push(ctx, q.Price, q.Headcount, q.Category); err != nil {
			fmt.Fprintf(os.Stderr, "quote %d failed: %v\n", i+1, err)
		}
	}
}
