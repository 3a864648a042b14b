package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"mwalali_homes/internal/adapters/observability"
	"mwalali_homes/internal/catalog"
	"mwalali_homes/internal/placeholder"
	"mwalali_homes/internal/shared"
)

func main() {
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}
	assets := cat.Assets()

	log.Info().
		Str("dir", cfg.PublicDir).
		Int("workers", cfg.PlaceholderWorkers).
		Int("assets", len(assets)).
		Msg("placeholder generation starting")

	d := &placeholder.Downloader{Dir: cfg.PublicDir, Workers: cfg.PlaceholderWorkers, Every: 50 * time.Millisecond}
	rep := d.Run(ctx, assets)

	log.Info().
		Int("downloaded", len(rep.Downloaded)).
		Int("skipped", len(rep.Skipped)).
		Int("failed", len(rep.Failed)).
		Msg("placeholder generation completed")
	if len(rep.Failed) > 0 {
		stop()
		os.Exit(1)
	}
}
