package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"mwalali_homes/internal/adapters/gemini"
	server "mwalali_homes/internal/adapters/http_server"
	"mwalali_homes/internal/adapters/observability"
	redisad "mwalali_homes/internal/adapters/redis"
	"mwalali_homes/internal/app"
	"mwalali_homes/internal/catalog"
	"mwalali_homes/internal/domain"
	"mwalali_homes/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("catalog load failed")
	}
	log.Info().Int("properties", len(cat.IDs())).Msg("catalog loaded")

	// deps
	var ai domain.Assistant
	client, err := gemini.New(cfg.GeminiBase, cfg.GeminiKey, cfg.GeminiModel, cfg.GeminiRPS)
	switch {
	case errors.Is(err, gemini.ErrNoAPIKey):
		log.Warn().Msg("no model API key, search returns every listing and chat apologises")
	case err != nil:
		log.Fatal().Err(err).Msg("failed to initialize Gemini client")
	default:
		ai = client
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := rc.Ping(pctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, search results will not be cached")
		} else {
			cache = rc
		}
		cancel()
	}

	listings := app.NewListingService(cat, ai, cache, cfg.SearchCacheTTL).WithAssistantTimeout(cfg.AssistantTimeout)
	chat := app.NewChatService(ai, cfg.ChatHistoryLimit).WithAssistantTimeout(cfg.AssistantTimeout)
	inquiries := app.NewInquiryService(cfg.AgencyEmail, cat)

	// http
	srv := server.New(server.Options{
		CORSOrigins:    cfg.CORSOrigins,
		AssistantRPS:   cfg.AssistantRPS,
		AssistantBurst: cfg.AssistantBurst,
		PublicDir:      cfg.PublicDir,
		Timeout:        cfg.HTTPTimeout,
		TrustProxy:     cfg.TrustProxy,
	})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Listings: listings, Chat: chat, Inquiries: inquiries})
	go srv.Sweep(ctx, 10*time.Minute)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(sctx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Bool("ai", ai != nil).Bool("cache", cache != nil).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
