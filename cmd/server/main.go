// Package main is the entry point for the MoneyWeather backend: it collects
// market data from public sources on a schedule, keeps the latest snapshot
// per asset, and serves the classified dashboard payload over HTTP.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/hanwool/moneyweather/internal/clients/coingecko"
	"github.com/hanwool/moneyweather/internal/clients/ecos"
	"github.com/hanwool/moneyweather/internal/clients/exchangerate"
	"github.com/hanwool/moneyweather/internal/clients/feargreed"
	"github.com/hanwool/moneyweather/internal/clients/opinet"
	"github.com/hanwool/moneyweather/internal/clients/reb"
	"github.com/hanwool/moneyweather/internal/clients/yahoo"
	"github.com/hanwool/moneyweather/internal/collector"
	"github.com/hanwool/moneyweather/internal/config"
	"github.com/hanwool/moneyweather/internal/database"
	"github.com/hanwool/moneyweather/internal/fx"
	"github.com/hanwool/moneyweather/internal/market"
	"github.com/hanwool/moneyweather/internal/marketstore"
	"github.com/hanwool/moneyweather/internal/scheduler"
	"github.com/hanwool/moneyweather/internal/server"
	"github.com/hanwool/moneyweather/internal/weather"
	"github.com/hanwool/moneyweather/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info"})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting MoneyWeather")

	db, err := database.New(database.Config{
		Path: filepath.Join(cfg.DataDir, "market.db"),
		Name: "market",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	repo := marketstore.NewRepository(db.Conn())
	if err := repo.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	fxCache := fx.NewCache()
	seedFXCache(repo, fxCache, log)

	sources := collector.Sources{
		Rates:      exchangerate.NewClient(log),
		Quotes:     yahoo.NewClient(log),
		Crypto:     coingecko.NewClient(log),
		Fuel:       opinet.NewClient(cfg.OpinetAPIKey, log),
		RealEstate: reb.NewClient(cfg.RebAPIKey, log),
		Series:     ecos.NewClient(cfg.EcosAPIKey, log),
		Sentiment:  feargreed.NewClient(log),
	}
	col := collector.NewCollector(repo, fxCache, sources, log)

	sched := scheduler.New(log)
	if err := sched.AddJob(cfg.CollectSchedule, collector.NewJob(col)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register collection job")
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{
		Port:      cfg.Port,
		Log:       log,
		DB:        db,
		Config:    cfg,
		Market:    market.NewService(repo, fxCache, log),
		Collector: col,
		DevMode:   cfg.DevMode,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// seedFXCache restores the last collected USD/KRW rate so unit conversions
// survive a restart without waiting for the next collection cycle.
func seedFXCache(repo *marketstore.Repository, cache *fx.Cache, log zerolog.Logger) {
	rec, err := repo.Get("usdkrw")
	if err != nil || rec == nil {
		return
	}

	var quote weather.RawQuote
	if err := json.Unmarshal(rec.Payload, &quote); err != nil {
		log.Warn().Err(err).Msg("Stored USD/KRW payload is malformed")
		return
	}
	cache.Set(quote.Price)
	log.Info().Float64("rate", quote.Price).Msg("Seeded FX cache from stored rate")
}
