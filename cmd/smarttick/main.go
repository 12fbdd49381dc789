package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/rudedude2015501/SmartTick/internal/cache"
	"github.com/rudedude2015501/SmartTick/internal/collector"
	"github.com/rudedude2015501/SmartTick/internal/config"
	"github.com/rudedude2015501/SmartTick/internal/leaderboard"
	"github.com/rudedude2015501/SmartTick/internal/notifier"
	"github.com/rudedude2015501/SmartTick/internal/recorder"
	"github.com/rudedude2015501/SmartTick/internal/scheduler"
	"github.com/rudedude2015501/SmartTick/internal/server"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		log = log.Level(level)
	}
	log.Info().Msg("SmartTick starting")

	fetcher := collector.NewBackendFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	col := collector.New(fetcher, log)
	analysisCache := cache.New(time.Duration(cfg.Cache.TTLMinutes) * time.Minute)
	board := leaderboard.New(col, analysisCache, cfg.Symbols, log)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("sqlite recorder unavailable, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	var tn *notifier.TelegramNotifier
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(ctx, col, board, analysisCache, tn, rec, log)
	if err := sched.RegisterAll(cfg.Schedule.RefreshCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram polling started")
	}

	srv := server.New(server.Config{
		Log:         log,
		Collector:   col,
		Cache:       analysisCache,
		Leaderboard: board,
		Port:        cfg.Server.Port,
	})
	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("http server failed")
			cancel()
		}
	}()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, refreshing leaderboard now")
		go sched.RunRefreshNow()
	}

	log.Info().Msg("SmartTick is running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received, stopping")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	log.Info().Msg("SmartTick stopped")
}
