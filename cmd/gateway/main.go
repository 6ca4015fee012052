package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gyaneshwarpardhi/inputgate/internal/api"
	"github.com/gyaneshwarpardhi/inputgate/internal/config"
	"github.com/gyaneshwarpardhi/inputgate/internal/pump"
	"github.com/gyaneshwarpardhi/inputgate/internal/source"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	cfgPath := flag.String("config", "configs/gateway.yaml", "Path to gateway YAML config")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// ── Load config (the loader validates before installing) ─────────────────
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	cfg := loader.Config()

	// ── Native source and pump ────────────────────────────────────────────────
	src := source.NewMemory(cfg.Queue.Capacity)
	pmp := pump.New(src)
	applyStates(pmp, cfg)
	slog.Info("pump ready", "queue_capacity", cfg.Queue.Capacity, "event_states", len(cfg.Events))

	// ── Hot-reload watcher (only validated configs reach OnChange) ───────────
	loader.OnChange(func(newCfg *config.GatewayConfig) {
		applyStates(pmp, newCfg)
		slog.Info("event states hot-reloaded", "event_states", len(newCfg.Events))
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.New(pmp, loader)
	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down…")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	slog.Info("goodbye")
}

func applyStates(pmp *pump.Pump, cfg *config.GatewayConfig) {
	for k, s := range cfg.EventStates() {
		pmp.SetState(k, s)
	}
}
