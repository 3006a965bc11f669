package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/lwei/stockticker/internal/config"
	"github.com/lwei/stockticker/internal/feed"
	"github.com/lwei/stockticker/internal/metrics"
	"github.com/lwei/stockticker/internal/scheduler"
	"github.com/lwei/stockticker/internal/version"
	"github.com/lwei/stockticker/internal/watchlist"
)

func main() {
	configPath := flag.String("config", "configs/ticker.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting ticker",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"feed_url", cfg.Feed.URL,
		"codes", len(cfg.Watchlist.Codes),
		"checked", len(cfg.Watchlist.CheckedCodes),
		"refresh_seconds", cfg.Display.RefreshSeconds,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := watchlist.NewStore(cfg, logger)

	client := feed.NewClient(
		feed.WithBaseURL(cfg.Feed.URL),
		feed.WithReferer(cfg.Feed.Referer),
		feed.WithUserAgent(cfg.Feed.UserAgent),
		feed.WithTimeout(cfg.Feed.Timeout),
		feed.WithLogger(logger),
	)

	reg := prometheus.NewRegistry()
	collectors := metrics.New(reg)

	sink := newTerminalSink(os.Stdout, store)

	sched := scheduler.New(scheduler.DefaultConfig(), client, store, sink, logger, collectors)

	watcher := config.NewWatcher(*configPath, logger)

	g, gctx := errgroup.WithContext(ctx)

	// Config hot reload: watcher delivers validated snapshots, the store
	// publishes them to the next cycle.
	g.Go(func() error {
		return watcher.Run(gctx)
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case next := <-watcher.Updates():
				store.Update(next)
			}
		}
	})

	// Metrics endpoint
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, metrics.Handler(reg))
		srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}

		g.Go(func() error {
			logger.Info("metrics server listening", "addr", cfg.Metrics.Addr, "path", cfg.Metrics.Path)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if err := sched.Start(gctx); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}

	if err := g.Wait(); err != nil {
		logger.Error("runtime failure", "error", err)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sched.Stop(stopCtx); err != nil {
		logger.Warn("scheduler shutdown timed out", "error", err)
	}
}
