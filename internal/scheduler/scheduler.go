package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lwei/stockticker/internal/board"
	"github.com/lwei/stockticker/internal/feed"
	"github.com/lwei/stockticker/internal/metrics"
	"github.com/lwei/stockticker/internal/model"
	"github.com/lwei/stockticker/internal/quote"
	"github.com/lwei/stockticker/internal/watchlist"
)

// User-facing error messages, rendered in the widget's error bar.
const (
	MsgNoNetwork      = "无网络连接"
	MsgEmptyWatchlist = "暂无数据，请添加自选"
)

// SettingsSource provides the per-cycle settings snapshot.
type SettingsSource interface {
	Snapshot() watchlist.Settings
}

// Fetcher fetches raw quotes keyed by instrument code.
type Fetcher interface {
	FetchQuotes(ctx context.Context, codes []string) (map[string]model.RawQuote, error)
}

// Sink receives the render-facing output of each cycle: the projected
// table plus an error string, empty when healthy. On failure the sink
// still gets the last successfully projected table, so a stale-but-valid
// display survives feed outages.
type Sink interface {
	Render(t board.Table, errText string)
}

// SinkFunc is a function adapter for Sink.
type SinkFunc func(board.Table, string)

func (f SinkFunc) Render(t board.Table, errText string) {
	f(t, errText)
}

// Config holds scheduler configuration.
type Config struct {
	Timeout time.Duration // Per-cycle fetch timeout (default: 5s)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 5 * time.Second,
	}
}

// Scheduler drives the parse->derive->project pipeline on a fixed
// interval with at most one fetch in flight.
type Scheduler struct {
	cfg        Config
	fetcher    Fetcher
	source     SettingsSource
	sink       Sink
	logger     *slog.Logger
	collectors *metrics.Collectors

	inFlight atomic.Bool
	paused   atomic.Bool
	resume   chan struct{}

	mu        sync.Mutex
	lastTable board.Table

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Scheduler. collectors may be nil to disable metrics.
func New(cfg Config, fetcher Fetcher, source SettingsSource, sink Sink, logger *slog.Logger, collectors *metrics.Collectors) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Scheduler{
		cfg:        cfg,
		fetcher:    fetcher,
		source:     source,
		sink:       sink,
		logger:     logger,
		collectors: collectors,
		resume:     make(chan struct{}, 1),
	}
}

// Start begins the refresh loop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.run()

	s.logger.Info("refresh scheduler started",
		"interval", s.source.Snapshot().Interval,
	)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("refresh scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pause suspends refreshing while the display surface is hidden.
func (s *Scheduler) Pause() {
	if s.paused.CompareAndSwap(false, true) {
		s.logger.Debug("refresh paused")
	}
}

// Resume restarts refreshing and triggers an immediate cycle.
func (s *Scheduler) Resume() {
	if s.paused.CompareAndSwap(true, false) {
		s.logger.Debug("refresh resumed")
		select {
		case s.resume <- struct{}{}:
		default:
		}
	}
}

// run is the main refresh loop. The interval follows the settings
// snapshot, so config reloads take effect without a restart.
func (s *Scheduler) run() {
	defer s.wg.Done()

	interval := s.source.Snapshot().Interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Refresh immediately on start.
	s.tick()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.resume:
			s.tick()
		case <-ticker.C:
			s.tick()
		}

		if next := s.source.Snapshot().Interval; next > 0 && next != interval {
			interval = next
			ticker.Reset(interval)
			s.logger.Info("refresh interval changed", "interval", interval)
		}
	}
}

// tick launches one cycle unless paused or a fetch is still outstanding.
// Single-flight: an elapsed interval never overlaps a second fetch.
func (s *Scheduler) tick() {
	if s.paused.Load() {
		return
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		if s.collectors != nil {
			s.collectors.TicksSkipped.Inc()
		}
		s.logger.Debug("fetch still in flight, skipping tick")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.inFlight.Store(false)
		s.runCycle()
	}()
}

// runCycle executes one parse->derive->project pass.
func (s *Scheduler) runCycle() {
	start := time.Now()
	snap := s.source.Snapshot()
	logger := s.logger.With("cycle", uuid.NewString())

	if s.collectors != nil {
		s.collectors.CyclesTotal.Inc()
		s.collectors.Instruments.Set(float64(len(snap.Checked)))
	}

	if len(snap.Checked) == 0 {
		s.surface(logger, metrics.ClassEmptyWatchlist, MsgEmptyWatchlist, nil)
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.cfg.Timeout)
	defer cancel()

	quotes, err := s.fetcher.FetchQuotes(ctx, snap.Checked)
	if s.collectors != nil {
		s.collectors.FetchDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		var te *feed.TransportError
		if errors.As(err, &te) {
			s.surface(logger, metrics.ClassTransport, MsgNoNetwork, err)
		} else {
			s.surface(logger, metrics.ClassOther, err.Error(), err)
		}
		return
	}

	// The feed does not guarantee response order; re-sort to watchlist
	// order so rows and metadata cannot drift apart across cycles.
	rows := make([]model.DerivedQuote, 0, len(snap.Checked))
	missing := 0
	for _, code := range snap.Checked {
		raw, ok := quotes[code]
		if !ok {
			missing++
			continue
		}
		rows = append(rows, quote.Derive(raw, snap.Options))
	}
	if s.collectors != nil {
		s.collectors.QuotesParsed.Add(float64(len(rows)))
		s.collectors.QuotesMissing.Add(float64(missing))
	}

	table := board.Project(rows, snap.Visibility)

	s.mu.Lock()
	s.lastTable = table
	s.mu.Unlock()

	s.sink.Render(table, "")

	logger.Debug("refresh cycle complete",
		"instruments", len(rows),
		"missing", missing,
		"duration", time.Since(start),
	)
}

// surface reports a failed cycle without touching the last good table.
func (s *Scheduler) surface(logger *slog.Logger, class, msg string, err error) {
	if s.collectors != nil {
		s.collectors.CycleErrors.WithLabelValues(class).Inc()
	}
	if err != nil {
		logger.Warn("refresh cycle failed", "class", class, "err", err)
	} else {
		logger.Warn("refresh cycle failed", "class", class)
	}

	s.mu.Lock()
	last := s.lastTable
	s.mu.Unlock()

	s.sink.Render(last, msg)
}
