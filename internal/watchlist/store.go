package watchlist

import (
	"log/slog"
	"sync"
	"time"

	"github.com/lwei/stockticker/internal/board"
	"github.com/lwei/stockticker/internal/config"
	"github.com/lwei/stockticker/internal/model"
	"github.com/lwei/stockticker/internal/quote"
)

// Settings is the immutable per-cycle view of the configuration: the
// scheduler reads one snapshot at the start of a cycle and uses it for
// the whole parse/derive/project pass.
type Settings struct {
	Codes        []string         // full watchlist, request order
	Checked      []string         // displayed subset, watchlist order
	Visibility   board.Visibility // per-column toggles
	Options      quote.Options    // derivation display options
	Interval     time.Duration    // refresh interval
	DefaultColor bool             // semantic coloring on/off
	Foreground   string           // fixed foreground when semantic is off
}

// FromConfig converts a validated config into a settings snapshot.
// Best-bid and best-ask share one config toggle but remain separate
// columns in the visibility map.
func FromConfig(cfg *config.Config) Settings {
	vis := board.Visibility{
		model.ColCode:      cfg.Columns.Code,
		model.ColName:      cfg.Columns.Name,
		model.ColPrice:     cfg.Columns.Price,
		model.ColChange:    cfg.Columns.Change,
		model.ColChangePct: cfg.Columns.ChangePct,
		model.ColBid1:      cfg.Columns.BidAsk,
		model.ColAsk1:      cfg.Columns.BidAsk,
		model.ColCommittee: cfg.Columns.Committee,
		model.ColVolume:    cfg.Columns.Volume,
		model.ColAmount:    cfg.Columns.Amount,
		model.ColAverage:   cfg.Columns.Average,
		model.ColCandle:    cfg.Columns.Candle,
	}

	return Settings{
		Codes:      append([]string(nil), cfg.Watchlist.Codes...),
		Checked:    append([]string(nil), cfg.Watchlist.CheckedCodes...),
		Visibility: vis,
		Options: quote.Options{
			Mode:       model.BidAskMode(cfg.Display.BidAskDisplay),
			NameLength: cfg.Display.NameLength,
			ShortCode:  cfg.Display.ShortCode,
		},
		Interval:     time.Duration(cfg.Display.RefreshSeconds) * time.Second,
		DefaultColor: cfg.Display.DefaultColor,
		Foreground:   cfg.Display.Foreground,
	}
}

// Store holds the active settings shared between the config watcher and
// the refresh scheduler. Updates land atomically; readers get copies.
type Store struct {
	mu       sync.RWMutex
	settings Settings
	changes  chan Settings
	logger   *slog.Logger
}

// NewStore creates a store seeded from the initial configuration.
func NewStore(cfg *config.Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		settings: FromConfig(cfg),
		changes:  make(chan Settings, 1),
		logger:   logger,
	}
}

// Snapshot returns a copy of the current settings. The copy is safe to
// hold for the duration of a refresh cycle.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.clone()
}

// Update replaces the settings from a freshly validated config. An
// in-flight cycle keeps its old snapshot; the next cycle sees the update.
func (s *Store) Update(cfg *config.Config) {
	next := FromConfig(cfg)

	s.mu.Lock()
	s.settings = next
	s.mu.Unlock()

	s.logger.Info("watchlist settings updated",
		"codes", len(next.Codes),
		"checked", len(next.Checked),
		"interval", next.Interval,
	)

	// Keep only the newest pending change notification.
	select {
	case <-s.changes:
	default:
	}
	s.changes <- next.clone()
}

// Changes delivers a snapshot after each update, for callers that react
// to settings changes rather than polling Snapshot.
func (s *Store) Changes() <-chan Settings {
	return s.changes
}

func (set Settings) clone() Settings {
	out := set
	out.Codes = append([]string(nil), set.Codes...)
	out.Checked = append([]string(nil), set.Checked...)
	out.Visibility = make(board.Visibility, len(set.Visibility))
	for k, v := range set.Visibility {
		out.Visibility[k] = v
	}
	return out
}
