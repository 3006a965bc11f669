package config

import "time"

// Config is the root configuration of the ticker.
type Config struct {
	Feed      FeedConfig      `yaml:"feed"`
	Watchlist WatchlistConfig `yaml:"watchlist"`
	Display   DisplayConfig   `yaml:"display"`
	Columns   ColumnsConfig   `yaml:"columns"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// FeedConfig holds quote-feed endpoint settings.
type FeedConfig struct {
	URL       string        `yaml:"url"`
	Referer   string        `yaml:"referer"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// WatchlistConfig holds the ordered watchlist and the checked subset
// actually displayed. Codes are normalized (lowercased, de-duplicated,
// market prefix inferred for bare numeric codes) before validation.
type WatchlistConfig struct {
	Codes        []string `yaml:"codes"`
	CheckedCodes []string `yaml:"checked_codes"`
}

// DisplayConfig holds per-row formatting settings.
type DisplayConfig struct {
	RefreshSeconds int    `yaml:"refresh_seconds"`
	BidAskDisplay  string `yaml:"bid_ask_display"` // qty | price | both
	NameLength     int    `yaml:"name_length"`     // 0 = full name
	ShortCode      bool   `yaml:"short_code"`      // strip market prefix
	DefaultColor   bool   `yaml:"default_color"`   // semantic up/down coloring
	Foreground     string `yaml:"foreground"`      // #rrggbb, used when default_color is off
}

// ColumnsConfig toggles the visible columns. Best bid and best ask share
// one switch. Column order is fixed; these only hide or show.
type ColumnsConfig struct {
	Code      bool `yaml:"code"`
	Name      bool `yaml:"name"`
	Price     bool `yaml:"price"`
	Change    bool `yaml:"change"`
	ChangePct bool `yaml:"change_pct"`
	BidAsk    bool `yaml:"bid_ask"`
	Committee bool `yaml:"committee"`
	Volume    bool `yaml:"volume"`
	Amount    bool `yaml:"amount"`
	Average   bool `yaml:"average"`
	Candle    bool `yaml:"candle"`
}

// MetricsConfig holds Prometheus metrics settings. An empty address
// disables the metrics endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
	Path string `yaml:"path"`
}

func (c ColumnsConfig) none() bool {
	return !(c.Code || c.Name || c.Price || c.Change || c.ChangePct ||
		c.BidAsk || c.Committee || c.Volume || c.Amount || c.Average || c.Candle)
}
