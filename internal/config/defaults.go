package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultFeedURL        = "https://hq.sinajs.cn/list="
	DefaultFeedReferer    = "https://finance.sina.com.cn"
	DefaultFeedUserAgent  = "Mozilla/5.0"
	DefaultFeedTimeout    = 3 * time.Second
	DefaultRefreshSeconds = 2
	DefaultBidAskDisplay  = "qty"
	DefaultForeground     = "#FFFFFF"
	DefaultWatchCode      = "sh000001"
	DefaultMetricsPath    = "/metrics"
)

func (c *Config) applyDefaults() {
	// Feed defaults
	if c.Feed.URL == "" {
		c.Feed.URL = DefaultFeedURL
	}
	if c.Feed.Referer == "" {
		c.Feed.Referer = DefaultFeedReferer
	}
	if c.Feed.UserAgent == "" {
		c.Feed.UserAgent = DefaultFeedUserAgent
	}
	if c.Feed.Timeout == 0 {
		c.Feed.Timeout = DefaultFeedTimeout
	}

	// Watchlist defaults: an empty list falls back to the SSE composite
	// index; an empty checked subset displays the whole watchlist.
	if len(c.Watchlist.Codes) == 0 {
		c.Watchlist.Codes = []string{DefaultWatchCode}
	}
	if len(c.Watchlist.CheckedCodes) == 0 {
		c.Watchlist.CheckedCodes = append([]string(nil), c.Watchlist.Codes...)
	}

	// Display defaults
	if c.Display.RefreshSeconds == 0 {
		c.Display.RefreshSeconds = DefaultRefreshSeconds
	}
	if c.Display.BidAskDisplay == "" {
		c.Display.BidAskDisplay = DefaultBidAskDisplay
	}
	if c.Display.Foreground == "" {
		c.Display.Foreground = DefaultForeground
	}

	// A fully hidden table is useless; fall back to the minimal set.
	if c.Columns.none() {
		c.Columns.Name = true
		c.Columns.Price = true
		c.Columns.ChangePct = true
	}

	// Metrics defaults
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
