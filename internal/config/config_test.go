package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ticker.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func validYAML() string {
	return `
feed:
  url: https://hq.sinajs.cn/list=
  timeout: 3s
watchlist:
  codes: [sh600519, sz000001]
  checked_codes: [sh600519]
display:
  refresh_seconds: 2
  bid_ask_display: qty
columns:
  name: true
  price: true
  change_pct: true
`
}

func TestLoad(t *testing.T) {
	path := writeTempFile(t, validYAML())

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Feed.URL != "https://hq.sinajs.cn/list=" {
		t.Errorf("Feed.URL = %q, want the configured endpoint", cfg.Feed.URL)
	}
	if cfg.Feed.Timeout != 3*time.Second {
		t.Errorf("Feed.Timeout = %v, want 3s", cfg.Feed.Timeout)
	}
	if len(cfg.Watchlist.Codes) != 2 {
		t.Errorf("Watchlist.Codes = %v, want 2 entries", cfg.Watchlist.Codes)
	}
	if cfg.Display.RefreshSeconds != 2 {
		t.Errorf("Display.RefreshSeconds = %d, want 2", cfg.Display.RefreshSeconds)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load on a missing file returned nil error")
	}
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("TICKER_FEED_URL", "https://example.test/list=")

	path := writeTempFile(t, `
feed:
  url: ${TICKER_FEED_URL}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Feed.URL != "https://example.test/list=" {
		t.Errorf("Feed.URL = %q, want expanded env value", cfg.Feed.URL)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, "{}\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Feed.URL != DefaultFeedURL {
		t.Errorf("Feed.URL = %q, want %q", cfg.Feed.URL, DefaultFeedURL)
	}
	if cfg.Feed.Timeout != DefaultFeedTimeout {
		t.Errorf("Feed.Timeout = %v, want %v", cfg.Feed.Timeout, DefaultFeedTimeout)
	}
	if len(cfg.Watchlist.Codes) != 1 || cfg.Watchlist.Codes[0] != DefaultWatchCode {
		t.Errorf("Watchlist.Codes = %v, want fallback %q", cfg.Watchlist.Codes, DefaultWatchCode)
	}
	if cfg.Display.RefreshSeconds != DefaultRefreshSeconds {
		t.Errorf("Display.RefreshSeconds = %d, want %d", cfg.Display.RefreshSeconds, DefaultRefreshSeconds)
	}
	if cfg.Display.BidAskDisplay != DefaultBidAskDisplay {
		t.Errorf("Display.BidAskDisplay = %q, want %q", cfg.Display.BidAskDisplay, DefaultBidAskDisplay)
	}
	if cfg.Display.Foreground != DefaultForeground {
		t.Errorf("Display.Foreground = %q, want %q", cfg.Display.Foreground, DefaultForeground)
	}
	if cfg.Metrics.Path != DefaultMetricsPath {
		t.Errorf("Metrics.Path = %q, want %q", cfg.Metrics.Path, DefaultMetricsPath)
	}

	// All columns hidden falls back to the minimal visible set.
	if !cfg.Columns.Name || !cfg.Columns.Price || !cfg.Columns.ChangePct {
		t.Errorf("Columns = %+v, want name/price/change_pct fallback", cfg.Columns)
	}
}

func TestLoadWithDefaultsChecksAllCodes(t *testing.T) {
	path := writeTempFile(t, `
watchlist:
  codes: [sh600519, sz000001]
`)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}
	if len(cfg.Watchlist.CheckedCodes) != 2 {
		t.Errorf("CheckedCodes = %v, want all codes checked by default", cfg.Watchlist.CheckedCodes)
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{
		Watchlist: WatchlistConfig{
			Codes:        []string{" SH600519 ", "600519", "000001", "688981", "hk00700", ""},
			CheckedCodes: []string{"600519", "sz399001"},
		},
	}

	cfg.normalize()

	wantCodes := []string{"sh600519", "sz000001", "sh688981", "hk00700"}
	if len(cfg.Watchlist.Codes) != len(wantCodes) {
		t.Fatalf("Codes = %v, want %v", cfg.Watchlist.Codes, wantCodes)
	}
	for i, code := range wantCodes {
		if cfg.Watchlist.Codes[i] != code {
			t.Errorf("Codes[%d] = %q, want %q", i, cfg.Watchlist.Codes[i], code)
		}
	}

	// Checked codes outside the watchlist are dropped.
	if len(cfg.Watchlist.CheckedCodes) != 1 || cfg.Watchlist.CheckedCodes[0] != "sh600519" {
		t.Errorf("CheckedCodes = %v, want [sh600519]", cfg.Watchlist.CheckedCodes)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Feed: FeedConfig{URL: DefaultFeedURL, Timeout: 3 * time.Second},
			Watchlist: WatchlistConfig{
				Codes:        []string{"sh600519"},
				CheckedCodes: []string{"sh600519"},
			},
			Display: DisplayConfig{
				RefreshSeconds: 2,
				BidAskDisplay:  "qty",
				Foreground:     "#FFFFFF",
			},
			Columns: ColumnsConfig{Name: true, Price: true},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing feed url", func(c *Config) { c.Feed.URL = "" }, "feed.url is required"},
		{"zero timeout", func(c *Config) { c.Feed.Timeout = 0 }, "feed.timeout must be positive"},
		{"empty watchlist", func(c *Config) { c.Watchlist.Codes = nil }, "watchlist.codes is required"},
		{"bad code", func(c *Config) { c.Watchlist.Codes = []string{"ny600519"} }, "invalid instrument code"},
		{"bad refresh", func(c *Config) { c.Display.RefreshSeconds = 4 }, "display.refresh_seconds must be one of"},
		{"bad mode", func(c *Config) { c.Display.BidAskDisplay = "count" }, "display.bid_ask_display must be"},
		{"negative name length", func(c *Config) { c.Display.NameLength = -1 }, "display.name_length must be >= 0"},
		{"bad foreground", func(c *Config) { c.Display.Foreground = "white" }, "display.foreground must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate returned %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate returned %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAndValidate(t *testing.T) {
	path := writeTempFile(t, validYAML())
	if _, err := LoadAndValidate(path); err != nil {
		t.Fatalf("LoadAndValidate failed: %v", err)
	}

	bad := writeTempFile(t, `
display:
  refresh_seconds: 7
`)
	if _, err := LoadAndValidate(bad); err == nil {
		t.Error("LoadAndValidate accepted an invalid refresh interval")
	}
}
