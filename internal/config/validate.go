package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/lwei/stockticker/internal/model"
)

var (
	codePattern       = regexp.MustCompile(`^(sh|sz|bj|hk)\d+$`)
	foregroundPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validRefreshSeconds mirrors the interval choices offered in the
// settings UI.
var validRefreshSeconds = map[int]bool{
	1: true, 2: true, 3: true, 5: true, 10: true, 15: true, 30: true, 60: true,
}

// Validate checks that all required fields are set and values are valid.
// Bad display modes and visibility input are rejected here, at the
// configuration boundary, so they never reach the derivation math.
func (c *Config) Validate() error {
	if c.Feed.URL == "" {
		return errors.New("feed.url is required")
	}
	if c.Feed.Timeout <= 0 {
		return errors.New("feed.timeout must be positive")
	}

	if len(c.Watchlist.Codes) == 0 {
		return errors.New("watchlist.codes is required")
	}
	for _, code := range c.Watchlist.Codes {
		if !codePattern.MatchString(code) {
			return fmt.Errorf("watchlist.codes: invalid instrument code %q", code)
		}
	}

	if !validRefreshSeconds[c.Display.RefreshSeconds] {
		return fmt.Errorf("display.refresh_seconds must be one of 1, 2, 3, 5, 10, 15, 30, 60, got %d", c.Display.RefreshSeconds)
	}
	if !model.BidAskMode(c.Display.BidAskDisplay).Valid() {
		return fmt.Errorf("display.bid_ask_display must be qty, price, or both, got %q", c.Display.BidAskDisplay)
	}
	if c.Display.NameLength < 0 {
		return fmt.Errorf("display.name_length must be >= 0, got %d", c.Display.NameLength)
	}
	if !foregroundPattern.MatchString(c.Display.Foreground) {
		return fmt.Errorf("display.foreground must be a #rrggbb color, got %q", c.Display.Foreground)
	}

	return nil
}
