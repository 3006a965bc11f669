package config

import "strings"

// normalize cleans user-entered watchlist codes before validation: trim,
// lowercase, de-duplicate preserving order, infer the market prefix for
// bare numeric codes (6xxxxxx lists in Shanghai, everything else
// Shenzhen), and drop checked codes not present in the watchlist.
func (c *Config) normalize() {
	c.Watchlist.Codes = normalizeCodes(c.Watchlist.Codes)

	member := make(map[string]struct{}, len(c.Watchlist.Codes))
	for _, code := range c.Watchlist.Codes {
		member[code] = struct{}{}
	}

	checked := normalizeCodes(c.Watchlist.CheckedCodes)
	kept := checked[:0]
	for _, code := range checked {
		if _, ok := member[code]; ok {
			kept = append(kept, code)
		}
	}
	c.Watchlist.CheckedCodes = kept
}

func normalizeCodes(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		s := strings.ToLower(strings.TrimSpace(raw))
		if s == "" {
			continue
		}
		if isDigits(s) {
			if strings.HasPrefix(s, "6") {
				s = "sh" + s
			} else {
				s = "sz" + s
			}
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
