package feed

import (
	"strconv"
	"strings"

	"github.com/lwei/stockticker/internal/model"
)

// minFields is the minimum comma-separated payload length of a usable
// quote line. The feed answers unknown or delisted codes with a short
// placeholder payload, which must be skipped rather than escalated.
const minFields = 30

// Offsets of the five-level order book inside the payload: quantities and
// prices alternate with stride 2, bids first.
const (
	bidOffset = 10
	askOffset = 20
)

// Parse decodes one feed response body into typed quotes. Each non-empty
// line is one `ident="field1,field2,...";` assignment; malformed lines are
// dropped silently.
func Parse(text string) []model.RawQuote {
	var quotes []model.RawQuote
	for _, line := range strings.Split(text, "\n") {
		if q, ok := parseLine(line); ok {
			quotes = append(quotes, q)
		}
	}
	return quotes
}

// parseLine decodes a single assignment line. The identifier segment ends
// with the instrument code (e.g. hq_str_sh600519); the payload is the
// quoted comma-separated field list.
func parseLine(line string) (model.RawQuote, bool) {
	if line == "" || !strings.Contains(line, `"`) {
		return model.RawQuote{}, false
	}

	ident, payload, found := strings.Cut(line, `="`)
	if !found {
		return model.RawQuote{}, false
	}

	heads := strings.Split(ident, "_")
	code := heads[len(heads)-1]

	payload = strings.TrimSuffix(strings.TrimSpace(payload), `;`)
	payload = strings.TrimSuffix(payload, `"`)
	parts := strings.Split(payload, ",")
	if len(parts) < minFields {
		return model.RawQuote{}, false
	}

	q := model.RawQuote{
		Code:      code,
		Name:      parts[0],
		Open:      parseFloat(parts[1]),
		PrevClose: parseFloat(parts[2]),
		Price:     parseFloat(parts[3]),
		High:      parseFloat(parts[4]),
		Low:       parseFloat(parts[5]),
		Bid1:      parseFloat(parts[6]),
		Ask1:      parseFloat(parts[7]),
		Volume:    parseFloat(parts[8]),
		Amount:    parseFloat(parts[9]),
	}

	for i := 0; i < 5; i++ {
		q.BidQty[i] = parseInt(parts[bidOffset+2*i])
		q.BidPrice[i] = parseFloat(parts[bidOffset+2*i+1])
		q.AskQty[i] = parseInt(parts[askOffset+2*i])
		q.AskPrice[i] = parseFloat(parts[askOffset+2*i+1])
	}

	if len(parts) > 30 {
		q.Date = parseDate(parts[30])
	}
	if len(parts) > 31 {
		q.Time = parseTime(parts[31])
	}

	return q, true
}

// parseFloat converts a price/amount field, treating the empty string as 0.
// The feed omits fields outside trading hours.
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseInt converts a quantity field, treating the empty string as 0.
func parseInt(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseDate(s string) model.Date {
	var d model.Date
	if f := strings.Split(s, "-"); len(f) == 3 {
		d.Year = int(parseInt(f[0]))
		d.Month = int(parseInt(f[1]))
		d.Day = int(parseInt(f[2]))
	}
	return d
}

func parseTime(s string) model.Time {
	var t model.Time
	if f := strings.Split(s, ":"); len(f) == 3 {
		t.Hour = int(parseInt(f[0]))
		t.Minute = int(parseInt(f[1]))
		t.Second = int(parseInt(f[2]))
	}
	return t
}
