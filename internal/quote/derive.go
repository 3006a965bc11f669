package quote

import (
	"fmt"

	"github.com/lwei/stockticker/internal/model"
)

// Options are the external display parameters applied during derivation.
// They are pass-through formatting knobs, not derived state.
type Options struct {
	Mode       model.BidAskMode // best-bid/ask label mode
	NameLength int              // truncate names to this many runes, 0 = full
	ShortCode  bool             // strip the two-letter market prefix
}

// IsETF reports whether the instrument displays with 3 fraction digits.
// ETF-class codes have '1' or '5' as the third character.
func IsETF(code string) bool {
	return len(code) >= 3 && (code[2] == '1' || code[2] == '5')
}

// Classify determines the trading phase from the raw order book. The
// crossed book (bid1 == ask1 > 0) is the call-auction signature; the
// feed stores auction paired shares in the first ask-quantity slot and
// the unmatched surplus in the second ask/bid slots.
func Classify(raw model.RawQuote, dec int) model.Phase {
	if raw.Bid1 == raw.Ask1 && raw.Bid1 > 0 {
		unpaired := raw.BidQty[1]
		if raw.AskQty[1] > 0 {
			unpaired = -raw.AskQty[1]
		}
		return model.CallAuction{
			PairedQty:   raw.AskQty[0],
			UnpairedQty: unpaired,
		}
	}
	return model.Continuous{
		BidTouched: raw.Bid1 > 0 && roundEq(raw.Price, raw.Bid1, dec),
		AskTouched: raw.Ask1 > 0 && roundEq(raw.Price, raw.Ask1, dec),
	}
}

// Derive turns one raw quote into its display-ready record.
//
// Phase classification and the touched markers use the raw trade price;
// the pre-open substitution (price 0 -> previous close) happens after, so
// a quote with no trades yet never shows a spurious marker.
func Derive(raw model.RawQuote, opts Options) model.DerivedQuote {
	dec := 2
	if IsETF(raw.Code) {
		dec = 3
	}
	mode := opts.Mode
	if !mode.Valid() {
		mode = model.ModeQty
	}

	phase := Classify(raw, dec)

	price := raw.Price
	open, high, low := raw.Open, raw.High, raw.Low

	var bid1, ask1 string
	var bid1Sign, ask1Sign int
	switch ph := phase.(type) {
	case model.CallAuction:
		// The book is crossed at a single clearing price.
		price = raw.Ask1
		bid1, ask1 = auctionLabels(ph, raw.Bid1, raw.Ask1, dec, mode)
		s := model.SignOf(float64(ph.UnpairedQty))
		bid1Sign, ask1Sign = s, s
	case model.Continuous:
		bid1 = bidLabel(raw, ph.BidTouched, dec, mode)
		ask1 = askLabel(raw, ph.AskTouched, dec, mode)
		// Bid side always renders up-colored, ask side down-colored.
		bid1Sign, ask1Sign = 1, -1
	}

	// Pre-open: no trade yet, fall back to the previous close.
	if price == 0 {
		price = raw.PrevClose
	}
	// Degenerate first tick: no opening price either.
	if open == 0 {
		open, high, low = price, price, price
	}

	var change, changePct float64
	if raw.PrevClose != 0 {
		change = price - raw.PrevClose
		changePct = (price/raw.PrevClose - 1) * 100
	}

	avg := raw.PrevClose
	if raw.Volume > 0 {
		avg = raw.Amount / raw.Volume
	}

	var bidSum, askSum int64
	for i := 0; i < 5; i++ {
		bidSum += raw.BidQty[i]
		askSum += raw.AskQty[i]
	}
	var committee float64
	if bidSum+askSum > 0 {
		committee = 100 * float64(bidSum-askSum) / float64(bidSum+askSum)
	}

	// Day-extreme marker, suppressed on a flat range so a no-trade day
	// does not arrow every row.
	arrow := " "
	if high > low {
		switch price {
		case high:
			arrow = "↑"
		case low:
			arrow = "↓"
		}
	}

	return model.DerivedQuote{
		Code:      displayCode(raw.Code, opts.ShortCode),
		Name:      displayName(raw.Name, opts.NameLength),
		Price:     fmt.Sprintf("%.*f%s", dec, price, arrow),
		Change:    fmt.Sprintf("%+.*f", dec, change),
		ChangePct: fmt.Sprintf("%+.2f%%", changePct),
		Bid1:      bid1,
		Ask1:      ask1,
		Committee: fmt.Sprintf("%+.2f%%", committee),
		Volume:    ScaleVolume(raw.Volume),
		Amount:    ScaleAmount(raw.Amount),
		Average:   fmt.Sprintf("%.*f", dec, avg),
		Candle: model.Candle{
			Open:  open,
			Close: price,
			High:  high,
			Low:   low,
			Ref:   raw.PrevClose,
		},
		Signs: model.Signs{
			Change:    model.SignOf(change),
			Committee: model.SignOf(committee),
			Average:   model.SignOf(avg - raw.PrevClose),
			Bid1:      bid1Sign,
			Ask1:      ask1Sign,
		},
	}
}

func displayCode(code string, short bool) string {
	if short && len(code) > 2 {
		return code[2:]
	}
	return code
}

func displayName(name string, n int) string {
	if n <= 0 {
		return name
	}
	r := []rune(name)
	if len(r) <= n {
		return name
	}
	return string(r[:n])
}
