package quote

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lwei/stockticker/internal/model"
)

// Touched markers: the bid marker trails its label, the ask marker leads
// it, so both point at the order-book boundary between the two columns.
const (
	bidTouchedMarker = "<"
	askTouchedMarker = ">"
	noMarker         = " "
)

// roundEq reports price equality after rounding to dec fraction digits,
// so float noise below the display precision does not flip a marker.
func roundEq(a, b float64, dec int) bool {
	p := math.Pow(10, float64(dec))
	return math.Round(a*p) == math.Round(b*p)
}

func formatPrice(v float64, dec int) string {
	return strconv.FormatFloat(v, 'f', dec, 64)
}

// auctionLabels renders both sides of a crossed book. The paired lot
// count goes on the bid label, the signed unpaired count on the ask
// label; no touched markers in this phase.
func auctionLabels(ph model.CallAuction, bid1, ask1 float64, dec int, mode model.BidAskMode) (string, string) {
	paired := ph.PairedQty / 100
	unpaired := ph.UnpairedQty / 100
	bPrice := formatPrice(bid1, dec)
	sPrice := formatPrice(ask1, dec)

	switch mode {
	case model.ModePrice:
		return bPrice, sPrice
	case model.ModeBoth:
		return fmt.Sprintf("%d(%s)", paired, bPrice), fmt.Sprintf("%+d(%s)", unpaired, sPrice)
	default:
		return strconv.FormatInt(paired, 10), fmt.Sprintf("%+d", unpaired)
	}
}

// bidLabel renders the best-bid cell in continuous trading. A zero bid
// renders as a dash placeholder, never as "0".
func bidLabel(raw model.RawQuote, touched bool, dec int, mode model.BidAskMode) string {
	marker := noMarker
	if touched {
		marker = bidTouchedMarker
	}
	if raw.Bid1 <= 0 {
		return "-" + marker
	}

	cnt := strconv.FormatInt(raw.BidQty[0]/100, 10)
	price := formatPrice(raw.Bid1, dec)
	switch mode {
	case model.ModePrice:
		return price + marker
	case model.ModeBoth:
		return cnt + "(" + price + ")" + marker
	default:
		return cnt + marker
	}
}

// askLabel renders the best-ask cell in continuous trading, marker first.
func askLabel(raw model.RawQuote, touched bool, dec int, mode model.BidAskMode) string {
	marker := noMarker
	if touched {
		marker = askTouchedMarker
	}
	if raw.Ask1 <= 0 {
		return marker + "-"
	}

	cnt := strconv.FormatInt(raw.AskQty[0]/100, 10)
	price := formatPrice(raw.Ask1, dec)
	switch mode {
	case model.ModePrice:
		return marker + price
	case model.ModeBoth:
		return marker + cnt + "(" + price + ")"
	default:
		return marker + cnt
	}
}

// ScaleVolume renders a share count human-scaled: raw below 1e4, 万
// (x1e4) below 1e8, 亿 (x1e8) above.
func ScaleVolume(v float64) string {
	switch {
	case v < 1e4:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case v < 1e8:
		return fmt.Sprintf("%.2f万", v/1e4)
	default:
		return fmt.Sprintf("%.2f亿", v/1e8)
	}
}

// ScaleAmount renders a CNY amount human-scaled: 万 below 1e8, 亿 below
// 1e12, 万亿 above.
func ScaleAmount(v float64) string {
	switch {
	case v < 1e8:
		return fmt.Sprintf("%.2f万", v/1e4)
	case v < 1e12:
		return fmt.Sprintf("%.2f亿", v/1e8)
	default:
		return fmt.Sprintf("%.2f万亿", v/1e12)
	}
}
