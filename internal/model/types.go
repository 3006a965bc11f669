package model

// -----------------------------------------------------------------------------
// Feed Types
// -----------------------------------------------------------------------------

// Date is the feed's quote date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Time is the feed's quote time.
type Time struct {
	Hour   int
	Minute int
	Second int
}

// RawQuote is one decoded feed line for a single instrument.
type RawQuote struct {
	Code      string  // Instrument code with market prefix (e.g. "sh600519")
	Name      string  // Display name as sent by the feed
	Open      float64 // Opening price, 0 before the first tick
	PrevClose float64 // Previous session close
	Price     float64 // Last trade price, 0 before the first tick
	High      float64 // Day high
	Low       float64 // Day low
	Bid1      float64 // Best bid price
	Ask1      float64 // Best ask price
	Volume    float64 // Traded volume (shares)
	Amount    float64 // Traded amount (CNY)

	// Five-level order book. Quantities are share counts; 100 shares = 1 lot.
	BidQty   [5]int64
	BidPrice [5]float64
	AskQty   [5]int64
	AskPrice [5]float64

	// Parsed but unused downstream; retained for forward compatibility.
	Date Date
	Time Time
}

// -----------------------------------------------------------------------------
// Trading Phase
// -----------------------------------------------------------------------------

// Phase classifies the trading state of an instrument for one cycle.
// Exactly one of the two variants applies.
type Phase interface {
	isPhase()
}

// CallAuction is the batched-order phase (9:15-9:25, 14:57-15:00): the book
// shows a single crossed price (bid1 == ask1 > 0) plus matched/unmatched
// volume instead of regular depth.
type CallAuction struct {
	PairedQty   int64 // Shares matched at the crossed price
	UnpairedQty int64 // Signed imbalance: >0 buy-side surplus, <0 sell-side
}

// Continuous is the regular matching phase.
type Continuous struct {
	BidTouched bool // Last trade price equals best bid
	AskTouched bool // Last trade price equals best ask
}

func (CallAuction) isPhase() {}
func (Continuous) isPhase()  {}

// -----------------------------------------------------------------------------
// Derived Types
// -----------------------------------------------------------------------------

// Candle carries the five raw prices a candlestick cell is drawn from.
type Candle struct {
	Open  float64
	Close float64 // Current price
	High  float64
	Low   float64
	Ref   float64 // Previous close, drawn as the dashed reference line
}

// Signs holds per-metric color directions: +1 up, 0 neutral, -1 down.
// They travel separately from the formatted strings so the render layer
// can color cells without reparsing text.
type Signs struct {
	Change    int
	Committee int
	Average   int
	Bid1      int
	Ask1      int
}

// SignOf returns the color direction of v relative to zero.
func SignOf(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// DerivedQuote is one instrument's fully computed, display-ready record.
// All fields are recomputed from scratch every refresh cycle.
type DerivedQuote struct {
	Code      string // Display code, full or prefix-stripped
	Name      string // Display name, full or truncated
	Price     string // Current price with trailing ↑/↓/space marker
	Change    string // Signed change amount
	ChangePct string // Signed change percent with trailing %
	Bid1      string // Best-bid label per display mode, with touched marker
	Ask1      string // Best-ask label per display mode, with touched marker
	Committee string // Signed order-book imbalance percent
	Volume    string // Human-scaled traded volume
	Amount    string // Human-scaled traded amount
	Average   string // Volume-weighted average price

	Candle Candle
	Signs  Signs
}

// -----------------------------------------------------------------------------
// Columns
// -----------------------------------------------------------------------------

// Column identifies one of the twelve displayable fields. The declaration
// order is the canonical display order; visibility never reorders it.
type Column int

const (
	ColCode Column = iota
	ColName
	ColPrice
	ColChange
	ColChangePct
	ColBid1
	ColAsk1
	ColCommittee
	ColVolume
	ColAmount
	ColAverage
	ColCandle

	numColumns
)

var columnHeaders = [numColumns]string{
	"代码", "名称", "现价", "涨跌值", "涨跌幅", "买一",
	"卖一", "委比", "成交量", "成交额", "均价", "K线",
}

// AllColumns returns the full superset in canonical order.
func AllColumns() []Column {
	cols := make([]Column, numColumns)
	for i := range cols {
		cols[i] = Column(i)
	}
	return cols
}

// Header returns the display label for the column.
func (c Column) Header() string {
	if c < 0 || c >= numColumns {
		return ""
	}
	return columnHeaders[c]
}

// Text returns the formatted cell text for the column. The candlestick
// column has no text; its payload travels as q.Candle.
func (q DerivedQuote) Text(c Column) string {
	switch c {
	case ColCode:
		return q.Code
	case ColName:
		return q.Name
	case ColPrice:
		return q.Price
	case ColChange:
		return q.Change
	case ColChangePct:
		return q.ChangePct
	case ColBid1:
		return q.Bid1
	case ColAsk1:
		return q.Ask1
	case ColCommittee:
		return q.Committee
	case ColVolume:
		return q.Volume
	case ColAmount:
		return q.Amount
	case ColAverage:
		return q.Average
	default:
		return ""
	}
}

// Sign returns the color direction for the column's cell. Price and both
// change columns share the change direction; untinted columns return 0.
func (q DerivedQuote) Sign(c Column) int {
	switch c {
	case ColPrice, ColChange, ColChangePct:
		return q.Signs.Change
	case ColCommittee:
		return q.Signs.Committee
	case ColAverage:
		return q.Signs.Average
	case ColBid1:
		return q.Signs.Bid1
	case ColAsk1:
		return q.Signs.Ask1
	default:
		return 0
	}
}

// -----------------------------------------------------------------------------
// Display Modes
// -----------------------------------------------------------------------------

// BidAskMode selects what the best-bid/best-ask labels show.
type BidAskMode string

const (
	ModeQty   BidAskMode = "qty"   // lot count only
	ModePrice BidAskMode = "price" // price only
	ModeBoth  BidAskMode = "both"  // count(price)
)

// Valid reports whether m is one of the three known modes.
func (m BidAskMode) Valid() bool {
	switch m {
	case ModeQty, ModePrice, ModeBoth:
		return true
	}
	return false
}
