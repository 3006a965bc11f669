package board

import (
	"github.com/lwei/stockticker/internal/model"
)

// Semantic palette, exported for render layers. CN market convention:
// up is red, down is green.
const (
	UpColor      = "#dd2100"
	DownColor    = "#019933"
	NeutralColor = "#494949"
)

// Visibility selects which columns of the fixed superset are shown.
// Missing keys mean hidden. Visibility never reorders columns.
type Visibility map[model.Column]bool

// Cell is one rendered table cell. The candlestick column carries its
// five-price payload instead of text; the render layer must treat that
// column specially.
type Cell struct {
	Text       string
	RightAlign bool
	Sign       int // +1 up, 0 neutral, -1 down
	Candle     *model.Candle
}

// Table is the render-facing payload of one refresh cycle. It is a value
// computed per call; nothing here is retained or mutated in place between
// cycles, so visibility changes cannot race a redraw.
type Table struct {
	Columns   []model.Column // visible columns in canonical order
	Headers   []string       // display labels, same order as Columns
	Rows      [][]Cell       // one slice per instrument, watchlist order
	CandleCol int            // index into Columns of the candlestick, -1 when hidden
}

// rightAlign: everything right-aligns except the name, the candlestick,
// and the best-ask (whose leading marker must hug the order-book boundary).
func rightAlign(c model.Column) bool {
	switch c {
	case model.ColName, model.ColCandle, model.ColAsk1:
		return false
	}
	return true
}

// Project reduces derived rows to the visible column subset. Alignment
// and the candlestick column index are re-derived on every call since
// visibility may change between cycles.
func Project(rows []model.DerivedQuote, vis Visibility) Table {
	t := Table{CandleCol: -1}

	for _, c := range model.AllColumns() {
		if !vis[c] {
			continue
		}
		if c == model.ColCandle {
			t.CandleCol = len(t.Columns)
		}
		t.Columns = append(t.Columns, c)
		t.Headers = append(t.Headers, c.Header())
	}

	t.Rows = make([][]Cell, 0, len(rows))
	for i := range rows {
		q := &rows[i]
		cells := make([]Cell, len(t.Columns))
		for j, c := range t.Columns {
			cells[j] = Cell{
				Text:       q.Text(c),
				RightAlign: rightAlign(c),
				Sign:       q.Sign(c),
			}
			if c == model.ColCandle {
				k := q.Candle
				cells[j].Candle = &k
			}
		}
		t.Rows = append(t.Rows, cells)
	}

	return t
}
