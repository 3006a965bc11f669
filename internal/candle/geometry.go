package candle

import (
	"math"

	"github.com/lwei/stockticker/internal/model"
)

// Rect is an axis-aligned rectangle in render coordinates, Y down.
type Rect struct {
	X, Y, W, H float64
}

// Segment is a straight line between two points.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Geometry is the normalized drawing plan for one candlestick cell.
type Geometry struct {
	RefLine   Segment  // dashed previous-close line, spans the body width
	Body      Rect     // open/close body
	Doji      bool     // close == open: draw Body as a one-pixel line at Body.Y
	UpperWick *Segment // nil when the high coincides with the body top
	LowerWick *Segment // nil when the low coincides with the body bottom
	BodySign  int      // +1 close>open, -1 close<open, 0 equal
	FillSolid bool     // solid body only when close < open
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Layout maps the five prices of c into cell, with scale tracking the
// render layer's font scaling (clamped to 0.5..1.5).
//
// The vertical axis spans min(low, ref) to max(high, ref), so the
// reference line stays visible even outside the day's range. When all
// three collapse to one value, everything sits at the vertical midline.
func Layout(c model.Candle, cell Rect, scale float64) Geometry {
	high, low := c.High, c.Low
	if high < low {
		high, low = low, high
	}

	rect := Rect{X: cell.X + 2, Y: cell.Y + 2, W: cell.W - 4, H: cell.H - 4}
	sc := clamp(scale, 0.5, 1.5)

	// Headroom for wicks: ~12% of the cell at scale 1, up to ~18%.
	vpad := math.Max(2, rect.H*(0.12+0.06*(sc-1)))
	hEff := math.Max(2, rect.H-2*vpad)
	kTop := rect.Y + vpad

	lo := math.Min(low, c.Ref)
	hi := math.Max(high, c.Ref)
	yFor := func(v float64) float64 {
		y := 0.5
		if !(high == low && low == c.Ref) {
			y = (v - lo) / (hi - lo)
		}
		return kTop + (1-y)*hEff
	}

	yOpen := yFor(c.Open)
	yClose := yFor(c.Close)
	yHigh := yFor(high)
	yLow := yFor(low)
	yRef := yFor(c.Ref)

	bodyW := clamp(rect.W*0.4*sc, 5, 10)
	x := rect.X + rect.W/2

	top := math.Min(yOpen, yClose)
	bot := math.Max(yOpen, yClose)
	bodyH := math.Max(2, bot-top)

	g := Geometry{
		RefLine:   Segment{X1: x - bodyW, Y1: yRef, X2: x + bodyW, Y2: yRef},
		Body:      Rect{X: x - bodyW/2, Y: top, W: bodyW, H: bodyH},
		Doji:      c.Close == c.Open,
		BodySign:  model.SignOf(c.Close - c.Open),
		FillSolid: c.Close < c.Open,
	}

	// Wick only where it extends past the body edge.
	if yHigh < top {
		g.UpperWick = &Segment{X1: x, Y1: yHigh, X2: x, Y2: top}
	}
	if yLow > bot {
		g.LowerWick = &Segment{X1: x, Y1: bot, X2: x, Y2: yLow}
	}

	return g
}
