package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lwei/stockticker/internal/board"
	"github.com/lwei/stockticker/internal/candle"
	"github.com/lwei/stockticker/internal/model"
	"github.com/lwei/stockticker/internal/watchlist"
)

// ANSI escapes. CN market convention: up is red, down is green.
const (
	ansiReset = "\x1b[0m"
	ansiUp    = "\x1b[31m"
	ansiDown  = "\x1b[32m"
	ansiDim   = "\x1b[2m"
	ansiErr   = "\x1b[91m"
)

// terminalSink is the stand-in render layer: it draws each projected
// table to the terminal, applying the per-cell color signs the GUI
// would map onto its palette.
type terminalSink struct {
	mu    sync.Mutex
	out   io.Writer
	store *watchlist.Store
}

func newTerminalSink(out io.Writer, store *watchlist.Store) *terminalSink {
	return &terminalSink{out: out, store: store}
}

func (s *terminalSink) Render(t board.Table, errText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	semantic := s.store.Snapshot().DefaultColor

	var b strings.Builder
	if errText != "" {
		b.WriteString(ansiErr + errText + ansiReset + "\n")
	}

	widths := columnWidths(t)

	for j, h := range t.Headers {
		if j > 0 {
			b.WriteString("  ")
		}
		b.WriteString(pad(h, widths[j], true))
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		for j, cell := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			text := cell.Text
			sign := cell.Sign
			if j == t.CandleCol && cell.Candle != nil {
				text, sign = candleGlyph(*cell.Candle)
			}
			prefix, suffix := colorFor(sign, semantic)
			b.WriteString(prefix + pad(text, widths[j], cell.RightAlign) + suffix)
		}
		b.WriteString("\n")
	}
	b.WriteString(ansiDim + strings.Repeat("-", 8) + ansiReset + "\n")

	fmt.Fprint(s.out, b.String())
}

func colorFor(sign int, semantic bool) (string, string) {
	if !semantic {
		return "", ""
	}
	switch {
	case sign > 0:
		return ansiUp, ansiReset
	case sign < 0:
		return ansiDown, ansiReset
	default:
		return "", ""
	}
}

// candleGlyph collapses the candlestick geometry into a single block
// glyph whose height tracks where the body sits in the cell.
func candleGlyph(k model.Candle) (string, int) {
	cell := candle.Rect{W: 24, H: 16}
	g := candle.Layout(k, cell, 1.0)

	blocks := []rune("▁▂▃▄▅▆▇█")
	mid := g.Body.Y + g.Body.H/2
	rel := 1 - (mid-cell.Y)/cell.H
	idx := int(rel*float64(len(blocks)-1) + 0.5)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(blocks) {
		idx = len(blocks) - 1
	}
	return string(blocks[idx]), g.BodySign
}

func columnWidths(t board.Table) []int {
	widths := make([]int, len(t.Headers))
	for j, h := range t.Headers {
		widths[j] = displayWidth(h)
	}
	for _, row := range t.Rows {
		for j, cell := range row {
			if j == t.CandleCol {
				continue
			}
			if w := displayWidth(cell.Text); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

func pad(s string, width int, right bool) string {
	gap := width - displayWidth(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// displayWidth approximates terminal cells: CJK and fullwidth runes
// occupy two columns.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r >= 0x2E80 {
			w += 2
		} else {
			w++
		}
	}
	return w
}
