// Package candle computes intraday candlestick geometry.
//
// Layout turns five prices (open, close, high, low, previous close) plus
// a cell rectangle and scale factor into normalized drawing primitives.
// Color and fill policy live with the caller; by convention the body is
// hollow for close >= open and filled solid for close < open.
package candle
