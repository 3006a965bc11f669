// Package model defines the shared data types of the quote pipeline.
//
// The pipeline is: raw feed text -> RawQuote -> DerivedQuote -> projected
// table row. Each refresh cycle recomputes every record from scratch;
// nothing in this package carries state between cycles.
//
// Conventions:
//   - Prices: float64 CNY, non-negative, 0 meaning "no data yet"
//   - Quantities: share counts (int64); 100 shares = 1 lot
//   - Color signs: int in {-1, 0, +1}, mapped by the render layer
package model
