// Package quote classifies trading phase and computes derived fields.
//
// Derive is the heart of the pipeline: it takes one RawQuote and produces
// the typed, signed, display-ready DerivedQuote, handling:
//   - call-auction vs continuous-trading semantics (crossed-book detection)
//   - pre-open price substitution and degenerate first-tick fallback
//   - change, change percent, volume-weighted average, committee ratio,
//     each guarded against zero denominators
//   - human-scaled volume/amount strings and ETF 3-decimal formatting
//   - per-metric color signs consumed by the render layer
package quote
