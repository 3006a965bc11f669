// Package scheduler implements the Refresh Scheduler component.
//
// The Refresh Scheduler:
//   - Drives fetch -> parse -> derive -> project on a fixed interval
//   - Keeps at most one fetch in flight, skipping overlapping ticks
//   - Re-sorts feed results to watchlist request order
//   - Retains the last good table across failed cycles
//   - Pauses while the display surface is hidden, resumes immediately
package scheduler
