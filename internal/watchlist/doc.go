// Package watchlist holds the live settings snapshot shared between the
// config watcher and the refresh scheduler.
//
// The scheduler reads one immutable Snapshot per cycle; config reloads
// replace the stored settings atomically and never mutate a snapshot an
// in-flight cycle is using.
package watchlist
