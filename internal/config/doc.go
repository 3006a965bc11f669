// Package config loads, normalizes, and validates the ticker
// configuration from YAML, with ${VAR} environment substitution.
//
// Invalid display modes, refresh intervals, and instrument codes are
// rejected here so the quote pipeline only ever sees clean input. The
// Watcher reloads the file on change and hands out validated snapshots.
package config
