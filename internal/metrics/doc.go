// Package metrics defines the Prometheus collectors of the refresh
// pipeline and the HTTP handler serving them.
package metrics
