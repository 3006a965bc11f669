// Package feed fetches and decodes the real-time quote feed.
//
// The feed is an HTTP GET endpoint taking a comma-joined code list. The
// response is GBK text with one assignment per instrument:
//
//	var hq_str_sh600519="贵州茅台,1700.000,1695.000,...";
//
// The payload is a dense positional record; all index arithmetic lives in
// parse.go behind a single decoding function with a minimum-field-count
// guard. Transport failures surface as *TransportError; malformed lines
// are dropped, never escalated.
package feed
