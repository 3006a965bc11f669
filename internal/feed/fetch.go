package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"github.com/lwei/stockticker/internal/model"
)

// ErrNoCodes is returned when Fetch is called without any instrument codes.
var ErrNoCodes = errors.New("no instrument codes requested")

// TransportError wraps a network-level feed failure: unreachable host,
// timeout, or a non-OK HTTP status. It must never be collapsed into an
// empty result set, so callers can distinguish "feed down" from "feed
// returned nothing".
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("feed transport failure (%s): %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Fetch requests quotes for the given codes and returns the response body
// decoded from GBK to UTF-8.
func (c *Client) Fetch(ctx context.Context, codes []string) (string, error) {
	if len(codes) == 0 {
		return "", ErrNoCodes
	}

	url := c.baseURL + strings.Join(codes, ",")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Referer", c.referer)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	// The feed replies in GBK regardless of Accept headers.
	decoded := transform.NewReader(resp.Body, simplifiedchinese.GBK.NewDecoder())
	body, err := io.ReadAll(decoded)
	if err != nil {
		return "", &TransportError{URL: url, Err: fmt.Errorf("read response: %w", err)}
	}

	return string(body), nil
}

// FetchQuotes fetches and parses quotes for the given codes, keyed by
// instrument code. The feed does not guarantee response order, so callers
// that need watchlist order must re-sort by key.
func (c *Client) FetchQuotes(ctx context.Context, codes []string) (map[string]model.RawQuote, error) {
	text, err := c.Fetch(ctx, codes)
	if err != nil {
		return nil, err
	}

	quotes := Parse(text)
	byCode := make(map[string]model.RawQuote, len(quotes))
	for _, q := range quotes {
		byCode[q.Code] = q
	}

	c.logger.Debug("quotes fetched",
		"requested", len(codes),
		"parsed", len(byCode),
	)

	return byCode, nil
}
