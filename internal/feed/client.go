package feed

import (
	"log/slog"
	"net/http"
	"time"
)

// Default endpoint settings. The quote host rejects requests without a
// site Referer and a browser-like User-Agent.
const (
	DefaultBaseURL   = "https://hq.sinajs.cn/list="
	DefaultReferer   = "https://finance.sina.com.cn"
	DefaultUserAgent = "Mozilla/5.0"
	DefaultTimeout   = 3 * time.Second
)

// Client fetches raw quote text from the real-time feed.
type Client struct {
	baseURL    string
	referer    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new feed client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		referer:   DefaultReferer,
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithBaseURL sets the quote endpoint prefix.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithReferer sets the Referer header.
func WithReferer(referer string) ClientOption {
	return func(c *Client) {
		c.referer = referer
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
