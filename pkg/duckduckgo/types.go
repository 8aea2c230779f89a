package duckduckgo

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config configures the DuckDuckGo client.
type Config struct {
	BaseURL       string
	MaxResults    int
	RatePerSecond float64
	Timeout       time.Duration
	HTTPClient    *http.Client

	// InitialBackoff is the first wait after a 429. Zero means one second.
	InitialBackoff time.Duration
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.MaxResults < 0 {
		return fmt.Errorf("duckduckgo: MaxResults must not be negative")
	}
	if c.RatePerSecond < 0 {
		return fmt.Errorf("duckduckgo: RatePerSecond must not be negative")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.MaxResults == 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.RatePerSecond == 0 {
		c.RatePerSecond = DefaultRatePerSecond
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	if c.InitialBackoff == 0 {
		c.InitialBackoff = time.Second
	}
	return nil
}

// Result is a single web search hit.
type Result struct {
	Title   string
	URL     string
	Snippet string
}

type client struct {
	baseURL        string
	maxResults     int
	httpClient     *http.Client
	limiter        *rate.Limiter
	initialBackoff time.Duration
}
