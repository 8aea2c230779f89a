package duckduckgo

import "time"

const (
	// DefaultBaseURL is the HTML lite endpoint, which is stable enough to scrape.
	DefaultBaseURL = "https://lite.duckduckgo.com/lite/"

	DefaultMaxResults    = 5
	DefaultRatePerSecond = 1.0
	DefaultTimeout       = 15 * time.Second

	// NoResultText is what Run returns when the page has no snippets.
	NoResultText = "No good DuckDuckGo Search Result was found"

	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	maxBackoff      = 30 * time.Second
	maxBackoffTries = 4
	maxBodyBytes    = 2 << 20
)
