package wikipedia

import (
	"fmt"
	"net/http"
	"time"
)

// Config configures the Wikipedia client.
type Config struct {
	BaseURL            string
	TopKResults        int
	DocContentCharsMax int
	Timeout            time.Duration
	HTTPClient         *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.TopKResults < 0 || c.DocContentCharsMax < 0 {
		return fmt.Errorf("wikipedia: TopKResults and DocContentCharsMax must not be negative")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TopKResults == 0 {
		c.TopKResults = DefaultTopKResults
	}
	if c.DocContentCharsMax == 0 {
		c.DocContentCharsMax = DefaultDocContentCharsMax
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Page is a Wikipedia page summary.
type Page struct {
	Title   string
	Summary string
}

type client struct {
	baseURL    string
	topK       int
	charsMax   int
	httpClient *http.Client
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

type extractResponse struct {
	Query struct {
		Pages []struct {
			Title   string `json:"title"`
			Extract string `json:"extract"`
			Missing bool   `json:"missing"`
		} `json:"pages"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}
