package arxiv

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"
)

// Config configures the arXiv client.
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
		return fmt.Errorf("arxiv: TopKResults and DocContentCharsMax must not be negative")
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

// Paper is one arXiv entry.
type Paper struct {
	ID        string
	Title     string
	Authors   []string
	Summary   string
	Published time.Time
	Updated   time.Time
}

type client struct {
	baseURL    string
	topK       int
	charsMax   int
	httpClient *http.Client
}

// Atom feed as returned by the export API.
type atomFeed struct {
	XMLName xml.Name    `xml:"http://www.w3.org/2005/Atom feed"`
	Entries []atomEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

type atomEntry struct {
	ID        string       `xml:"http://www.w3.org/2005/Atom id"`
	Title     string       `xml:"http://www.w3.org/2005/Atom title"`
	Summary   string       `xml:"http://www.w3.org/2005/Atom summary"`
	Published string       `xml:"http://www.w3.org/2005/Atom published"`
	Updated   string       `xml:"http://www.w3.org/2005/Atom updated"`
	Authors   []atomAuthor `xml:"http://www.w3.org/2005/Atom author"`
}

type atomAuthor struct {
	Name string `xml:"http://www.w3.org/2005/Atom name"`
}
