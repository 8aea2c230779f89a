package wikipedia

import "context"

// IWikipedia looks up Wikipedia pages.
type IWikipedia interface {
	// Search returns the summaries of at most TopKResults pages.
	Search(ctx context.Context, query string) ([]Page, error)

	// Run formats the pages as text truncated to DocContentCharsMax.
	Run(ctx context.Context, query string) (string, error)
}

// New creates a new Wikipedia client.
func New(cfg Config) (IWikipedia, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		baseURL:    cfg.BaseURL,
		topK:       cfg.TopKResults,
		charsMax:   cfg.DocContentCharsMax,
		httpClient: cfg.HTTPClient,
	}, nil
}
