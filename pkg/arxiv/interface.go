package arxiv

import "context"

// IArxiv looks up papers on arXiv.
type IArxiv interface {
	// Search returns at most TopKResults papers.
	Search(ctx context.Context, query string) ([]Paper, error)

	// Run formats the papers as text truncated to DocContentCharsMax.
	Run(ctx context.Context, query string) (string, error)
}

// New creates a new arXiv client.
func New(cfg Config) (IArxiv, error) {
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
