package duckduckgo

import "context"

// IDuckDuckGo searches the web through DuckDuckGo.
type IDuckDuckGo interface {
	// Search returns at most MaxResults results for query.
	Search(ctx context.Context, query string) ([]Result, error)

	// Run returns the result snippets joined by a space.
	Run(ctx context.Context, query string) (string, error)
}

// New creates a new DuckDuckGo client.
func New(cfg Config) (IDuckDuckGo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
