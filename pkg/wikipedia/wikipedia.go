package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Run searches Wikipedia and formats the hits as "Page: ...\nSummary: ...".
func (c *client) Run(ctx context.Context, query string) (string, error) {
	pages, err := c.Search(ctx, query)
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return NoResultText, nil
	}

	docs := make([]string, 0, len(pages))
	for _, p := range pages {
		docs = append(docs, fmt.Sprintf("Page: %s\nSummary: %s", p.Title, p.Summary))
	}
	return truncate(strings.Join(docs, "\n\n"), c.charsMax), nil
}

// Search finds the top titles, then fetches the plain-text intro of each.
// Pages that vanished between the two calls are skipped.
func (c *client) Search(ctx context.Context, query string) ([]Page, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("wikipedia: query is empty")
	}

	var sr searchResponse
	err := c.get(ctx, url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {truncate(query, maxQueryLength)},
		"srlimit":  {strconv.Itoa(c.topK)},
		"srprop":   {""},
	}, &sr)
	if err != nil {
		return nil, err
	}
	if sr.Error != nil {
		return nil, fmt.Errorf("wikipedia: %s: %s", sr.Error.Code, sr.Error.Info)
	}

	pages := make([]Page, 0, len(sr.Query.Search))
	for _, hit := range sr.Query.Search {
		if len(pages) == c.topK {
			break
		}
		page, ok, err := c.extract(ctx, hit.Title)
		if err != nil {
			return nil, err
		}
		if ok {
			pages = append(pages, page)
		}
	}
	return pages, nil
}

func (c *client) extract(ctx context.Context, title string) (Page, bool, error) {
	var er extractResponse
	err := c.get(ctx, url.Values{
		"action":      {"query"},
		"prop":        {"extracts"},
		"exintro":     {"1"},
		"explaintext": {"1"},
		"redirects":   {"1"},
		"titles":      {title},
	}, &er)
	if err != nil {
		return Page{}, false, err
	}
	if er.Error != nil {
		return Page{}, false, fmt.Errorf("wikipedia: %s: %s", er.Error.Code, er.Error.Info)
	}

	for _, p := range er.Query.Pages {
		if p.Missing || strings.TrimSpace(p.Extract) == "" {
			continue
		}
		return Page{Title: p.Title, Summary: strings.TrimSpace(p.Extract)}, true, nil
	}
	return Page{}, false, nil
}

func (c *client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("format", "json")
	params.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("wikipedia: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("wikipedia: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikipedia: unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("wikipedia: failed to decode response: %w", err)
	}
	return nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max])
}
