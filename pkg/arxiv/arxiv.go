package arxiv

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Matches new-style (2103.12345v2) and old-style (hep-th/9901001, 9901001) identifiers.
var identifierPattern = regexp.MustCompile(`^(\d{2}(0[1-9]|1[0-2])\.\d{4,5}(v\d+)?|([a-z\-]+(\.[A-Z]{2})?/)?\d{7}(v\d+)?)$`)

// Run searches arXiv and formats the hits as
// "Published: ...\nTitle: ...\nAuthors: ...\nSummary: ...".
func (c *client) Run(ctx context.Context, query string) (string, error) {
	papers, err := c.Search(ctx, query)
	if err != nil {
		return "", err
	}
	if len(papers) == 0 {
		return NoResultText, nil
	}

	docs := make([]string, 0, len(papers))
	for _, p := range papers {
		date := p.Updated
		if date.IsZero() {
			date = p.Published
		}
		docs = append(docs, fmt.Sprintf("Published: %s\nTitle: %s\nAuthors: %s\nSummary: %s",
			date.Format(time.DateOnly), p.Title, strings.Join(p.Authors, ", "), p.Summary))
	}

	return truncate(strings.Join(docs, "\n\n"), c.charsMax), nil
}

// Search queries the export API. Queries made only of arXiv identifiers
// are looked up by id_list.
func (c *client) Search(ctx context.Context, query string) ([]Paper, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("arxiv: query is empty")
	}
	query = truncate(query, maxQueryLength)

	params := url.Values{}
	if IsIdentifierQuery(query) {
		params.Set("id_list", strings.Join(strings.Fields(query), ","))
	} else {
		params.Set("search_query", "all:"+query)
	}
	params.Set("max_results", strconv.Itoa(c.topK))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("arxiv: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arxiv: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arxiv: unexpected status %s", resp.Status)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("arxiv: failed to decode feed: %w", err)
	}

	papers := make([]Paper, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		// The API reports errors as a single entry whose id points at /api/errors.
		if strings.Contains(e.ID, "/api/errors") {
			return nil, fmt.Errorf("arxiv: %s", collapse(e.Summary))
		}
		papers = append(papers, e.toPaper())
		if len(papers) == c.topK {
			break
		}
	}
	return papers, nil
}

// IsIdentifierQuery reports whether every word of query is an arXiv identifier.
func IsIdentifierQuery(query string) bool {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !identifierPattern.MatchString(f) {
			return false
		}
	}
	return true
}

func (e atomEntry) toPaper() Paper {
	p := Paper{
		ID:      strings.TrimSpace(e.ID),
		Title:   collapse(e.Title),
		Summary: collapse(e.Summary),
	}
	p.Published, _ = time.Parse(time.RFC3339, strings.TrimSpace(e.Published))
	p.Updated, _ = time.Parse(time.RFC3339, strings.TrimSpace(e.Updated))
	for _, a := range e.Authors {
		if name := collapse(a.Name); name != "" {
			p.Authors = append(p.Authors, name)
		}
	}
	return p
}

// collapse folds the feed's hard-wrapped text onto one line.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max])
}
