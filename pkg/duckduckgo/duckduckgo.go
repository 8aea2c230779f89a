package duckduckgo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

func newClient(cfg Config) *client {
	return &client{
		baseURL:        cfg.BaseURL,
		maxResults:     cfg.MaxResults,
		httpClient:     cfg.HTTPClient,
		limiter:        rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		initialBackoff: cfg.InitialBackoff,
	}
}

// Run returns the snippets of the top results joined by a space.
func (c *client) Run(ctx context.Context, query string) (string, error) {
	results, err := c.Search(ctx, query)
	if err != nil {
		return "", err
	}

	snippets := make([]string, 0, len(results))
	for _, r := range results {
		if r.Snippet != "" {
			snippets = append(snippets, r.Snippet)
		}
	}
	if len(snippets) == 0 {
		return NoResultText, nil
	}
	return strings.Join(snippets, " "), nil
}

// Search posts the query to the lite page and scrapes the result table.
func (c *client) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("duckduckgo: query is empty")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("q", query)

	var resp *http.Response
	delay := c.initialBackoff
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, fmt.Errorf("duckduckgo: failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err = c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("duckduckgo: request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxBackoffTries {
			break
		}
		resp.Body.Close()

		// Back off on 429, doubling each time.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < maxBackoff {
			delay *= 2
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo: unexpected status %s", resp.Status)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: failed to parse page: %w", err)
	}

	return parseResults(doc, c.maxResults), nil
}

// parseResults walks the lite page. Each hit is an anchor with class
// result-link followed by a cell with class result-snippet.
func parseResults(doc *html.Node, limit int) []Result {
	var results []Result
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "a" && hasClass(n, "result-link"):
				if len(results) == limit {
					return false
				}
				results = append(results, Result{
					Title: textContent(n),
					URL:   resolveLink(attr(n, "href")),
				})
				return true
			case n.Data == "td" && hasClass(n, "result-snippet"):
				if len(results) > 0 && results[len(results)-1].Snippet == "" {
					results[len(results)-1].Snippet = textContent(n)
				}
				return true
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if !walk(child) {
				return false
			}
		}
		return true
	}
	walk(doc)
	return results
}

// resolveLink unwraps DuckDuckGo redirect links (/l/?uddg=<target>).
func resolveLink(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme == "" && strings.HasPrefix(href, "//") {
		u.Scheme = "https"
		return u.String()
	}
	return href
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
