package arxiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const feedTwo = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query</title>
  <entry>
    <id>http://arxiv.org/abs/1706.03762v7</id>
    <updated>2023-08-02T00:41:18Z</updated>
    <published>2017-06-12T17:57:34Z</published>
    <title>Attention Is All
      You Need</title>
    <summary>  The dominant sequence transduction models are based on complex
      recurrent or convolutional neural networks.</summary>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/1810.04805v2</id>
    <updated>2019-05-24T20:37:26Z</updated>
    <published>2018-10-11T00:50:01Z</published>
    <title>BERT</title>
    <summary>We introduce BERT.</summary>
    <author><name>Jacob Devlin</name></author>
  </entry>
</feed>`

const feedEmpty = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"><title>ArXiv Query</title></feed>`

const feedError = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/api/errors#incorrect_id_format_for_1234</id>
    <title>Error</title>
    <summary>incorrect id format for 1234</summary>
  </entry>
</feed>`

func newTestClient(t *testing.T, body string, cfg Config, gotQuery *string) IArxiv {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.RawQuery
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestRun(t *testing.T) {
	t.Run("formats and truncates", func(t *testing.T) {
		c := newTestClient(t, feedTwo, Config{}, nil)

		got, err := c.Run(context.Background(), "attention")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if !strings.HasPrefix(got, "Published: 2023-08-02\nTitle: Attention Is All You Need\nAuthors: Ashish Vaswani, Noam Shazeer\nSummary: The dominant") {
			t.Errorf("unexpected output: %q", got)
		}
		if len([]rune(got)) != DefaultDocContentCharsMax {
			t.Errorf("expected output truncated to %d chars, got %d", DefaultDocContentCharsMax, len([]rune(got)))
		}
		if strings.Contains(got, "BERT") {
			t.Error("expected only top 1 result")
		}
	})

	t.Run("joins entries", func(t *testing.T) {
		c := newTestClient(t, feedTwo, Config{TopKResults: 2, DocContentCharsMax: 4000}, nil)

		got, err := c.Run(context.Background(), "transformers")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		docs := strings.Split(got, "\n\n")
		if len(docs) != 2 {
			t.Fatalf("expected 2 documents, got %d: %q", len(docs), got)
		}
		if docs[1] != "Published: 2019-05-24\nTitle: BERT\nAuthors: Jacob Devlin\nSummary: We introduce BERT." {
			t.Errorf("unexpected second document: %q", docs[1])
		}
	})

	t.Run("no results", func(t *testing.T) {
		c := newTestClient(t, feedEmpty, Config{}, nil)

		got, err := c.Run(context.Background(), "zzzz")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if got != NoResultText {
			t.Errorf("Run() = %q, want %q", got, NoResultText)
		}
	})

	t.Run("api error entry", func(t *testing.T) {
		c := newTestClient(t, feedError, Config{}, nil)

		if _, err := c.Run(context.Background(), "1234"); err == nil {
			t.Error("expected error from api error entry")
		}
	})
}

func TestSearch_QueryParameters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "free text", query: "large language models", want: "search_query=all%3Alarge+language+models"},
		{name: "identifiers", query: "1706.03762 1810.04805v2", want: "id_list=1706.03762%2C1810.04805v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			c := newTestClient(t, feedEmpty, Config{TopKResults: 3}, &got)

			if _, err := c.Search(context.Background(), tt.query); err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("query %q does not contain %q", got, tt.want)
			}
			if !strings.Contains(got, "max_results=3") {
				t.Errorf("query %q does not carry max_results", got)
			}
		})
	}
}

func TestIsIdentifierQuery(t *testing.T) {
	tests := map[string]bool{
		"1706.03762":         true,
		"2103.12345v2":       true,
		"hep-th/9901001":     true,
		"1706.03762 9901001": true,
		"attention":          false,
		"1706.03762 is cool": false,
		"":                   false,
		"1713.03762":         false,
	}
	for q, want := range tests {
		if got := IsIdentifierQuery(q); got != want {
			t.Errorf("IsIdentifierQuery(%q) = %v, want %v", q, got, want)
		}
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	c := newTestClient(t, feedEmpty, Config{}, nil)
	if _, err := c.Search(context.Background(), "  "); err == nil {
		t.Error("expected error for empty query")
	}
}
