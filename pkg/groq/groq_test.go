package groq_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chat-with-search/pkg/groq"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) groq.IGroq {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := groq.New(groq.Config{
		APIKey:  "test-api-key",
		Model:   "llama-3.3-70b-versatile",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := groq.New(groq.Config{}); err == nil {
		t.Error("expected error for missing api key")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	t.Run("text answer", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer test-api-key" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			var body map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			msgs := body["messages"].([]interface{})
			if first := msgs[0].(map[string]interface{}); first["role"] != "system" {
				t.Errorf("expected system message first, got %v", first["role"])
			}
			if _, ok := body["tools"]; !ok {
				t.Error("expected tools in request")
			}

			w.Write([]byte(`{
				"model": "llama-3.3-70b-versatile",
				"choices": [{"index": 0, "message": {"role": "assistant", "content": "Machine learning is..."}, "finish_reason": "stop"}],
				"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
			}`))
		})

		resp, err := client.GenerateContent(context.Background(), &groq.Request{
			SystemInstruction: &groq.Content{Parts: []groq.Part{{Text: "be helpful"}}},
			Messages: []groq.Content{
				{Role: "user", Parts: []groq.Part{{Text: "What is machine learning?"}}},
			},
			Tools: []groq.Tool{{Name: "search", Description: "web", Parameters: map[string]interface{}{"type": "object"}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "Machine learning is..." {
			t.Errorf("unexpected content: %+v", resp.Content)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("tool call answer", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"choices": [{"message": {"role": "assistant", "tool_calls": [
					{"id": "call_1", "type": "function", "function": {"name": "wikipedia", "arguments": "{\"query\":\"Alan Turing\"}"}}
				]}}]
			}`))
		})

		resp, err := client.GenerateContent(context.Background(), &groq.Request{
			Messages: []groq.Content{{Role: "user", Parts: []groq.Part{{Text: "Who was Alan Turing?"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].FunctionCall == nil {
			t.Fatalf("expected one function call, got %+v", resp.Content.Parts)
		}
		fc := resp.Content.Parts[0].FunctionCall
		if fc.ID != "call_1" || fc.Name != "wikipedia" || fc.Args["query"] != "Alan Turing" {
			t.Errorf("unexpected function call: %+v", fc)
		}
	})

	t.Run("tool results become tool messages", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Messages []struct {
					Role       string `json:"role"`
					ToolCallID string `json:"tool_call_id"`
				} `json:"messages"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if len(body.Messages) != 4 {
				t.Errorf("expected 4 wire messages, got %d", len(body.Messages))
			} else {
				if body.Messages[2].Role != "tool" || body.Messages[2].ToolCallID != "call_a" {
					t.Errorf("unexpected tool message: %+v", body.Messages[2])
				}
				if body.Messages[3].ToolCallID != "call_b" {
					t.Errorf("unexpected tool message: %+v", body.Messages[3])
				}
			}
			w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "done"}}]}`))
		})

		_, err := client.GenerateContent(context.Background(), &groq.Request{
			Messages: []groq.Content{
				{Role: "user", Parts: []groq.Part{{Text: "q"}}},
				{Role: "assistant", Parts: []groq.Part{
					{FunctionCall: &groq.FunctionCall{ID: "call_a", Name: "arxiv", Args: map[string]interface{}{"query": "x"}}},
					{FunctionCall: &groq.FunctionCall{ID: "call_b", Name: "search", Args: map[string]interface{}{"query": "y"}}},
				}},
				{Role: "tool", Parts: []groq.Part{
					{FunctionResponse: &groq.FunctionResponse{ID: "call_a", Name: "arxiv", Response: "a"}},
					{FunctionResponse: &groq.FunctionResponse{ID: "call_b", Name: "search", Response: "b"}},
				}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("tool_use_failed", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "Failed to call a function. Please adjust your prompt.", "type": "invalid_request_error", "code": "tool_use_failed", "failed_generation": "<function=search>"}}`))
		})

		_, err := client.GenerateContent(context.Background(), &groq.Request{})
		if !errors.Is(err, groq.ErrToolUseFailed) {
			t.Fatalf("expected ErrToolUseFailed, got %v", err)
		}
		var apiErr *groq.APIError
		if !errors.As(err, &apiErr) || apiErr.FailedGeneration != "<function=search>" {
			t.Errorf("expected APIError with failed generation, got %v", err)
		}
	})

	t.Run("malformed tool arguments", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "tool_calls": [
				{"id": "call_1", "type": "function", "function": {"name": "search", "arguments": "{query: oops"}}
			]}}]}`))
		})

		_, err := client.GenerateContent(context.Background(), &groq.Request{})
		if !errors.Is(err, groq.ErrToolUseFailed) {
			t.Fatalf("expected ErrToolUseFailed, got %v", err)
		}
	})

	t.Run("status mapping", func(t *testing.T) {
		for status, want := range map[int]error{
			http.StatusUnauthorized:    groq.ErrUnauthorized,
			http.StatusTooManyRequests: groq.ErrRateLimited,
		} {
			status := status
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				w.Write([]byte(`{"error": {"message": "nope"}}`))
			})
			_, err := client.GenerateContent(context.Background(), &groq.Request{})
			if !errors.Is(err, want) {
				t.Errorf("status %d: expected %v, got %v", status, want, err)
			}
			if errors.Is(err, groq.ErrToolUseFailed) {
				t.Errorf("status %d: must not match ErrToolUseFailed", status)
			}
		}
	})
}
