package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chat-with-search/internal/agent"
	"chat-with-search/internal/model"
	"chat-with-search/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// scriptedProvider replays responses in order and records every request.
type scriptedProvider struct {
	responses []llmprovider.Message
	err       error
	requests  []llmprovider.Request
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	snapshot := *req
	snapshot.Messages = append([]llmprovider.Message(nil), req.Messages...)
	p.requests = append(p.requests, snapshot)

	if p.err != nil {
		return nil, p.err
	}
	if len(p.responses) == 0 {
		return nil, errors.New("script exhausted")
	}
	next := p.responses[0]
	p.responses = p.responses[1:]
	return &llmprovider.Response{Content: next, ProviderName: "scripted", Usage: &llmprovider.Usage{}}, nil
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-model" }

type mockTool struct {
	name  string
	err   error
	calls []map[string]interface{}
}

func (m *mockTool) Name() string        { return m.name }
func (m *mockTool) Description() string { return "A mock tool" }
func (m *mockTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{"type": "string"},
		},
	}
}
func (m *mockTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	m.calls = append(m.calls, params)
	if m.err != nil {
		return nil, m.err
	}
	return map[string]interface{}{"result": m.name + " says hi"}, nil
}

func text(s string) llmprovider.Message {
	return llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: s}}}
}

func calls(fcs ...*llmprovider.FunctionCall) llmprovider.Message {
	parts := make([]llmprovider.Part, len(fcs))
	for i, fc := range fcs {
		parts[i] = llmprovider.Part{FunctionCall: fc}
	}
	return llmprovider.Message{Role: "assistant", Parts: parts}
}

func newTestOrchestrator(p *scriptedProvider, registry *agent.ToolRegistry, opts Options) (*Orchestrator, *string) {
	var gotKey string
	factory := func(apiKey string) (*llmprovider.Manager, error) {
		gotKey = apiKey
		return llmprovider.NewManager([]llmprovider.Provider{p}, llmprovider.DefaultConfig(), &mockLogger{}), nil
	}
	return New(factory, registry, &mockLogger{}, opts), &gotKey
}

func TestOrchestrator_Reply(t *testing.T) {
	t.Run("simple text response", func(t *testing.T) {
		p := &scriptedProvider{responses: []llmprovider.Message{text("Hello there!")}}
		registry := agent.NewToolRegistry()
		registry.Register(&mockTool{name: "search"})
		o, gotKey := newTestOrchestrator(p, registry, Options{})

		result, err := o.Reply(context.Background(), ReplyInput{APIKey: "typed", Query: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "Hello there!" {
			t.Errorf("expected 'Hello there!', got %q", result)
		}
		if *gotKey != "typed" {
			t.Errorf("expected API key forwarded, got %q", *gotKey)
		}

		req := p.requests[0]
		if !strings.Contains(req.SystemInstruction.Parts[0].Text, "SYSTEM CONTEXT") {
			t.Error("expected time context in system instruction")
		}
		if len(req.Tools) != 1 || req.Tools[0].Name != "search" {
			t.Errorf("expected tool definitions, got %+v", req.Tools)
		}
	})

	t.Run("executes every tool call then answers", func(t *testing.T) {
		search := &mockTool{name: "search"}
		wiki := &mockTool{name: "wikipedia"}
		registry := agent.NewToolRegistry()
		registry.Register(search)
		registry.Register(wiki)

		p := &scriptedProvider{responses: []llmprovider.Message{
			calls(
				&llmprovider.FunctionCall{ID: "call_1", Name: "search", Args: map[string]interface{}{"query": "go"}},
				&llmprovider.FunctionCall{ID: "call_2", Name: "wikipedia", Args: map[string]interface{}{"query": "go"}},
			),
			text("Go is a language."),
		}}
		o, _ := newTestOrchestrator(p, registry, Options{})

		result, err := o.Reply(context.Background(), ReplyInput{Query: "what is go"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "Go is a language." {
			t.Errorf("unexpected result %q", result)
		}
		if len(search.calls) != 1 || len(wiki.calls) != 1 {
			t.Fatalf("expected both tools called once, got %d and %d", len(search.calls), len(wiki.calls))
		}

		second := p.requests[1].Messages
		if len(second) != 3 {
			t.Fatalf("expected user, assistant, tool messages, got %d", len(second))
		}
		toolMsg := second[2]
		if toolMsg.Role != "tool" || len(toolMsg.Parts) != 2 {
			t.Fatalf("expected tool message with 2 results, got %+v", toolMsg)
		}
		if toolMsg.Parts[0].FunctionResponse.ID != "call_1" || toolMsg.Parts[1].FunctionResponse.ID != "call_2" {
			t.Error("tool results should keep call IDs in order")
		}
	})

	t.Run("unknown tool and tool error are reported to the model", func(t *testing.T) {
		failing := &mockTool{name: "arxiv", err: errors.New("arxiv down")}
		registry := agent.NewToolRegistry()
		registry.Register(failing)

		p := &scriptedProvider{responses: []llmprovider.Message{
			calls(
				&llmprovider.FunctionCall{ID: "a", Name: "nope"},
				&llmprovider.FunctionCall{ID: "b", Name: "arxiv", Args: map[string]interface{}{"query": "x"}},
			),
			text("done"),
		}}
		o, _ := newTestOrchestrator(p, registry, Options{})

		if _, err := o.Reply(context.Background(), ReplyInput{Query: "q"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		results := p.requests[1].Messages[2].Parts
		notFound := results[0].FunctionResponse.Response.(map[string]string)
		if notFound["error"] != ErrMsgToolNotFound {
			t.Errorf("expected tool not found error, got %v", notFound)
		}
		failed := results[1].FunctionResponse.Response.(map[string]string)
		if failed["error"] != "arxiv down" {
			t.Errorf("expected tool error forwarded, got %v", failed)
		}
	})

	t.Run("step limit returns apology", func(t *testing.T) {
		registry := agent.NewToolRegistry()
		registry.Register(&mockTool{name: "search"})

		loop := calls(&llmprovider.FunctionCall{ID: "c", Name: "search", Args: map[string]interface{}{"query": "again"}})
		p := &scriptedProvider{responses: []llmprovider.Message{loop, loop, loop}}
		o, _ := newTestOrchestrator(p, registry, Options{MaxSteps: 3})

		result, err := o.Reply(context.Background(), ReplyInput{Query: "q"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != ErrMsgMaxStepsExceeded {
			t.Errorf("expected apology, got %q", result)
		}
		if len(p.requests) != 3 {
			t.Errorf("expected 3 LLM calls, got %d", len(p.requests))
		}
	})

	t.Run("empty response", func(t *testing.T) {
		p := &scriptedProvider{responses: []llmprovider.Message{{Role: "assistant"}}}
		o, _ := newTestOrchestrator(p, agent.NewToolRegistry(), Options{})

		_, err := o.Reply(context.Background(), ReplyInput{Query: "q"})
		if !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("provider error keeps its identity", func(t *testing.T) {
		p := &scriptedProvider{err: &llmprovider.ProviderError{Provider: "groq", Err: llmprovider.ErrToolCallFormat}}
		o, _ := newTestOrchestrator(p, agent.NewToolRegistry(), Options{})

		_, err := o.Reply(context.Background(), ReplyInput{Query: "q"})
		if !errors.Is(err, llmprovider.ErrToolCallFormat) {
			t.Errorf("expected ErrToolCallFormat, got %v", err)
		}
	})

	t.Run("manager factory error", func(t *testing.T) {
		factory := func(apiKey string) (*llmprovider.Manager, error) {
			return nil, llmprovider.ErrNoProvidersConfigured
		}
		o := New(factory, agent.NewToolRegistry(), &mockLogger{}, Options{})

		_, err := o.Reply(context.Background(), ReplyInput{Query: "q"})
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})
}

func TestOrchestrator_HistoryModes(t *testing.T) {
	history := []model.Turn{
		{Role: model.RoleAssistant, Content: "Hi, how can I help?"},
		{Role: model.RoleUser, Content: "What is Go?"},
		{Role: model.RoleAssistant, Content: "A language."},
	}

	tests := []struct {
		name  string
		mode  HistoryMode
		roles []string
	}{
		{name: "full", mode: HistoryFull, roles: []string{"assistant", "user", "assistant", "user"}},
		{name: "latest", mode: HistoryLatest, roles: []string{"user"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedProvider{responses: []llmprovider.Message{text("ok")}}
			o, _ := newTestOrchestrator(p, agent.NewToolRegistry(), Options{HistoryMode: tt.mode})

			if _, err := o.Reply(context.Background(), ReplyInput{History: history, Query: "Who made it?"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			msgs := p.requests[0].Messages
			if len(msgs) != len(tt.roles) {
				t.Fatalf("expected %d messages, got %d", len(tt.roles), len(msgs))
			}
			for i, role := range tt.roles {
				if msgs[i].Role != role {
					t.Errorf("message %d: expected role %s, got %s", i, role, msgs[i].Role)
				}
			}
			if last := msgs[len(msgs)-1].Parts[0].Text; last != "Who made it?" {
				t.Errorf("expected query last, got %q", last)
			}
		})
	}
}
