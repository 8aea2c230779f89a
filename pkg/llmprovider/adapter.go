package llmprovider

import (
	"context"
	"errors"

	"chat-with-search/pkg/groq"
)

// ProviderGroq is the registered name of the Groq provider.
const ProviderGroq = "groq"

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		SystemInstruction: convertToGroqContent(req.SystemInstruction),
		Messages:          convertToGroqContents(req.Messages),
		Tools:             convertToGroqTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderGroq, Err: classifyGroqError(err)}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	return &Response{
		Content:      convertFromGroqContent(resp.Content),
		ProviderName: ProviderGroq,
		ModelName:    model,
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return ProviderGroq
}

// Model returns model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

// classifiedError keeps the client error text while matching an llmprovider sentinel.
type classifiedError struct {
	sentinel error
	err      error
}

func (e *classifiedError) Error() string { return e.err.Error() }

func (e *classifiedError) Is(target error) bool { return target == e.sentinel }

func (e *classifiedError) Unwrap() error { return e.err }

func classifyGroqError(err error) error {
	switch {
	case errors.Is(err, groq.ErrToolUseFailed):
		return &classifiedError{sentinel: ErrToolCallFormat, err: err}
	case errors.Is(err, groq.ErrRateLimited):
		return &classifiedError{sentinel: ErrProviderRateLimited, err: err}
	case errors.Is(err, groq.ErrUnauthorized):
		return &classifiedError{sentinel: ErrProviderUnauthorized, err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &classifiedError{sentinel: ErrProviderTimeout, err: err}
	}
	return err
}

// Conversion helpers for Groq
func convertToGroqContent(msg *Message) *groq.Content {
	if msg == nil {
		return nil
	}
	parts := make([]groq.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = groq.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &groq.FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &groq.FunctionResponse{
				ID:       p.FunctionResponse.ID,
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &groq.Content{Role: msg.Role, Parts: parts}
}

func convertToGroqContents(msgs []Message) []groq.Content {
	contents := make([]groq.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGroqContent(&msgs[i])
	}
	return contents
}

func convertToGroqTools(tools []Tool) []groq.Tool {
	groqTools := make([]groq.Tool, len(tools))
	for i, t := range tools {
		groqTools[i] = groq.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return groqTools
}

func convertFromGroqContent(content groq.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{
				ID:       p.FunctionResponse.ID,
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	role := content.Role
	if role == "" {
		role = "assistant"
	}
	return Message{Role: role, Parts: parts}
}
