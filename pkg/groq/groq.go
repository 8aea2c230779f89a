package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newGroqImpl creates a new Groq implementation
func newGroqImpl(cfg Config) *groqImpl {
	return &groqImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request to Groq
func (g *groqImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openAIReq := g.transformRequest(req)

	body, err := json.Marshal(openAIReq)
	if err != nil {
		return nil, fmt.Errorf("groq: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("groq: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("groq: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, parseAPIError(resp.StatusCode, bodyBytes)
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return nil, fmt.Errorf("groq: failed to decode response: %w", err)
	}

	return g.transformResponse(&openAIResp)
}

// Model returns the model being used
func (g *groqImpl) Model() string {
	return g.model
}

func parseAPIError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status, Message: string(body)}

	var errResp openAIErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		apiErr.Message = errResp.Error.Message
		apiErr.Type = errResp.Error.Type
		apiErr.Code = errResp.Error.Code
		apiErr.FailedGeneration = errResp.Error.FailedGeneration
	}
	return apiErr
}

// transformRequest converts request to the OpenAI-compatible format
func (g *groqImpl) transformRequest(req *Request) *openAIRequest {
	openAIReq := &openAIRequest{
		Model:       g.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openAIMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != nil {
		for _, msg := range g.transformMessage(req.SystemInstruction) {
			msg.Role = "system"
			openAIReq.Messages = append(openAIReq.Messages, msg)
		}
	}

	for i := range req.Messages {
		openAIReq.Messages = append(openAIReq.Messages, g.transformMessage(&req.Messages[i])...)
	}

	if len(req.Tools) > 0 {
		openAIReq.ToolChoice = "auto"
		openAIReq.Tools = make([]openAITool, len(req.Tools))
		for i, tool := range req.Tools {
			openAIReq.Tools[i] = openAITool{
				Type: "function",
				Function: openAIFunctionDecl{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
				},
			}
		}
	}

	return openAIReq
}

// transformMessage converts one content into wire messages. Every function
// response becomes its own "tool" message, as the API expects.
func (g *groqImpl) transformMessage(msg *Content) []openAIMessage {
	openAIMsg := openAIMessage{Role: msg.Role}
	var toolMsgs []openAIMessage

	for _, part := range msg.Parts {
		if part.Text != "" {
			if openAIMsg.Content != "" {
				openAIMsg.Content += "\n"
			}
			openAIMsg.Content += part.Text
		}

		if part.FunctionCall != nil {
			argsJSON, _ := json.Marshal(part.FunctionCall.Args)
			openAIMsg.ToolCalls = append(openAIMsg.ToolCalls, openAIToolCall{
				ID:   callID(part.FunctionCall.ID, part.FunctionCall.Name),
				Type: "function",
				Function: openAIFunctionCall{
					Name:      part.FunctionCall.Name,
					Arguments: string(argsJSON),
				},
			})
		}

		if part.FunctionResponse != nil {
			responseJSON, _ := json.Marshal(part.FunctionResponse.Response)
			toolMsgs = append(toolMsgs, openAIMessage{
				Role:       "tool",
				Name:       part.FunctionResponse.Name,
				ToolCallID: callID(part.FunctionResponse.ID, part.FunctionResponse.Name),
				Content:    string(responseJSON),
			})
		}
	}

	if len(toolMsgs) > 0 && openAIMsg.Content == "" && len(openAIMsg.ToolCalls) == 0 {
		return toolMsgs
	}
	return append([]openAIMessage{openAIMsg}, toolMsgs...)
}

func (g *groqImpl) transformResponse(resp *openAIResponse) (*Response, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return &Response{Usage: &Usage{}}, nil
	}

	choice := resp.Choices[0]
	message := Content{
		Role:  choice.Message.Role,
		Parts: make([]Part, 0, 1+len(choice.Message.ToolCalls)),
	}

	if choice.Message.Content != "" {
		message.Parts = append(message.Parts, Part{Text: choice.Message.Content})
	}

	for _, toolCall := range choice.Message.ToolCalls {
		if toolCall.Type != "" && toolCall.Type != "function" {
			continue
		}

		args := make(map[string]interface{})
		if toolCall.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
				return nil, fmt.Errorf("%w: arguments for %s are not valid JSON: %v",
					ErrToolUseFailed, toolCall.Function.Name, err)
			}
		}

		message.Parts = append(message.Parts, Part{
			FunctionCall: &FunctionCall{
				ID:   toolCall.ID,
				Name: toolCall.Function.Name,
				Args: args,
			},
		})
	}

	return &Response{
		Content: message,
		Model:   resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func callID(id, name string) string {
	if id != "" {
		return id
	}
	return "call_" + name
}
