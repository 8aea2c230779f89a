package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chat-with-search/internal/model"
	"chat-with-search/pkg/llmprovider"
)

// Reply runs the ReAct loop (Reason → Act → Observe) for one question.
func (o *Orchestrator) Reply(ctx context.Context, input ReplyInput) (string, error) {
	manager, err := o.newManager(input.APIKey)
	if err != nil {
		o.l.Errorf(ctx, "%s: failed to build LLM manager: %v", LogPrefixReply, err)
		return "", err
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: SystemPromptAgent + buildTimeContext(o.timezone, time.Now())}},
		},
		Messages: o.buildMessages(input),
		Tools:    o.registry.ToFunctionDefinitions(),
	}

	for step := 0; step < o.maxSteps; step++ {
		o.l.Infof(ctx, LogMsgAgentStep, step+1, o.maxSteps)

		// 1. Reason: Ask LLM what to do
		resp, err := manager.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf(ErrMsgAgentLLMError+": %w", step+1, err)
		}

		text, calls := splitParts(resp.Content.Parts)

		// 2. No tool call means the LLM has its final answer
		if len(calls) == 0 {
			if strings.TrimSpace(text) == "" {
				return "", ErrEmptyResponse
			}
			o.l.Infof(ctx, LogMsgAgentFinished, step+1)
			return text, nil
		}

		// 3. Act: Execute every requested tool
		results := make([]llmprovider.Part, 0, len(calls))
		for _, call := range calls {
			results = append(results, llmprovider.Part{
				FunctionResponse: &llmprovider.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: o.executeTool(ctx, call),
				},
			})
		}

		// 4. Observe: Add calls and results to the conversation
		req.Messages = append(req.Messages,
			llmprovider.Message{Role: "assistant", Parts: resp.Content.Parts},
			llmprovider.Message{Role: "tool", Parts: results},
		)
	}

	// Max steps exceeded
	o.l.Warnf(ctx, LogMsgAgentMaxSteps, o.maxSteps)
	return ErrMsgMaxStepsExceeded, nil
}

// buildMessages turns the transcript into model messages according to the history mode.
func (o *Orchestrator) buildMessages(input ReplyInput) []llmprovider.Message {
	var msgs []llmprovider.Message
	if o.historyMode == HistoryFull {
		msgs = make([]llmprovider.Message, 0, len(input.History)+1)
		for _, turn := range input.History {
			if turn.Content == "" {
				continue
			}
			role := "user"
			if turn.Role == model.RoleAssistant {
				role = "assistant"
			}
			msgs = append(msgs, llmprovider.Message{
				Role:  role,
				Parts: []llmprovider.Part{{Text: turn.Content}},
			})
		}
	}

	return append(msgs, llmprovider.Message{
		Role:  "user",
		Parts: []llmprovider.Part{{Text: input.Query}},
	})
}

// executeTool runs one call. Failures are reported back to the model, not to the caller.
func (o *Orchestrator) executeTool(ctx context.Context, call *llmprovider.FunctionCall) interface{} {
	o.l.Infof(ctx, LogMsgAgentCallingTool, call.Name, call.Args)

	tool, ok := o.registry.Get(call.Name)
	if !ok {
		o.l.Errorf(ctx, LogMsgToolNotFound, call.Name)
		return map[string]string{"error": ErrMsgToolNotFound}
	}

	args := call.Args
	if args == nil {
		args = map[string]interface{}{}
	}

	res, err := tool.Execute(ctx, args)
	if err != nil {
		o.l.Errorf(ctx, LogMsgToolExecutionError, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}

func splitParts(parts []llmprovider.Part) (string, []*llmprovider.FunctionCall) {
	var texts []string
	var calls []*llmprovider.FunctionCall
	for _, p := range parts {
		if p.FunctionCall != nil {
			calls = append(calls, p.FunctionCall)
		}
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n"), calls
}
