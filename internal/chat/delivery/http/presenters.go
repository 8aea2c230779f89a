package http

import (
	"html/template"
	"time"

	"chat-with-search/internal/chat"
	"chat-with-search/internal/model"
	"chat-with-search/pkg/response"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message string `json:"message"`
	APIKey  string `json:"api_key"`
}

func (r sendMessageReq) toInput(sessionID string) chat.SendInput {
	return chat.SendInput{
		SessionID:      sessionID,
		Message:        r.Message,
		APIKeyOverride: r.APIKey,
	}
}

// --- Response DTOs ---

type turnResp struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newTurnResp(t model.Turn) turnResp {
	return turnResp{Role: string(t.Role), Content: t.Content, CreatedAt: response.NewDateTime(t.CreatedAt)}
}

type sessionResp struct {
	ID        string            `json:"id"`
	Turns     []turnResp        `json:"turns"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newSessionResp(s model.Session) sessionResp {
	turns := make([]turnResp, len(s.Turns))
	for i, t := range s.Turns {
		turns[i] = newTurnResp(t)
	}
	return sessionResp{
		ID:        s.ID,
		Turns:     turns,
		CreatedAt: response.NewDateTime(s.CreatedAt),
		UpdatedAt: response.NewDateTime(s.UpdatedAt),
	}
}

type sendMessageResp struct {
	Session   sessionResp   `json:"session"`
	UserTurn  turnResp      `json:"user_turn"`
	Assistant *turnResp     `json:"assistant,omitempty"`
	Failure   *chat.Failure `json:"failure,omitempty"`
}

func (h *handler) newSendMessageResp(out chat.SendOutput) sendMessageResp {
	resp := sendMessageResp{
		Session:  newSessionResp(out.Session),
		UserTurn: newTurnResp(out.UserTurn),
		Failure:  out.Failure,
	}
	if out.Assistant != nil {
		a := newTurnResp(*out.Assistant)
		resp.Assistant = &a
	}
	return resp
}

// --- Page view models ---

type turnView struct {
	Role string
	HTML template.HTML
	At   string
}

type pageView struct {
	Title        string
	SidebarTitle string
	APIKeyLabel  string
	Placeholder  string
	Turns        []turnView
	APIKey       string
	NeedsKey     bool
	InfoMessage  string
	ErrorMessage string
	ErrorClass   string
	Notice       string
	PendingInput string
}

func (h *handler) newPageView(s model.Session, apiKey string) pageView {
	turns := make([]turnView, len(s.Turns))
	for i, t := range s.Turns {
		turns[i] = turnView{
			Role: string(t.Role),
			HTML: h.md.Render(t.Content),
			At:   t.CreatedAt.Format(time.Kitchen),
		}
	}

	status := h.uc.CredentialStatus(apiKey)
	v := pageView{
		Title:        h.page.Title,
		SidebarTitle: SidebarTitle,
		APIKeyLabel:  APIKeyFieldLabel,
		Placeholder:  h.page.Placeholder,
		Turns:        turns,
		APIKey:       apiKey,
		NeedsKey:     !status.Available,
	}
	if v.NeedsKey {
		v.InfoMessage = chat.InfoMsgMissingKey
	}
	return v
}
