package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-with-search/internal/chat"
	"chat-with-search/internal/model"
)

// Page renders the chat page, starting a conversation when the cookie has none.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()

	s, notice, err := h.ensureSession(c)
	if err != nil {
		h.l.Errorf(ctx, "chat.Page.ensureSession: %v", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	v := h.newPageView(s, "")
	v.Notice = notice
	h.render(c, http.StatusOK, v)
}

// PostMessage handles the chat form: one round per submission.
func (h *handler) PostMessage(c *gin.Context) {
	ctx := c.Request.Context()

	s, notice, err := h.ensureSession(c)
	if err != nil {
		h.l.Errorf(ctx, "chat.PostMessage.ensureSession: %v", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	message, apiKey := h.processPageForm(c)
	out, err := h.uc.Send(ctx, chat.SendInput{
		SessionID:      s.ID,
		Message:        message,
		APIKeyOverride: apiKey,
	})
	if err != nil {
		v := h.newPageView(s, apiKey)
		v.Notice = notice
		switch {
		case errors.Is(err, chat.ErrMissingCredential):
			v.PendingInput = message
			h.render(c, http.StatusUnauthorized, v)
		case errors.Is(err, chat.ErrEmptyMessage):
			v.ErrorMessage = MsgEmptyMessage
			h.render(c, http.StatusBadRequest, v)
		default:
			h.l.Errorf(ctx, "chat.PostMessage.Send: %v", err)
			v.ErrorMessage = chat.ErrMsgGeneric + err.Error()
			v.ErrorClass = string(chat.FailureGeneric)
			h.render(c, http.StatusInternalServerError, v)
		}
		return
	}

	v := h.newPageView(out.Session, apiKey)
	v.Notice = notice
	if out.Failure != nil {
		v.ErrorMessage = out.Failure.Message
		v.ErrorClass = string(out.Failure.Class)
	}
	h.render(c, http.StatusOK, v)
}

// Reset starts a fresh conversation. The sidebar key is posted along and
// echoed back so it survives the reset.
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.StartSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "chat.Reset.StartSession: %v", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	h.setSessionCookie(c, s.ID)
	_, apiKey := h.processPageForm(c)
	h.render(c, http.StatusOK, h.newPageView(s, apiKey))
}

// ensureSession loads the session named by the cookie.
// A missing or expired session is replaced by a new one; the notice is set in the expired case.
func (h *handler) ensureSession(c *gin.Context) (model.Session, string, error) {
	ctx := c.Request.Context()

	if id, err := c.Cookie(h.page.CookieName); err == nil && id != "" {
		s, err := h.uc.GetSession(ctx, id)
		if err == nil {
			return s, "", nil
		}
		if !errors.Is(err, chat.ErrSessionNotFound) {
			return model.Session{}, "", err
		}
		s, err = h.uc.StartSession(ctx)
		if err != nil {
			return model.Session{}, "", err
		}
		h.setSessionCookie(c, s.ID)
		return s, MsgSessionExpired, nil
	}

	s, err := h.uc.StartSession(ctx)
	if err != nil {
		return model.Session{}, "", err
	}
	h.setSessionCookie(c, s.ID)
	return s, "", nil
}

// setSessionCookie writes a browser-session cookie: it dies with the tab.
func (h *handler) setSessionCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.page.CookieName, id, 0, "/", "", h.page.CookieSecure, true)
}

func (h *handler) render(c *gin.Context, status int, v pageView) {
	c.Header("Cache-Control", "no-store")
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.tpl.ExecuteTemplate(c.Writer, pageTemplate, v); err != nil {
		h.l.Errorf(c.Request.Context(), "chat.render: %v", err)
	}
}
