package http

import (
	"github.com/gin-gonic/gin"

	"chat-with-search/pkg/response"
)

// CreateSession godoc
// @Summary     Start a conversation
// @Description Creates a new session whose transcript holds the greeting.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     201 {object} sessionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.StartSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newSessionResp(s))
}

// GetSession godoc
// @Summary     Get a transcript
// @Description Returns every turn of a session in order. Reading never changes the transcript.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.GetSession(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(s))
}

// SendMessage godoc
// @Summary     Ask a question
// @Description Runs one round: the question is appended, the agent answers, the answer is appended.
// @Description A failed round appends no answer and reports the failure class.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body sendMessageReq true "Question and optional Groq API key"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Empty message or invalid body"
// @Failure     401 {object} response.Resp "No Groq API key configured"
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     422 {object} response.Resp "The model produced a malformed tool call"
// @Failure     502 {object} response.Resp "The agent failed"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Send(ctx, req.toInput(id))
	if err != nil {
		h.l.Warnf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	resp := h.newSendMessageResp(out)
	if out.Failure != nil {
		response.Error(c, h.mapFailure(out.Failure), map[string]interface{}{
			"session": resp.Session,
			"failure": resp.Failure,
		})
		return
	}

	response.OK(c, resp)
}
