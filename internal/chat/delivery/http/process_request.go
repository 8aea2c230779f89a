package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// processSendMessageReq binds the message body and the session ID path param.
func (h *handler) processSendMessageReq(c *gin.Context) (string, sendMessageReq, error) {
	var req sendMessageReq
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", req, errInvalidRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", req, errInvalidRequest
	}
	return id, req, nil
}

// processPageForm reads the chat form of the browser page.
func (h *handler) processPageForm(c *gin.Context) (message, apiKey string) {
	return c.PostForm("message"), strings.TrimSpace(c.PostForm("api_key"))
}
