package http

import "github.com/gin-gonic/gin"

// RegisterPageRoutes maps the browser page onto the engine root.
func RegisterPageRoutes(r gin.IRouter, h Handler, mw ...gin.HandlerFunc) {
	page := r.Group("", mw...)
	{
		page.GET("/", h.Page)
		page.POST("/chat", h.PostMessage)
		page.POST("/chat/reset", h.Reset)
	}
}

// RegisterRoutes maps the JSON API onto the given group (usually /api/v1/chat).
func RegisterRoutes(r *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	sessions := r.Group("/sessions", mw...)
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/messages", h.SendMessage)
	}
}
