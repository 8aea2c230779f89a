package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "chat-with-search/internal/chat/delivery/http"
)

// EnvironmentProduction hides the swagger UI.
const EnvironmentProduction = "production"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.AccessLog())

	srv.l.Infof(context.Background(), "HTTP mode: %s, environment: %s", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.environment != EnvironmentProduction {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// registerDomainRoutes registers the chat page and the chat API.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	chatHTTP.RegisterPageRoutes(srv.gin, srv.chatHandler, srv.mw.RateLimit())

	api := srv.gin.Group("/api/v1")
	chatHTTP.RegisterRoutes(api.Group("/chat"), srv.chatHandler, srv.mw.RateLimit())

	srv.l.Infof(ctx, "Chat routes registered at / and /api/v1/chat")
	return nil
}
