package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chat-with-search/config"
	_ "chat-with-search/docs" // Swagger docs
	"chat-with-search/internal/agent/orchestrator"
	"chat-with-search/internal/agent/tools"
	chatHTTP "chat-with-search/internal/chat/delivery/http"
	"chat-with-search/internal/chat/repository/memory"
	chatUC "chat-with-search/internal/chat/usecase"
	"chat-with-search/internal/httpserver"
	"chat-with-search/internal/middleware"
	"chat-with-search/pkg/llmprovider"
	"chat-with-search/pkg/log"
)

// @title       Chat with search API
// @description Chat with a Groq model that can search DuckDuckGo, arXiv and Wikipedia.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting chat with search...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if !cfg.LLM.HasAPIKey() {
		logger.Warn(ctx, "GROQ_API_KEY is not set: users must enter a key on the page")
	}

	// 3. Tools
	registry, err := tools.NewRegistry(cfg.Tools)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize tools: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Tools registered: %d", registry.Len())

	// 4. Agent
	agent := orchestrator.New(
		llmprovider.NewManagerFactory(&cfg.LLM, logger),
		registry,
		logger,
		orchestrator.Options{
			Timezone:    cfg.Chat.Timezone,
			HistoryMode: orchestrator.HistoryMode(cfg.Chat.HistoryMode),
			MaxSteps:    cfg.Chat.MaxAgentSteps,
		},
	)

	// 5. Chat domain
	repo := memory.New(cfg.Chat.MaxSessions, cfg.Chat.SessionTTL)
	uc := chatUC.New(logger, repo, agent, chatUC.Options{
		Greeting:        cfg.Chat.Greeting,
		EnvKeyAvailable: cfg.LLM.HasAPIKey(),
	})
	chatHandler, err := chatHTTP.New(logger, uc, chatHTTP.PageConfig{
		Title:        cfg.Chat.Title,
		Placeholder:  cfg.Chat.Placeholder,
		CookieName:   cfg.Chat.CookieName,
		CookieSecure: cfg.Chat.CookieSecure,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize chat handler: %v", err)
		os.Exit(1)
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit),
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
