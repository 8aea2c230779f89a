package http

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"chat-with-search/internal/chat"
	"chat-with-search/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	// Browser page
	Page(c *gin.Context)
	PostMessage(c *gin.Context)
	Reset(c *gin.Context)

	// JSON API
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	SendMessage(c *gin.Context)
}

// PageConfig holds the texts and cookie settings of the chat page.
type PageConfig struct {
	Title        string
	Placeholder  string
	CookieName   string
	CookieSecure bool
}

type handler struct {
	l    log.Logger
	uc   chat.UseCase
	page PageConfig
	tpl  *template.Template
	md   *markdownRenderer
	now  func() time.Time
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, cfg PageConfig) (Handler, error) {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = DefaultPlaceholder
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}

	tpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse chat templates: %w", err)
	}

	return &handler{
		l:    l,
		uc:   uc,
		page: cfg,
		tpl:  tpl,
		md:   newMarkdownRenderer(),
		now:  time.Now,
	}, nil
}
