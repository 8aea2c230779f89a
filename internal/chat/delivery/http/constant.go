package http

const (
	DefaultTitle       = "Chat with search"
	DefaultPlaceholder = "What is machine learning?"
	DefaultCookieName  = "chat_session"

	SidebarTitle      = "Settings"
	APIKeyFieldLabel  = "Enter your Groq API Key"
	MsgEmptyMessage   = "Please type a message first."
	MsgSessionExpired = "Your session has expired. A new conversation was started."

	pageTemplate  = "chat.html"
	markdownStyle = "dracula"
)
