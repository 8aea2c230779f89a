package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Chat with search specifics
	Chat  ChatConfig
	Tools ToolsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxTrackedPeers int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for the whole fallback chain, 0 disables it
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// ChatConfig drives the turn loop and the chat page.
type ChatConfig struct {
	Title         string
	Greeting      string
	Placeholder   string
	HistoryMode   string // full | latest
	MaxAgentSteps int
	SessionTTL    time.Duration
	MaxSessions   int
	Timezone      string
	CookieName    string
	CookieSecure  bool
}

// ToolsConfig configures the three search tools.
type ToolsConfig struct {
	Search    SearchToolConfig
	Arxiv     LookupToolConfig
	Wikipedia LookupToolConfig
}

type SearchToolConfig struct {
	Enabled       bool
	BaseURL       string
	MaxResults    int
	RatePerSecond float64
	Timeout       time.Duration
}

type LookupToolConfig struct {
	Enabled            bool
	BaseURL            string
	TopKResults        int
	DocContentCharsMax int
	Timeout            time.Duration
}

// History modes
const (
	HistoryModeFull   = "full"
	HistoryModeLatest = "latest"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is merged below the process environment.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := loadDotEnv("."); err != nil {
		return nil, err
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxTrackedPeers = viper.GetInt("rate_limit.max_tracked_peers")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders()

	// Chat
	cfg.Chat.Title = viper.GetString("chat.title")
	cfg.Chat.Greeting = viper.GetString("chat.greeting")
	cfg.Chat.Placeholder = viper.GetString("chat.placeholder")
	cfg.Chat.HistoryMode = strings.ToLower(viper.GetString("chat.history_mode"))
	cfg.Chat.MaxAgentSteps = viper.GetInt("chat.max_agent_steps")
	cfg.Chat.SessionTTL = viper.GetDuration("chat.session_ttl")
	cfg.Chat.MaxSessions = viper.GetInt("chat.max_sessions")
	cfg.Chat.Timezone = viper.GetString("chat.timezone")
	cfg.Chat.CookieName = viper.GetString("chat.cookie_name")
	cfg.Chat.CookieSecure = viper.GetBool("chat.cookie_secure")

	// Tools
	cfg.Tools.Search = SearchToolConfig{
		Enabled:       viper.GetBool("tools.search.enabled"),
		BaseURL:       viper.GetString("tools.search.base_url"),
		MaxResults:    viper.GetInt("tools.search.max_results"),
		RatePerSecond: viper.GetFloat64("tools.search.rate_per_second"),
		Timeout:       viper.GetDuration("tools.search.timeout"),
	}
	cfg.Tools.Arxiv = loadLookupTool("tools.arxiv")
	cfg.Tools.Wikipedia = loadLookupTool("tools.wikipedia")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.max_tracked_peers", 1000)

	// LLM defaults: one best-effort attempt per round, no global timeout.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "0s")

	// Chat defaults
	viper.SetDefault("chat.title", "Chat with search")
	viper.SetDefault("chat.greeting", "Hi, I am a chatbot who can search the web. How can I help you?")
	viper.SetDefault("chat.placeholder", "What is machine learning?")
	viper.SetDefault("chat.history_mode", HistoryModeFull)
	viper.SetDefault("chat.max_agent_steps", 5)
	viper.SetDefault("chat.session_ttl", "12h")
	viper.SetDefault("chat.max_sessions", 10000)
	viper.SetDefault("chat.timezone", "UTC")
	viper.SetDefault("chat.cookie_name", "chat_session")
	viper.SetDefault("chat.cookie_secure", false)

	// Tools defaults
	viper.SetDefault("tools.search.enabled", true)
	viper.SetDefault("tools.search.max_results", 5)
	viper.SetDefault("tools.search.rate_per_second", 1.0)
	viper.SetDefault("tools.search.timeout", "15s")
	viper.SetDefault("tools.arxiv.enabled", true)
	viper.SetDefault("tools.arxiv.top_k_results", 1)
	viper.SetDefault("tools.arxiv.doc_content_chars_max", 200)
	viper.SetDefault("tools.arxiv.timeout", "15s")
	viper.SetDefault("tools.wikipedia.enabled", true)
	viper.SetDefault("tools.wikipedia.top_k_results", 1)
	viper.SetDefault("tools.wikipedia.doc_content_chars_max", 200)
	viper.SetDefault("tools.wikipedia.timeout", "15s")
}

// defaultProviders is the single Groq provider used when no
// llm.providers section is configured.
func defaultProviders() []ProviderConfig {
	return []ProviderConfig{
		{
			Name:     "groq",
			Enabled:  true,
			Priority: 1,
			APIKey:   expandEnvVar("${GROQ_API_KEY}"),
			Model:    "llama-3.3-70b-versatile",
			Timeout:  "60s",
		},
	}
}

func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return defaultProviders()
	}

	var providers []ProviderConfig
	providersRaw := viper.Get("llm.providers")
	if providersList, ok := providersRaw.([]interface{}); ok {
		for _, p := range providersList {
			if providerMap, ok := p.(map[string]interface{}); ok {
				provider := ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				}
				providers = append(providers, provider)
			}
		}
	}
	if len(providers) == 0 {
		return defaultProviders()
	}
	return providers
}

func loadLookupTool(prefix string) LookupToolConfig {
	return LookupToolConfig{
		Enabled:            viper.GetBool(prefix + ".enabled"),
		BaseURL:            viper.GetString(prefix + ".base_url"),
		TopKResults:        viper.GetInt(prefix + ".top_k_results"),
		DocContentCharsMax: viper.GetInt(prefix + ".doc_content_chars_max"),
		Timeout:            viper.GetDuration(prefix + ".timeout"),
	}
}

// loadDotEnv merges KEY=VALUE pairs from dir/.env into the global viper
// instance. Real environment variables keep precedence.
func loadDotEnv(dir string) error {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, ".env"))
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading .env file: %w", err)
	}

	for _, key := range v.AllKeys() {
		if _, set := os.LookupEnv(strings.ToUpper(key)); set {
			continue
		}
		viper.SetDefault(key, v.GetString(key))
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles env, .env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		// Unresolved placeholders mean "no key configured".
		return ""
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
