package config

import (
	"fmt"
	"time"
)

// Validate checks the loaded configuration. A missing provider API key is
// not an error: the chat page accepts a key override at runtime.
func (c *Config) Validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}

	switch c.Chat.HistoryMode {
	case HistoryModeFull, HistoryModeLatest:
	default:
		return fmt.Errorf("chat.history_mode must be %q or %q, got %q", HistoryModeFull, HistoryModeLatest, c.Chat.HistoryMode)
	}

	if c.Chat.MaxAgentSteps <= 0 {
		return fmt.Errorf("chat.max_agent_steps must be positive")
	}
	if c.Chat.MaxSessions <= 0 {
		return fmt.Errorf("chat.max_sessions must be positive")
	}
	if c.Chat.SessionTTL <= 0 {
		return fmt.Errorf("chat.session_ttl must be positive")
	}

	return nil
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true

			if provider.Timeout != "" {
				if _, err := time.ParseDuration(provider.Timeout); err != nil {
					return fmt.Errorf("provider %s: invalid timeout %q: %w", provider.Name, provider.Timeout, err)
				}
			}
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	if cfg.RetryAttempts < 1 {
		return fmt.Errorf("llm.retry_attempts must be at least 1")
	}
	if _, err := time.ParseDuration(cfg.RetryDelay); err != nil {
		return fmt.Errorf("llm.retry_delay: %w", err)
	}
	if _, err := time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
		return fmt.Errorf("llm.max_total_timeout: %w", err)
	}

	return nil
}

// HasAPIKey reports whether any enabled provider has a key configured.
func (c *LLMConfig) HasAPIKey() bool {
	for _, p := range c.Providers {
		if p.Enabled && p.APIKey != "" {
			return true
		}
	}
	return false
}

// Durations parses the retry delay and global timeout. Validate must have passed.
func (c *LLMConfig) Durations() (retryDelay, maxTotal time.Duration) {
	retryDelay, _ = time.ParseDuration(c.RetryDelay)
	maxTotal, _ = time.ParseDuration(c.MaxTotalTimeout)
	return retryDelay, maxTotal
}
