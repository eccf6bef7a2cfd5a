package llmprovider

import (
	"context"
	"fmt"
	"time"

	"taskboard/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic.
// It satisfies the same single-method completion contract as the
// individual providers, so callers never see the chain.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// NewManager creates a new provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config.RetryAttempts < 1 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Complete iterates through providers in priority order with fallback logic
func (m *Manager) Complete(ctx context.Context, prompt string) (string, error) {
	if len(m.providers) == 0 {
		return "", ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("global timeout exceeded: %w", ctx.Err())
		default:
		}

		out, err := m.completeWithRetry(ctx, provider, prompt)
		if err == nil {
			m.logger.Debugf(ctx, "llm completion succeeded: provider=%s model=%s", provider.Name(), provider.Model())
			return out, nil
		}

		m.logger.Warnf(ctx, "llm completion failed: provider=%s model=%s err=%v", provider.Name(), provider.Model(), err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return "", fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// completeWithRetry retries a single provider with linear backoff
func (m *Manager) completeWithRetry(ctx context.Context, provider Provider, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		out, err := provider.Complete(ctx, prompt)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}

	return "", lastErr
}
