package assistant

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/vander-supa3/academia-nutricional/internal/config"
)

// Module provides the assistant provider client
var Module = fx.Module("assistant",
	fx.Provide(NewProvider),
)

// NewProvider builds the Provider from the application configuration. The
// client is constructed even when the provider is not configured; the run
// endpoint rejects requests before any provider call happens.
func NewProvider(cfg *config.Config, log *slog.Logger) Provider {
	if !cfg.Assistant.IsConfigured() {
		log.Warn("assistant provider not configured, run requests will be rejected")
	}
	return NewClient(Config{
		APIKey:      cfg.Assistant.APIKey,
		AssistantID: cfg.Assistant.AssistantID,
		BaseURL:     cfg.Assistant.BaseURL,
	})
}
