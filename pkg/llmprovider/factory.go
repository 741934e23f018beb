package llmprovider

import (
	"context"
	"fmt"

	"ironlady-assistant/config"
	"ironlady-assistant/pkg/gemini"
	"ironlady-assistant/pkg/vertex"
)

// Initialize builds the external model provider from configuration.
// Returns (nil, nil) when no provider can be configured: the caller then runs
// in fallback-only mode for the process lifetime. Credentials are checked once
// here, never per request.
func Initialize(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.LLM.Provider {
	case "none":
		return nil, nil
	case "vertex":
		return initVertex(ctx, cfg)
	case "gemini":
		return initGemini(cfg)
	case "auto":
		if cfg.Vertex.CredentialsPath != "" {
			if p, err := initVertex(ctx, cfg); err == nil {
				return p, nil
			}
		}
		if cfg.Gemini.APIKey != "" {
			return initGemini(cfg)
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.LLM.Provider)
	}
}

func initVertex(ctx context.Context, cfg *config.Config) (Provider, error) {
	if cfg.Vertex.CredentialsPath == "" {
		return nil, fmt.Errorf("vertex: credentials path is required")
	}
	client, err := vertex.NewClientFromCredentialsFile(
		ctx,
		cfg.Vertex.CredentialsPath,
		cfg.Vertex.ProjectID,
		cfg.Vertex.Location,
		cfg.LLM.Model,
	)
	if err != nil {
		return nil, fmt.Errorf("vertex: %w", err)
	}
	return NewVertexAdapter(client), nil
}

func initGemini(cfg *config.Config) (Provider, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	client := gemini.NewClient(cfg.Gemini.APIKey)
	client.SetModel(cfg.LLM.Model)
	return NewGeminiAdapter(client), nil
}
