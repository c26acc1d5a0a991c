package analyze

import (
	"context"
	"errors"
	"fmt"

	"github.com/kozaktomas/skin-advisor/internal/config"
)

// NewProvider builds the analysis backend selected in the configuration.
// The indicator vocabulary comes from the mapping rules so LLM backends
// can never report a name the scan layer does not understand.
func NewProvider(ctx context.Context, cfg *config.Config, indicators []string) (Provider, error) {
	switch cfg.Analyzer.Backend {
	case "", "heuristic":
		return NewHeuristicProvider(), nil
	case "openai":
		if cfg.OpenAI.Token == "" {
			return nil, errors.New("OPENAI_TOKEN environment variable is required for the openai analyzer")
		}
		return NewOpenAIProvider(cfg.OpenAI.Token, indicators), nil
	case "gemini":
		if cfg.Gemini.APIKey == "" {
			return nil, errors.New("GEMINI_API_KEY environment variable is required for the gemini analyzer")
		}
		return NewGeminiProvider(ctx, cfg.Gemini.APIKey, indicators)
	case "ollama":
		return NewOllamaProvider(cfg.Ollama.URL, cfg.Ollama.Model, indicators), nil
	default:
		return nil, fmt.Errorf("unknown analyzer backend %q", cfg.Analyzer.Backend)
	}
}
