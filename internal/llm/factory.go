package llm

import (
	"fmt"
	"os"
)

// NewProvider creates a text-generation provider. Supported provider types:
// "openai" and "ollama". The ollamaHost argument is only used for ollama; an
// empty value falls back to OLLAMA_HOST and then the local default.
func NewProvider(providerType, model, ollamaHost string) (Provider, error) {
	switch providerType {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAIProvider(apiKey, model), nil

	case "ollama":
		host := ollamaHost
		if host == "" {
			host = os.Getenv("OLLAMA_HOST")
		}
		if host == "" {
			host = "http://localhost:11434"
		}
		return NewOllamaProvider(host, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
