package infrastructure

import (
	"time"

	"github.com/google/wire"

	"newschat-server/internal/domain/chat"
	"newschat-server/internal/domain/search"
	"newschat-server/internal/infrastructure/config"
	"newschat-server/internal/infrastructure/groq"
	"newschat-server/internal/infrastructure/serpapi"
)

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	ProvideConfig,
	ProvideLLMClient,
	ProvideSearchClient,
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLLMClient provides the Groq-backed language model client
func ProvideLLMClient(cfg *config.Config) chat.LLMClient {
	return groq.NewClient(
		cfg.GroqAPIKey,
		cfg.GroqBaseURL,
		cfg.GroqModel,
		cfg.GroqTemperature,
		time.Duration(cfg.GroqHTTPTimeout)*time.Second,
	)
}

// ProvideSearchClient provides the SerpAPI search client
func ProvideSearchClient(cfg *config.Config) search.Client {
	return serpapi.NewClient(serpapi.ClientConfig{
		APIKey:   cfg.SerpAPIKey,
		Endpoint: cfg.SerpAPIBaseURL,
		Engine:   cfg.SerpAPIEngine,
		Timeout:  time.Duration(cfg.SerpAPIHTTPTimeout) * time.Second,
	})
}
