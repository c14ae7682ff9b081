package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the newschat service
type Config struct {
	// HTTP Server
	HTTPPort  string `env:"NEWSCHAT_HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"NEWSCHAT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"NEWSCHAT_LOG_FORMAT" envDefault:"json"` // json or console

	// Upper bound on one chat completion, covering both model calls and the
	// search call. Seconds.
	RequestTimeout int `env:"NEWSCHAT_REQUEST_TIMEOUT" envDefault:"30"`

	// Language model (Groq, OpenAI-compatible)
	GroqAPIKey      string  `env:"GROQ_API_KEY"`
	GroqBaseURL     string  `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GroqModel       string  `env:"GROQ_MODEL" envDefault:"llama3-8b-8192"`
	GroqTemperature float32 `env:"GROQ_TEMPERATURE" envDefault:"0.7"`
	GroqHTTPTimeout int     `env:"GROQ_HTTP_TIMEOUT" envDefault:"30"`

	// Search provider (SerpAPI)
	SerpAPIKey         string `env:"SERP_API_KEY"`
	SerpAPIBaseURL     string `env:"SERPAPI_BASE_URL" envDefault:"https://serpapi.com/search"`
	SerpAPIEngine      string `env:"SERPAPI_ENGINE" envDefault:"google"`
	SerpAPIHTTPTimeout int    `env:"SERPAPI_HTTP_TIMEOUT" envDefault:"15"`
}

// LoadConfig loads configuration from environment variables. Missing
// provider credentials fail here, at startup, rather than surfacing as a
// generic downstream error on the first request.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.GroqAPIKey) == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	if strings.TrimSpace(cfg.SerpAPIKey) == "" {
		return nil, fmt.Errorf("SERP_API_KEY is required")
	}
	return cfg, nil
}
