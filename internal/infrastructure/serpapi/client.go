package serpapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"newschat-server/internal/domain/search"
	"newschat-server/internal/infrastructure/metrics"
	"newschat-server/internal/utils/platformerrors"
)

// ClientConfig captures the knobs exposed to operators for the search client.
type ClientConfig struct {
	APIKey   string
	Endpoint string
	Engine   string
	Timeout  time.Duration
}

// Client implements the SerpAPI search client: one GET per search, query
// URL-encoded, API key attached as a query parameter. No retries, no caching.
type Client struct {
	httpClient *resty.Client
	endpoint   string
	engine     string
	apiKey     string
}

var _ search.Client = (*Client)(nil)

// NewClient creates a new SerpAPI client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := resty.New().
		SetHeader("User-Agent", "newschat-server/1.0").
		SetTimeout(cfg.Timeout)

	return &Client{
		httpClient: httpClient,
		endpoint:   cfg.Endpoint,
		engine:     cfg.Engine,
		apiKey:     cfg.APIKey,
	}
}

// Search performs one web search. Transport failures, non-2xx statuses, and
// malformed JSON bodies all surface as external errors.
func (c *Client) Search(ctx context.Context, req search.Request) (*search.Result, error) {
	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("engine", c.engine).
		SetQueryParam("q", req.Query).
		SetQueryParam("api_key", c.apiKey).
		Get(c.endpoint)
	metrics.RecordProviderLatency("serpapi", "search", time.Since(start).Seconds())

	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "failed to query search API", err, "")
	}
	if resp.IsError() {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "search API returned an error status", nil, "",
			map[string]any{"status_code": resp.StatusCode()})
	}

	var result search.Result
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "failed to decode search API response", err, "")
	}

	log.Debug().
		Str("query", req.Query).
		Int("organic_count", len(result.OrganicResults)).
		Int("news_count", len(result.NewsResults)).
		Bool("answer_box", result.AnswerBox != nil).
		Msg("search completed")

	return &result, nil
}
