package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newschat-server/internal/domain/chat"
	"newschat-server/internal/domain/search"
	"newschat-server/internal/infrastructure/config"
	"newschat-server/internal/interfaces/httpserver"
	"newschat-server/internal/interfaces/httpserver/handlers"
)

type stubLLM struct {
	completeFunc func(ctx context.Context, turns []chat.Turn) (string, error)
	calls        int
}

func (s *stubLLM) Complete(ctx context.Context, turns []chat.Turn) (string, error) {
	s.calls++
	if s.completeFunc != nil {
		return s.completeFunc(ctx, turns)
	}
	return "", nil
}

type stubSearch struct {
	searchFunc func(ctx context.Context, req search.Request) (*search.Result, error)
	calls      int
}

func (s *stubSearch) Search(ctx context.Context, req search.Request) (*search.Result, error) {
	s.calls++
	if s.searchFunc != nil {
		return s.searchFunc(ctx, req)
	}
	return &search.Result{}, nil
}

func newTestServer(t *testing.T, llm chat.LLMClient, searchClient search.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{HTTPPort: "0", RequestTimeout: 5}
	service := chat.NewService(llm, searchClient)
	handler := handlers.NewChatHandler(cfg, service)
	return httpserver.NewHTTPServer(cfg, handler).Engine()
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestChatEndpointSuccess(t *testing.T) {
	llm := &stubLLM{
		completeFunc: func(ctx context.Context, turns []chat.Turn) (string, error) {
			if len(turns) == 2 {
				return "AI regulation news", nil
			}
			return "Regulators on both sides of the Atlantic moved this week.", nil
		},
	}
	searchClient := &stubSearch{
		searchFunc: func(ctx context.Context, req search.Request) (*search.Result, error) {
			assert.Equal(t, "AI regulation news", req.Query)
			return &search.Result{
				OrganicResults: []search.OrganicResult{
					{Title: "EU AI Act", Snippet: "in force", Link: "l1"},
					{Title: "US order", Snippet: "proposed", Link: "l2"},
				},
				NewsResults: []search.NewsResult{
					{Title: "Vote passes", Source: "Wire", Date: "today", Link: "l3"},
				},
			}, nil
		},
	}

	engine := newTestServer(t, llm, searchClient)
	recorder := doRequest(engine, http.MethodPost, "/v1/chat", `{"message":"what's the latest on AI regulation"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Response     string `json:"response"`
		HasToolCalls bool   `json:"hasToolCalls"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Regulators on both sides of the Atlantic moved this week.", body.Response)
	assert.True(t, body.HasToolCalls)
	assert.Equal(t, 1, searchClient.calls)
	assert.Equal(t, 2, llm.calls)
}

func TestChatEndpointSearchFailureReturnsUniformShape(t *testing.T) {
	llm := &stubLLM{
		completeFunc: func(ctx context.Context, turns []chat.Turn) (string, error) {
			return "query", nil
		},
	}
	searchClient := &stubSearch{
		searchFunc: func(ctx context.Context, req search.Request) (*search.Result, error) {
			return nil, errors.New("network is unreachable")
		},
	}

	engine := newTestServer(t, llm, searchClient)
	recorder := doRequest(engine, http.MethodPost, "/v1/chat", `{"message":"anything"}`)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Error processing your request", body["message"])
	assert.NotEmpty(t, body["error"])
	assert.NotContains(t, body, "response")
}

func TestChatEndpointMissingMessageRejectedEarly(t *testing.T) {
	llm := &stubLLM{}
	searchClient := &stubSearch{}

	engine := newTestServer(t, llm, searchClient)

	for _, body := range []string{`{}`, `{"message":""}`, `not json`} {
		recorder := doRequest(engine, http.MethodPost, "/v1/chat", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "body: %s", body)
	}

	assert.Zero(t, llm.calls)
	assert.Zero(t, searchClient.calls)
}

func TestChatEndpointMethodGuard(t *testing.T) {
	llm := &stubLLM{}
	searchClient := &stubSearch{}

	engine := newTestServer(t, llm, searchClient)
	recorder := doRequest(engine, http.MethodGet, "/v1/chat", "")

	require.Equal(t, http.StatusMethodNotAllowed, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Method not allowed", body["message"])
	assert.Zero(t, llm.calls)
	assert.Zero(t, searchClient.calls)
}

func TestHealthEndpoints(t *testing.T) {
	engine := newTestServer(t, &stubLLM{}, &stubSearch{})

	assert.Equal(t, http.StatusOK, doRequest(engine, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(engine, http.MethodGet, "/readyz", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(engine, http.MethodGet, "/metrics", "").Code)
}
