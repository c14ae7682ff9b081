package chat_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newschat-server/internal/domain/chat"
	"newschat-server/internal/domain/search"
	"newschat-server/internal/utils/platformerrors"
)

// MockLLMClient is a mock implementation of chat.LLMClient for testing.
type MockLLMClient struct {
	CompleteFunc func(ctx context.Context, turns []chat.Turn) (string, error)
	Calls        [][]chat.Turn
}

func (m *MockLLMClient) Complete(ctx context.Context, turns []chat.Turn) (string, error) {
	m.Calls = append(m.Calls, turns)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, turns)
	}
	return "", nil
}

// MockSearchClient is a mock implementation of search.Client for testing.
type MockSearchClient struct {
	SearchFunc func(ctx context.Context, req search.Request) (*search.Result, error)
	Calls      []search.Request
}

func (m *MockSearchClient) Search(ctx context.Context, req search.Request) (*search.Result, error) {
	m.Calls = append(m.Calls, req)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, req)
	}
	return &search.Result{}, nil
}

func TestCompleteHappyPath(t *testing.T) {
	llm := &MockLLMClient{
		CompleteFunc: func(ctx context.Context, turns []chat.Turn) (string, error) {
			// First call derives the query, second synthesizes the answer.
			if len(turns) == 2 {
				return "  AI regulation news \n", nil
			}
			return "Here is the latest on AI regulation.", nil
		},
	}
	searchClient := &MockSearchClient{
		SearchFunc: func(ctx context.Context, req search.Request) (*search.Result, error) {
			return &search.Result{
				OrganicResults: []search.OrganicResult{
					{Title: "EU AI Act", Snippet: "The act entered into force", Link: "https://europa.example"},
					{Title: "US framework", Snippet: "A new framework was proposed", Link: "https://us.example"},
				},
				NewsResults: []search.NewsResult{
					{Title: "Regulators move", Source: "Newswire", Date: "today", Link: "https://news.example"},
				},
			}, nil
		},
	}

	service := chat.NewService(llm, searchClient)
	resp, err := service.Complete(context.Background(), chat.Request{Message: "what's the latest on AI regulation"})

	require.NoError(t, err)
	assert.Equal(t, "Here is the latest on AI regulation.", resp.Response)
	assert.True(t, resp.HasToolCalls)

	require.Len(t, searchClient.Calls, 1)
	assert.Equal(t, "AI regulation news", searchClient.Calls[0].Query, "derived query must be trimmed")

	require.Len(t, llm.Calls, 2)
	synthesis := llm.Calls[1]
	require.Len(t, synthesis, 4)
	assert.Equal(t, chat.RoleSystem, synthesis[0].Role)
	assert.Equal(t, chat.RoleUser, synthesis[1].Role)
	assert.Equal(t, "what's the latest on AI regulation", synthesis[1].Content)
	assert.Equal(t, chat.RoleAssistant, synthesis[2].Role)
	assert.Equal(t, chat.RoleUser, synthesis[3].Role)
	assert.True(t, strings.HasPrefix(synthesis[3].Content, "Search results:\n"))
}

func TestCompleteEmptyMessageRejectedBeforeCollaborators(t *testing.T) {
	llm := &MockLLMClient{}
	searchClient := &MockSearchClient{}
	service := chat.NewService(llm, searchClient)

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := service.Complete(context.Background(), chat.Request{Message: message})
		require.Error(t, err)
		assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	}

	assert.Empty(t, llm.Calls)
	assert.Empty(t, searchClient.Calls)
}

func TestCompleteSearchFailureFailsRequest(t *testing.T) {
	llm := &MockLLMClient{
		CompleteFunc: func(ctx context.Context, turns []chat.Turn) (string, error) {
			return "some query", nil
		},
	}
	searchClient := &MockSearchClient{
		SearchFunc: func(ctx context.Context, req search.Request) (*search.Result, error) {
			return nil, errors.New("connection refused")
		},
	}

	service := chat.NewService(llm, searchClient)
	resp, err := service.Complete(context.Background(), chat.Request{Message: "anything"})

	require.Error(t, err)
	assert.Nil(t, resp)
	// No answer is attempted from general knowledge when search fails.
	assert.Len(t, llm.Calls, 1)
}

func TestCompleteQueryDerivationFailurePropagates(t *testing.T) {
	llm := &MockLLMClient{
		CompleteFunc: func(ctx context.Context, turns []chat.Turn) (string, error) {
			return "", errors.New("rate limited")
		},
	}
	searchClient := &MockSearchClient{}

	service := chat.NewService(llm, searchClient)
	_, err := service.Complete(context.Background(), chat.Request{Message: "anything"})

	require.Error(t, err)
	assert.Empty(t, searchClient.Calls)
}

func TestCompleteEmptySearchSectionsStillSynthesizes(t *testing.T) {
	var synthesisPrompt string
	llm := &MockLLMClient{
		CompleteFunc: func(ctx context.Context, turns []chat.Turn) (string, error) {
			if len(turns) == 4 {
				synthesisPrompt = turns[3].Content
				return "answered without context", nil
			}
			return "query", nil
		},
	}
	searchClient := &MockSearchClient{
		SearchFunc: func(ctx context.Context, req search.Request) (*search.Result, error) {
			return &search.Result{}, nil
		},
	}

	service := chat.NewService(llm, searchClient)
	resp, err := service.Complete(context.Background(), chat.Request{Message: "obscure question"})

	require.NoError(t, err)
	assert.Equal(t, "answered without context", resp.Response)
	assert.Contains(t, synthesisPrompt, "Search results:\n\n")
}
