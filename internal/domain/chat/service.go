package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"newschat-server/internal/domain/search"
	"newschat-server/internal/utils/platformerrors"
)

const (
	queryDerivationInstruction = "Extract a search query from the user's message. Respond ONLY with the search query, nothing else."
	synthesisInstruction       = "You are a helpful news assistant. Use the search results provided to answer the user's question. Be concise and informative."
	searchAcknowledgement      = "I'll help you answer that. Let me search for information..."
)

// Service orchestrates one chat completion: derive a search query from the
// message, run the search, flatten the results, and synthesize the answer.
// Each step depends on the previous one, so the sequence is strictly serial,
// and there is no partial-result path: a failed search fails the request.
type Service struct {
	llm    LLMClient
	search search.Client
}

// NewService creates a new chat service.
func NewService(llm LLMClient, searchClient search.Client) *Service {
	return &Service{
		llm:    llm,
		search: searchClient,
	}
}

// Complete handles one chat request end to end.
func (s *Service) Complete(ctx context.Context, req Request) (*Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "message must not be empty", nil, "")
	}

	query, err := s.deriveSearchQuery(ctx, message)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to derive search query")
	}

	log.Debug().Str("query", query).Msg("derived search query")

	result, err := s.search.Search(ctx, search.Request{Query: query})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "search request failed")
	}

	extracted := search.BuildContext(result)

	log.Debug().Int("context_chars", len(extracted)).Msg("extracted search context")

	answer, err := s.synthesizeAnswer(ctx, message, extracted)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to synthesize answer")
	}

	return &Response{
		Response:     answer,
		HasToolCalls: true,
	}, nil
}

// deriveSearchQuery asks the model to compress the free-form message into a
// search-engine query. The completion is trimmed but otherwise unvalidated.
func (s *Service) deriveSearchQuery(ctx context.Context, message string) (string, error) {
	completion, err := s.llm.Complete(ctx, []Turn{
		{Role: RoleSystem, Content: queryDerivationInstruction},
		{Role: RoleUser, Content: message},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(completion), nil
}

// synthesizeAnswer asks the model for the final answer, grounded on the
// extracted search context. An empty context is valid and still prompted.
func (s *Service) synthesizeAnswer(ctx context.Context, message, extracted string) (string, error) {
	return s.llm.Complete(ctx, []Turn{
		{Role: RoleSystem, Content: synthesisInstruction},
		{Role: RoleUser, Content: message},
		{Role: RoleAssistant, Content: searchAcknowledgement},
		{Role: RoleUser, Content: fmt.Sprintf("Search results:\n%s\n\nPlease provide a helpful response based on these search results.", extracted)},
	})
}
