package search

import (
	"context"
	"encoding/json"
)

// Client defines the search operations required by the domain layer.
type Client interface {
	Search(ctx context.Context, req Request) (*Result, error)
}

// Request represents a single web search against the provider.
type Request struct {
	Query string `json:"q"`
}

// Result contains the sections a SerpAPI response may populate. None of the
// three sections is guaranteed present.
type Result struct {
	OrganicResults []OrganicResult `json:"organic_results,omitempty"`
	AnswerBox      *AnswerBox      `json:"answer_box,omitempty"`
	NewsResults    []NewsResult    `json:"news_results,omitempty"`
}

// OrganicResult is one entry of the organic results listing.
type OrganicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// NewsResult is one entry of the news results listing.
type NewsResult struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	Date   string `json:"date,omitempty"`
	Link   string `json:"link"`
}

// AnswerBox is the provider's direct-answer section. Its shape varies per
// query, so the raw payload is retained alongside the fields we read.
type AnswerBox struct {
	Snippet string `json:"snippet,omitempty"`
	Answer  string `json:"answer,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON captures the raw payload so callers can fall back to the
// provider's own serialization when neither snippet nor answer is present.
func (b *AnswerBox) UnmarshalJSON(data []byte) error {
	type answerBox AnswerBox
	var decoded answerBox
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	decoded.raw = append(json.RawMessage(nil), data...)
	*b = AnswerBox(decoded)
	return nil
}

// RawJSON returns the answer box exactly as the provider serialized it.
func (b *AnswerBox) RawJSON() string {
	if len(b.raw) > 0 {
		return string(b.raw)
	}
	encoded, err := json.Marshal(b)
	if err != nil {
		return ""
	}
	return string(encoded)
}
