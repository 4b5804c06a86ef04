// package summarize implements the abstract-summarization collaborator: given
// a draft abstract it returns a one-sentence summary plus suggested keywords.
// The result only feeds the submission form draft; it never reaches the
// entity store directly.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/linguanexus/nexus-service/internal/apperrors"
	"github.com/linguanexus/nexus-service/internal/config"
	"github.com/linguanexus/nexus-service/pkg/api"
)

const systemPrompt = "Analyze the academic abstract you are given. Respond with JSON " +
	`of the shape {"summary": string, "keywords": [string]}: a one-sentence ` +
	"concise summary and five relevant keywords."

// Client suggests a summary and keywords for a draft abstract.
type Client interface {
	Suggest(ctx context.Context, abstract string) (*api.Suggestion, error)
}

// OpenAIClient implements Client against OpenAI-compatible chat-completion
// endpoints.
type OpenAIClient struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient builds a client from configuration.
func NewOpenAIClient(cfg config.Summarizer) *OpenAIClient {
	return &OpenAIClient{
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Suggest posts the abstract and parses the model's JSON answer.
func (c *OpenAIClient) Suggest(ctx context.Context, abstract string) (*api.Suggestion, error) {
	if c.apiKey == "" || c.endpoint == "" || c.model == "" {
		return nil, apperrors.ErrSummarizerUnset
	}

	body, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": abstract},
		},
		"response_format": map[string]string{"type": "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal summarize payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggest keywords: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("summarizer error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("decode summarizer response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("summarizer returned no choices")
	}

	var suggestion api.Suggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(completion.Choices[0].Message.Content)), &suggestion); err != nil {
		return nil, fmt.Errorf("decode suggestion: %w", err)
	}

	return &suggestion, nil
}
