package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const anthropicVersion = "2023-06-01"

// Message is one turn in a messages-API conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the payload sent to the messages endpoint.
type CompletionRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// ContentBlock is one block of the model reply. Only "text" blocks carry
// usable output for this application.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Usage reports the token counts billed for one call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// CompletionResponse is the messages-API reply envelope.
type CompletionResponse struct {
	Content []ContentBlock `json:"content"`
	Usage   Usage          `json:"usage"`
}

// FirstText returns the text of the first content block, or an error when the
// reply opens with a non-text block. Callers treat that error as a processing
// failure, distinct from the downstream JSON-parse failures they swallow.
func (r *CompletionResponse) FirstText() (string, error) {
	if len(r.Content) == 0 {
		return "", fmt.Errorf("anthropic: empty response content")
	}
	if r.Content[0].Type != "text" {
		return "", fmt.Errorf("anthropic: unexpected response content type %q", r.Content[0].Type)
	}
	return r.Content[0].Text, nil
}

// CompletionClient abstracts the outbound model call so services can be
// tested with a stub.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// AnthropicClient talks to an Anthropic-compatible messages endpoint.
// One request per invocation, no retries; the handler blocks until the
// upstream responds or the client timeout fires.
type AnthropicClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewAnthropicClient(baseURL, apiKey string) *AnthropicClient {
	return &AnthropicClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Complete sends one messages request and decodes the reply.
func (c *AnthropicClient) Complete(ctx context.Context, payload CompletionRequest) (*CompletionResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("anthropic: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("anthropic: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic: endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("anthropic: endpoint returned %d", resp.StatusCode)
	}

	var result CompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("anthropic: decode response: %w", err)
	}
	return &result, nil
}
