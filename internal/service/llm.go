package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cookai/backend/config"
)

const (
	chatTemperature = 0.7
	chatMaxTokens   = 1000
	requestTimeout  = 30 * time.Second
)

// Message represents a message in a chat completion request
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the provider-specific request body
type CompletionRequest struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

// LLMClient shapes and issues chat-completion requests against the
// configured provider endpoint.
type LLMClient struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

func NewLLMClient(cfg *config.Config) *LLMClient {
	return &LLMClient{
		apiKey: cfg.LLMAPIKey,
		apiURL: cfg.LLMAPIURL,
		model:  cfg.LLMModel,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// ChatCompletion sends a system+user message pair and returns the raw text
// of the first choice.
func (c *LLMClient) ChatCompletion(ctx context.Context, persona, prompt string) (string, error) {
	reqBody := CompletionRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: persona},
			{Role: "user", Content: prompt},
		},
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	}
	return c.complete(ctx, reqBody)
}

// StructuredCompletion asks the provider for a JSON object response and
// decodes the returned content as a generic key/value mapping.
func (c *LLMClient) StructuredCompletion(ctx context.Context, persona, prompt string) (map[string]interface{}, error) {
	reqBody := CompletionRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: persona},
			{Role: "user", Content: prompt},
		},
		Temperature:    chatTemperature,
		ResponseFormat: map[string]string{"type": "json_object"},
	}

	content, err := c.complete(ctx, reqBody)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, &UpstreamParseError{Err: err}
	}
	return result, nil
}

func (c *LLMClient) complete(ctx context.Context, reqBody CompletionRequest) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.send(ctx, jsonData)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamRequestError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamRequestError{Err: fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &UpstreamParseError{Err: err}
	}
	if len(result.Choices) == 0 {
		return "", &UpstreamParseError{Err: fmt.Errorf("no choices in API response")}
	}

	return result.Choices[0].Message.Content, nil
}

// send issues the HTTP request, retrying once on transient network failure.
func (c *LLMClient) send(ctx context.Context, jsonData []byte) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			log.Printf("retrying LLM request after error: %v", lastErr)
			select {
			case <-ctx.Done():
				return nil, &UpstreamRequestError{Err: ctx.Err()}
			case <-time.After(time.Second):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
		if err != nil {
			return nil, &UpstreamRequestError{Err: err}
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}
	return nil, &UpstreamRequestError{Err: lastErr}
}
