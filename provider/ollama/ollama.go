// Package ollama implements the content-generation capability against a
// local Ollama server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "qwen3:0.6b"
	defaultTimeout = 60 * time.Second
)

// Config holds configuration for the Ollama generator.
type Config struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Generator implements provider.Generator using the Ollama generate API.
type Generator struct {
	config Config
}

// New creates an Ollama generator with the given config.
func New(cfg Config) *Generator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &Generator{config: cfg}
}

func (g *Generator) Name() string { return "ollama" }

// generateRequest is the request body for POST /api/generate.
type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

// generateResponse is the non-streaming response body.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// Generate sends the role context plus instruction as a single prompt.
// Small-model options keep responses short and fast.
func (g *Generator) Generate(ctx context.Context, roleContext, instruction string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	reqBody := generateRequest{
		Model:  g.config.Model,
		Prompt: roleContext + "\n" + instruction,
		Stream: false,
		Options: map[string]any{
			"temperature":    0.3,
			"num_predict":    200,
			"top_k":          10,
			"top_p":          0.8,
			"repeat_penalty": 1.1,
		},
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("ollama: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.config.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ollama: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: API error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp generateResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("ollama: unmarshal response: %w", err)
	}
	if apiResp.Error != "" {
		return "", fmt.Errorf("ollama: %s", apiResp.Error)
	}

	content := stripThinking(apiResp.Response)
	if content == "" {
		return "", fmt.Errorf("ollama: empty response")
	}
	return content, nil
}

// stripThinking removes <think>...</think> blocks emitted by reasoning
// models before the actual answer.
func stripThinking(s string) string {
	for {
		start := strings.Index(s, "<think>")
		if start < 0 {
			break
		}
		end := strings.Index(s, "</think>")
		if end < 0 {
			s = s[:start]
			break
		}
		s = s[:start] + s[end+len("</think>"):]
	}
	return strings.TrimSpace(s)
}
