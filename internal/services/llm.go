package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"skillscan/resume-analyzer/internal/config"
)

// LLMService is the single chokepoint for talking to the chat-completion
// provider. Every orchestration operation goes through Chat.
type LLMService interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

type llmService struct {
	cfg        config.HuggingFaceConfig
	httpClient *http.Client
}

func NewLLMService(cfg config.HuggingFaceConfig) LLMService {
	return &llmService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat sends the prompt as a single user message and returns the reply
// content. Single attempt: no retry, no backoff.
func (s *llmService) Chat(ctx context.Context, prompt string) (string, error) {
	if s.cfg.APIKey == "" {
		return "", ErrMissingCredential
	}

	payload, err := json.Marshal(chatRequest{
		Model:       s.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	url := s.cfg.BaseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	// Read the full body before parsing so the raw text is available
	// for diagnostics on any failure path.
	rawText, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("❌ HuggingFace API error (%d): %s\n", resp.StatusCode, rawText)
		return "", fmt.Errorf("%w with status %d", ErrTransport, resp.StatusCode)
	}

	var data chatResponse
	if err := json.Unmarshal(rawText, &data); err != nil {
		log.Printf("❌ Failed to parse AI response as JSON: %s\n", rawText)
		return "", ErrMalformedEnvelope
	}

	if len(data.Choices) == 0 {
		log.Printf("❌ Invalid AI response structure: %s\n", rawText)
		return "", ErrUnexpectedShape
	}

	return data.Choices[0].Message.Content, nil
}
