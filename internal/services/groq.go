package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"groqchat/internal/models"
)

// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

const systemPrompt = "You are a helpful assistant. Answer clearly, politely, and accurately."

type GroqService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGroqService(apiKey, baseURL string, timeout time.Duration) *GroqService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &GroqService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		// LLM requests can be slow; the handler blocks on this call.
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Wire types for the chat completions endpoint.

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// ChatCompletion sends the full ordered history (newest user turn last) and
// returns the assistant text. Exactly one outbound call is made per turn; no
// retries.
func (s *GroqService) ChatCompletion(ctx context.Context, settings models.Settings, history []models.ChatMessage) (string, error) {
	if s.apiKey == "" {
		return "", &CredentialError{Message: "GROQ_API_KEY is not set. Add it to the environment of the hosting platform."}
	}

	msgs := make([]chatCompletionMessage, 0, len(history)+1)
	msgs = append(msgs, chatCompletionMessage{Role: "system", Content: systemPrompt})
	for _, m := range history {
		msgs = append(msgs, chatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       settings.Model,
		Messages:    msgs,
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
	})
	if err != nil {
		return "", &UpstreamError{Message: fmt.Sprintf("encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &UpstreamError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Message: fmt.Sprintf("Groq request failed: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &UpstreamError{Message: fmt.Sprintf("read Groq response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", s.classifyError(resp.StatusCode, raw, settings.Model)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return "", &UpstreamError{Message: fmt.Sprintf("decode Groq response: %v", err)}
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", &UpstreamError{Message: "Groq returned an empty completion"}
	}

	return completion.Choices[0].Message.Content, nil
}

// classifyError maps an upstream failure onto the error taxonomy. Groq sends
// OpenAI-style error bodies: {"error":{"message","type","code"}}.
func (s *GroqService) classifyError(status int, raw []byte, model string) error {
	var body apiErrorBody
	json.Unmarshal(raw, &body)
	message := body.Error.Message
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}
	if message == "" {
		message = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &CredentialError{Message: fmt.Sprintf("Groq rejected the API key: %s", message)}
	case status == http.StatusTooManyRequests:
		return &RateLimitError{Message: fmt.Sprintf("Groq rate limit hit: %s", message)}
	case body.Error.Code == "model_decommissioned" || strings.Contains(message, "decommissioned"):
		// Retired models produce a confusing upstream error, so give a hint.
		return &ModelError{Model: model, Message: "That model was retired by Groq. Pick a different model in Setup."}
	case body.Error.Code == "model_not_found" || status == http.StatusNotFound:
		return &ModelError{Model: model, Message: fmt.Sprintf("Groq does not recognize model %q: %s", model, message)}
	default:
		return &UpstreamError{Message: fmt.Sprintf("Groq error (HTTP %d): %s", status, message)}
	}
}
