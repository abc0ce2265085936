package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"coffeepos/pkg/apperr"
)

const defaultChatBaseURL = "https://generativelanguage.googleapis.com/v1"

// ChatService calls the Gemini generateContent endpoint for the barista
// assistant widget. Failures here never touch the order flow.
type ChatService struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

func NewChatService(apiKey string) *ChatService {
	return &ChatService{
		APIKey:  apiKey,
		Model:   "gemini-1.5-flash",
		BaseURL: defaultChatBaseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type chatPart struct {
	Text string `json:"text"`
}

type chatContent struct {
	Parts []chatPart `json:"parts"`
}

type chatGenConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type chatRequest struct {
	Contents         []chatContent `json:"contents"`
	GenerationConfig chatGenConfig `json:"generationConfig"`
}

type chatResponse struct {
	Candidates []struct {
		Content chatContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the customer's question wrapped in the shop preamble
// and returns the model's reply.
func (s *ChatService) Complete(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apperr.New(apperr.Validation, "message is required")
	}
	if s.APIKey == "" {
		return "", apperr.New(apperr.ExternalService, "chat API key is not configured")
	}

	req := chatRequest{
		Contents: []chatContent{{Parts: []chatPart{{
			Text: "You are a helpful coffee shop assistant. Answer briefly in 1-2 sentences. Question: " + message,
		}}}},
		GenerationConfig: chatGenConfig{MaxOutputTokens: 100, Temperature: 0.7},
	}

	body, err := json.Marshal(&req)
	if err != nil {
		return "", apperr.Wrap(apperr.ExternalService, "encode chat request failed", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.BaseURL, s.Model, s.APIKey)
	httpResp, err := s.Client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", apperr.Wrap(apperr.ExternalService, "chat request failed", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", apperr.Wrap(apperr.ExternalService, "read chat response failed", err)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", apperr.Wrap(apperr.ExternalService, "decode chat response failed", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		msg := "chat API error"
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", apperr.New(apperr.ExternalService, msg)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "Sorry, I couldn't generate a response.", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
