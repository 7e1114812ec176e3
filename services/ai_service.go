package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Sishir120/PackYourBags-sub000/config"
)

// Default base URLs per provider; all of them speak the OpenAI chat format
var providerBaseURLs = map[string]string{
	"openai":     "https://api.openai.com/v1",
	"openrouter": "https://openrouter.ai/api/v1",
	"deepseek":   "https://api.deepseek.com/v1",
	"ollama":     "http://localhost:11434/v1",
}

// AIService forwards prompts to the configured chat-completion provider
type AIService struct {
	provider   string
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewAIService(cfg *config.Config) *AIService {
	baseURL := cfg.AIBaseURL
	if baseURL == "" {
		baseURL = providerBaseURLs[cfg.AIProvider]
	}
	if baseURL == "" {
		baseURL = providerBaseURLs["openai"]
	}

	s := &AIService{
		provider: cfg.AIProvider,
		baseURL:  baseURL,
		apiKey:   cfg.AIAPIKey,
		model:    cfg.AIModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	if !s.Configured() {
		log.Printf("AI provider %s has no API key - responses will use canned fallback", cfg.AIProvider)
	}
	return s
}

// Configured reports whether real completions can be requested. Ollama runs
// locally and needs no key.
func (s *AIService) Configured() bool {
	return s.apiKey != "" || s.provider == "ollama"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Chat sends a single-turn prompt and returns the assistant text. When no
// provider is configured it returns a canned answer instead of failing.
func (s *AIService) Chat(systemPrompt, userPrompt string) (string, error) {
	if !s.Configured() {
		return s.mockAnswer(userPrompt), nil
	}

	messages := []chatMessage{}
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: userPrompt})

	payload := chatRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   800,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %v", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %v", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse chat response: %v", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("provider error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("provider returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func (s *AIService) mockAnswer(prompt string) string {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "itinerary") || strings.Contains(p, "plan"):
		return "Here is a simple plan: spend your mornings exploring the old town, " +
			"afternoons on a guided tour, and evenings sampling local food markets. " +
			"(Configure an AI provider for personalized planning.)"
	case strings.Contains(p, "budget") || strings.Contains(p, "price") || strings.Contains(p, "deal"):
		return "ANALYSIS: Prices in this range are typical for the season. Booking " +
			"2-3 weeks ahead usually locks in the best fares. (Configure an AI " +
			"provider for live analysis.)"
	default:
		return "Thanks for asking! I can help you discover destinations, plan trips " +
			"and track prices. (Configure an AI provider for full answers.)"
	}
}
