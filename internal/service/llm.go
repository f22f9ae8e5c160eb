package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/models"
)

const chatSystemPrompt = "You are a smart and friendly AI assistant that can talk about anything, not just food. Be clear, helpful, and engaging."

// LLMConfig configures the chat-completions client.
type LLMConfig struct {
	APIKey   string
	APIURL   string
	Model    string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// LLMService talks to a chat-completions API. It backs both the condition
// classification oracle and the chat proxy. The recommender core never
// depends on it directly; it is injected behind ConditionClassifier.
type LLMService struct {
	apiKey   string
	apiURL   string
	model    string
	client   *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewLLMService creates a new LLMService instance. cache may be nil to
// disable classification caching.
func NewLLMService(cfg LLMConfig, cache *redis.Client, logger *zap.Logger) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM API key must be set")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = "https://api.deepseek.com/v1/chat/completions"
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-chat"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LLMService{
		apiKey:   cfg.APIKey,
		apiURL:   cfg.APIURL,
		model:    cfg.Model,
		client:   &http.Client{Timeout: cfg.Timeout},
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
		logger:   logger,
	}, nil
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat-completions request
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
}

// ClassifyCondition asks the model to pick the best condition code for the
// symptom text from the known {code,name} pairs. A cached answer is reused
// when Redis is configured; cache failures never surface.
func (s *LLMService) ClassifyCondition(ctx context.Context, symptoms string, candidates []models.Condition) (*Classification, error) {
	type pair struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	pairs := make([]pair, 0, len(candidates))
	for _, c := range candidates {
		pairs = append(pairs, pair{Code: c.Code, Name: c.Name})
	}
	pairsJSON, err := json.Marshal(pairs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal condition list: %w", err)
	}

	prompt := fmt.Sprintf(`User symptoms: %q.
Return the best matching condition code from this list (JSON): %s
If unsure, return code "GENERAL". Output only JSON: {"code":"...","name":"...","notes":"..."}.`, symptoms, pairsJSON)

	cacheKey := fmt.Sprintf("oracle:classify:%x", sha256.Sum256([]byte(s.model+"|"+prompt)))
	if cached, ok := s.cachedClassification(ctx, cacheKey); ok {
		return cached, nil
	}

	content, err := s.complete(ctx, Request{
		Model: s.model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    0.0,
		MaxTokens:      200,
	})
	if err != nil {
		return nil, err
	}

	var result Classification
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse classification: %w", err)
	}
	if result.Code == "" {
		return nil, fmt.Errorf("classification response has no code")
	}

	s.storeClassification(ctx, cacheKey, &result)
	return &result, nil
}

// Chat forwards a user message plus prior history to the model and returns
// the reply text. No business logic lives here.
func (s *LLMService) Chat(ctx context.Context, message string, history []Message) (string, error) {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: chatSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: message})

	return s.complete(ctx, Request{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.8,
		MaxTokens:   500,
	})
}

// complete sends one chat-completions request and extracts the first choice.
func (s *LLMService) complete(ctx context.Context, reqBody Request) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}

func (s *LLMService) cachedClassification(ctx context.Context, key string) (*Classification, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("classification cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var result Classification
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (s *LLMService) storeClassification(ctx context.Context, key string, result *Classification) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("classification cache write failed", zap.Error(err))
	}
}
