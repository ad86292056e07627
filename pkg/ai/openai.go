package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.openai.com/v1/chat/completions"
	defaultModel   = "gpt-4o-mini"
)

// OpenAIGenerator calls a chat-completions endpoint and asks for strict JSON.
type OpenAIGenerator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
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

type chatError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func NewOpenAIGenerator(apiKey, baseURL, model string, logger *zap.Logger) *OpenAIGenerator {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}

	return &OpenAIGenerator{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (g *OpenAIGenerator) GenerateRecipes(ctx context.Context, ingredients []string) ([]models.Recipe, error) {
	prompt := fmt.Sprintf(
		"Suggest three recipes using these ingredients: %s. "+
			"Answer with a JSON array only, each element having the fields "+
			"title, description, ingredients (array of strings) and steps (array of strings).",
		strings.Join(ingredients, ", "))

	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a recipe assistant. Respond with JSON only."},
			{Role: "user", Content: prompt},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recipe generation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr chatError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("recipe generation failed: %s", apiErr.Error.Message)
		}
		return nil, fmt.Errorf("recipe generation failed with status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("recipe generation returned no choices")
	}

	recipes, err := parseRecipes(completion.Choices[0].Message.Content)
	if err != nil {
		g.logger.Warn("could not parse generated recipes", zap.Error(err))
		return nil, err
	}

	return recipes, nil
}

// parseRecipes tolerates the model wrapping its JSON in a markdown fence.
func parseRecipes(content string) ([]models.Recipe, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var recipes []models.Recipe
	if err := json.Unmarshal([]byte(content), &recipes); err != nil {
		return nil, fmt.Errorf("unexpected completion format: %w", err)
	}
	return recipes, nil
}
