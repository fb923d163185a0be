package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rayk_backend/internals/configs"
)

// LLMClient talks to an OpenAI-compatible chat-completions endpoint.
// It is optional: when no API key is configured, Analyze falls back to the
// keyword analyzer immediately.
type LLMClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewLLMClient() *LLMClient {
	return &LLMClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(configs.OpenAIBaseURL, "/"),
		apiKey:     configs.OpenAIAPIKey,
		model:      configs.GetEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

func (c *LLMClient) Enabled() bool { return c.apiKey != "" }

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const analysisPrompt = `You are an Arabic customer-feedback analyst. Return a JSON object with keys:
"sentiment" (one of positive/negative/neutral), "score" (number -1..1),
"dialect" (one of gulf/egyptian/levantine/maghrebi or empty string),
"keywords" (array of the words that drove the sentiment). Analyze:`

// AnalyzeText asks the LLM for a sentiment judgment. Any transport, status
// or parse failure returns an error; callers fall back to keywords.
func (c *LLMClient) AnalyzeText(ctx context.Context, text string) (*AnalysisResult, error) {
	if !c.Enabled() {
		return nil, errors.New("llm not configured")
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: analysisPrompt},
			{Role: "user", Content: text},
		},
		Temperature:    0,
		ResponseFormat: &respFormat{Type: "json_object"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("llm status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("llm returned no choices")
	}

	var result AnalysisResult
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("llm returned non-JSON content: %w", err)
	}
	if result.Sentiment != SentimentPositive &&
		result.Sentiment != SentimentNegative &&
		result.Sentiment != SentimentNeutral {
		return nil, errors.New("llm returned unknown sentiment")
	}
	result.Source = "llm"
	return &result, nil
}

// Analyzer combines the LLM pass with the keyword fallback.
type Analyzer struct {
	keywords *ArabicAnalyzer
	llm      *LLMClient
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{keywords: NewArabicAnalyzer(), llm: NewLLMClient()}
}

// Analyze never fails: LLM errors degrade to the keyword result.
func (a *Analyzer) Analyze(ctx context.Context, text string) AnalysisResult {
	if a.llm.Enabled() {
		if res, err := a.llm.AnalyzeText(ctx, text); err == nil {
			return *res
		}
	}
	return a.keywords.Analyze(text)
}
