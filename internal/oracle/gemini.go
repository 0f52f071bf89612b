package oracle

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel    = "gemini-2.5-flash"
	DefaultTimeout  = 120 * time.Second
)

// GeminiConfig configures the REST client.
type GeminiConfig struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
	Logger   *log.Logger
}

// GeminiClient wraps the Gemini generateContent API
type GeminiClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
	logger     *log.Logger
}

// APIKeyFromEnv returns GEMINI_API_KEY, falling back to API_KEY.
func APIKeyFromEnv() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("API_KEY")
}

// NewGeminiClient creates a client using the API key from the environment.
func NewGeminiClient() *GeminiClient {
	return NewGeminiClientWithConfig(GeminiConfig{APIKey: APIKeyFromEnv()})
}

// NewGeminiClientWithConfig creates a client, filling unset fields with defaults.
func NewGeminiClientWithConfig(cfg GeminiConfig) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &GeminiClient{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: cfg.Logger,
	}
}

// Model returns the model name requests are sent to.
func (c *GeminiClient) Model() string { return c.model }

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   responseSchema `json:"responseSchema"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Interpret sends the JPEG snapshot with the fixed prompt and decodes the
// structured reply.
func (c *GeminiClient) Interpret(ctx context.Context, jpeg []byte) (Interpretation, error) {
	if c.apiKey == "" {
		return Interpretation{}, ErrMissingAPIKey
	}

	request := geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{InlineData: &inlineData{MimeType: "image/jpeg", Data: base64.StdEncoding.EncodeToString(jpeg)}},
				{Text: Prompt},
			},
		}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   interpretationSchema(),
		},
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return Interpretation{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return Interpretation{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Interpretation{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Interpretation{}, fmt.Errorf("failed to read response: %w", err)
	}
	c.logger.Printf("generateContent %s: status %d in %s", c.model, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode != http.StatusOK {
		var apiErr geminiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return Interpretation{}, fmt.Errorf("Gemini API error: %s - %s", apiErr.Error.Status, apiErr.Error.Message)
		}
		return Interpretation{}, fmt.Errorf("Gemini API error: status %d - %s", resp.StatusCode, string(body))
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(body, &gemResp); err != nil {
		return Interpretation{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	text := responseText(gemResp)
	if text == "" {
		return Interpretation{}, ErrEmptyResponse
	}
	return parseInterpretation(text)
}

func responseText(resp geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String())
}

// parseInterpretation decodes the model's JSON text, tolerating a fenced
// code block around it.
func parseInterpretation(text string) (Interpretation, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	var out Interpretation
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return Interpretation{}, fmt.Errorf("failed to decode interpretation: %w", err)
	}
	if err := out.Validate(); err != nil {
		return Interpretation{}, err
	}
	return out, nil
}
