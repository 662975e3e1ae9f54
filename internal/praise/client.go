package praise

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
)

// GenerationConfig is the sampling configuration passed to the provider.
type GenerationConfig struct {
	Temperature float64
	TopP        float64
	TopK        int
}

// Invoker is the narrow contract the generator depends on: a prompt plus
// a system instruction in, text out, or a classifiable failure.
type Invoker interface {
	Invoke(ctx context.Context, prompt, systemInstruction string, cfg GenerationConfig) (string, error)
}

// ProviderError is a failure reported by the generation provider.
type ProviderError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d %s: %s", e.StatusCode, e.Status, e.Message)
}

// RateLimitedError is surfaced after every retry attempt against a quota
// failure has been exhausted. Cooldown is the suggested user-facing wait.
type RateLimitedError struct {
	Attempts int
	Cooldown time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited after %d attempts, wait %s and try again", e.Attempts, e.Cooldown)
}

// IsQuotaError reports whether err is a rate/quota condition that is
// worth retrying, by status code or by the provider's error text markers.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	var pe *ProviderError
	if errors.As(err, &pe) && pe.StatusCode == http.StatusTooManyRequests {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "quota") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// --- Gemini types ---

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	TopK        int     `json:"topK"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"system_instruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GeminiClient calls the generateContent REST endpoint.
type GeminiClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewGeminiClient(baseURL, apiKey, model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *GeminiClient) Invoke(ctx context.Context, prompt, systemInstruction string, cfg GenerationConfig) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature: cfg.Temperature,
			TopP:        cfg.TopP,
			TopK:        cfg.TopK,
		},
	}
	if systemInstruction != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiErrorResponse
		pe := &ProviderError{StatusCode: resp.StatusCode}
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			pe.Status = errResp.Error.Status
			pe.Message = errResp.Error.Message
		} else {
			pe.Message = string(body)
		}
		return "", pe
	}

	var genResp geminiResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from provider")
	}

	var text strings.Builder
	for _, part := range genResp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}
