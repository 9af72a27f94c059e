// Package deepseek fetches word enrichment data (translation, phonetic
// transcription, syllable split) from the DeepSeek chat-completions API.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/wordmemo/wordmemo-backend/internal/config"
	"github.com/wordmemo/wordmemo-backend/internal/provider"
)

// Provider calls the DeepSeek chat-completions endpoint and parses the
// model output into a provider.EnrichmentResult.
type Provider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Provider from EnrichmentConfig.
func New(cfg config.EnrichmentConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "deepseek"),
	}
}

// NewWithURL creates a Provider with a custom endpoint (for testing).
func NewWithURL(baseURL, apiKey, model string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "deepseek"),
	}
}

// FetchWordInfo fetches enrichment data for the given word.
// Returns nil, nil when the provider is not configured, the response cannot
// be parsed, or the parsed payload is unusable — callers treat all three
// identically as unavailability.
func (p *Provider) FetchWordInfo(ctx context.Context, word string) (*provider.EnrichmentResult, error) {
	if p.apiKey == "" {
		p.log.WarnContext(ctx, "deepseek api key not configured", slog.String("word", word))
		return nil, nil
	}

	payload, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "user", Content: wordInfoPrompt(word)},
		},
		Temperature: 0.3,
		MaxTokens:   300,
	})
	if err != nil {
		return nil, fmt.Errorf("deepseek: marshal request: %w", err)
	}

	p.log.DebugContext(ctx, "deepseek request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("deepseek: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.doWithRetry(ctx, req, payload, word)
	if err != nil {
		p.log.ErrorContext(ctx, "deepseek request failed",
			slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("deepseek: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("deepseek: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("deepseek: read body: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("deepseek: decode json: %w", err)
	}

	result := parseWordInfo(word, cr.content())

	if result == nil {
		p.log.WarnContext(ctx, "deepseek response unusable", slog.String("word", word))
		return nil, nil
	}

	p.log.DebugContext(ctx, "deepseek response",
		slog.String("word", word),
		slog.Int("syllables", len(result.Syllables)),
	)

	return result, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. The request body is rebuilt for the second attempt.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, payload []byte, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "deepseek retry", slog.String("word", word), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retryReq, rerr := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if rerr != nil {
		return nil, rerr
	}
	retryReq.Header = req.Header.Clone()

	return p.httpClient.Do(retryReq)
}

// wordInfoPrompt asks the model for a strict one-object JSON answer.
func wordInfoPrompt(word string) string {
	return fmt.Sprintf(`Provide details for the word %q. Return strictly in this JSON format:
{
  "phonetic": "/IPA/",
  "translation": "Chinese translation",
  "syllables": "syllable separation",
  "phonetic_analysis": "phonics breakdown (optional)",
  "root_affix": "root and affix notes (optional)"
}

Example:
Input: conversation
Output: {"phonetic": "/ˌkɒnvəˈseɪʃn/", "translation": "会话", "syllables": "con ver sa tion"}
Input: %s
Output:`, word, word)
}
