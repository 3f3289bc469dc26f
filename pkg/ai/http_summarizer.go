package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/meetingbot-team/meetingbot/pkg/config"
)

// HTTPSummarizer calls an external summarization service. Transient
// failures are retried with exponential backoff.
type HTTPSummarizer struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPSummarizer creates a summarizer backed by an external HTTP service
func NewHTTPSummarizer(cfg *config.AIConfig) *HTTPSummarizer {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HTTPSummarizer{
		baseURL: cfg.SummarizerURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type summarizeRequest struct {
	Title      string `json:"title"`
	Transcript string `json:"transcript"`
}

// Summarize posts the transcript to the external service
func (s *HTTPSummarizer) Summarize(ctx context.Context, meetingTitle, transcript string) (*SummaryResult, error) {
	payload, err := json.Marshal(summarizeRequest{
		Title:      meetingTitle,
		Transcript: transcript,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summarize request: %w", err)
	}

	var result SummaryResult
	submitFn := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/summarize", bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if s.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+s.apiKey)
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("summarizer returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("summarizer returned status %d", resp.StatusCode))
		}

		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode summarizer response: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute
	if err := backoff.Retry(submitFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}

	return &result, nil
}
