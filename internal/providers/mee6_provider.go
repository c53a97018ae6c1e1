package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/Fripe070/experienced/internal/common"
	"github.com/Fripe070/experienced/internal/models/dtos"
)

// Mee6 has no documented rate limit; one request per second with a small
// burst has proven safe for bulk exports.
const (
	mee6PageSize    = 1000
	mee6MaxRetries  = 3
	mee6BackoffBase = time.Second
)

// Mee6Provider pages through the third-party leaderboard API during imports.
type Mee6Provider struct {
	BaseURL string
	Client  *http.Client
	limiter *rate.Limiter
	backoff time.Duration
}

func NewMee6Provider(baseURL string) *Mee6Provider {
	return &Mee6Provider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
		backoff: mee6BackoffBase,
	}
}

// GetLeaderboardPage fetches one leaderboard page for a guild. HTTP 429 is
// retried with exponential backoff up to mee6MaxRetries; any other non-200
// status is fatal for the job.
func (p *Mee6Provider) GetLeaderboardPage(ctx context.Context, guildID uint64, token string, page int) (*dtos.Mee6LeaderboardPage, error) {
	url := fmt.Sprintf("%s/leaderboard/%s?limit=%d&page=%d",
		p.BaseURL, common.FormatID(guildID), mee6PageSize, page)

	var lastErr error
	for attempt := 0; attempt <= mee6MaxRetries; attempt++ {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, &ProviderError{Code: ErrCodeNetworkError, Message: "rate limiter interrupted", Err: err}
		}

		result, retryable, err := p.fetchPage(ctx, url, token)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}

		backoff := p.backoff << attempt
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, lastErr
}

func (p *Mee6Provider) fetchPage(ctx context.Context, url, token string) (*dtos.Mee6LeaderboardPage, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, &ProviderError{Code: ErrCodeNetworkError, Message: "failed to create request", Err: err}
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, true, &ProviderError{Code: ErrCodeNetworkError, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, true, &ProviderError{Code: ErrCodeRateLimited, Message: "leaderboard API rate limited"}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, &ProviderError{
			Code:    ErrCodeBadStatus,
			Message: fmt.Sprintf("leaderboard API returned status %d", resp.StatusCode),
		}
	}

	var page dtos.Mee6LeaderboardPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, false, &ProviderError{Code: ErrCodeBadResponse, Message: "failed to decode leaderboard page", Err: err}
	}
	return &page, false, nil
}
