// Package githubapi provides a caller for the GitHub REST API user
// endpoints. It handles token authentication when configured and pauses
// before the rate limit is exhausted, based on the response headers.

package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/lougail/github-users-api/cfg"
	"github.com/lougail/github-users-api/internal/apperror"
	"github.com/lougail/github-users-api/pkg/log"
)

type Caller struct {
	Logger log.Logger
	Config *cfg.Config
	client *http.Client
	sleep  func(time.Duration)
	now    func() time.Time
}

func NewCaller(logger log.Logger, config *cfg.Config) (*Caller, error) {
	return &Caller{
		Logger: logger,
		Config: config,
		client: &http.Client{Timeout: 30 * time.Second},
		sleep:  time.Sleep,
		now:    time.Now,
	}, nil
}

// ListUsersSince fetches one page of user summaries starting after the
// given cursor id.
func (c *Caller) ListUsersSince(ctx context.Context, since int64, perPage int) ([]UserSummary, error) {
	fullUrl := fmt.Sprintf("%s?since=%d&per_page=%d", c.Config.GithubApi.ApiUrl, since, perPage)
	c.Logger.Debug(ctx, "Calling GitHub API: %s", fullUrl)

	resp, err := c.get(ctx, fullUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.SourceUnavailable(fmt.Errorf("unexpected status %s", resp.Status))
	}

	var summaries []UserSummary
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, apperror.SourceUnavailable(err)
	}

	c.handleRateLimit(ctx, resp)
	return summaries, nil
}

// GetUser fetches the detail record for one login.
func (c *Caller) GetUser(ctx context.Context, login string) (*UserDetail, error) {
	fullUrl := fmt.Sprintf("%s/%s", c.Config.GithubApi.ApiUrl, login)

	resp, err := c.get(ctx, fullUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.SourceUnavailable(fmt.Errorf("unexpected status %s for user %s", resp.Status, login))
	}

	detail := &UserDetail{}
	if err := json.NewDecoder(resp.Body).Decode(detail); err != nil {
		return nil, apperror.SourceUnavailable(err)
	}

	c.handleRateLimit(ctx, resp)
	return detail, nil
}

func (c *Caller) get(ctx context.Context, fullUrl string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullUrl, nil)
	if err != nil {
		return nil, apperror.SourceUnavailable(err)
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.Config.GithubApi.AccessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("token %s", c.Config.GithubApi.AccessToken))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.Logger.Error(ctx, "cannot send request: %v", err)
		return nil, apperror.SourceUnavailable(err)
	}
	return resp, nil
}

// handleRateLimit suspends the caller until the reset time when the
// remaining budget drops below the configured threshold. Missing or
// malformed headers count as zero, which only waits when a reset time is
// actually in the future.
func (c *Caller) handleRateLimit(ctx context.Context, resp *http.Response) {
	remaining, _ := strconv.Atoi(resp.Header.Get("X-RateLimit-Remaining"))
	reset, _ := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64)

	if remaining >= c.Config.GithubApi.RateLimitThreshold {
		return
	}

	waitTime := time.Unix(reset, 0).Sub(c.now())
	if waitTime <= 0 {
		return
	}

	c.Logger.Warn(ctx, "Rate limit low (%d remaining), waiting %v until reset", remaining, waitTime.Round(time.Second))
	c.sleep(waitTime)
}
