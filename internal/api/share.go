// Package api holds clients for outbound HTTP calls.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hockey-tracker/internal/config"
	"hockey-tracker/internal/domain"

	"github.com/valyala/fasthttp"
)

// ShareClient posts finished game summaries to a configured webhook, standing
// in for the old mail-out flow. A client without a webhook URL is disabled.
type ShareClient struct {
	webhookURL string
	apiKey     string
	client     *fasthttp.Client
}

func NewShareClient(cfg *config.Config) *ShareClient {
	return &ShareClient{
		webhookURL: cfg.ShareWebhookURL,
		apiKey:     cfg.ShareAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     10,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *ShareClient) Enabled() bool {
	return c.webhookURL != ""
}

// ShareGame posts the stored game as JSON. Failures are returned to the
// caller; nothing retries automatically.
func (c *ShareClient) ShareGame(ctx context.Context, game domain.StoredGame) error {
	if !c.Enabled() {
		return fmt.Errorf("share webhook not configured")
	}

	body, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to encode game: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.webhookURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	req.SetBody(body)

	deadline, ok := ctx.Deadline()
	if ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return fmt.Errorf("share request failed: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return fmt.Errorf("share request failed: status %d", resp.StatusCode())
	}
	return nil
}
