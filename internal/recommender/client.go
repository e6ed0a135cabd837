// Package recommender dispatches best-effort recommendation requests to the
// external AI engine after a review is saved.
package recommender

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// recommendPath is the engine endpoint that generates suggestions for one review.
const recommendPath = "/recommend/by-review"

// defaultLimit is the number of suggestions requested per review.
const defaultLimit = 3

// Client fires recommendation requests at the external engine.
// Dispatch is asynchronous and outcomes are observable through logs only.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
}

// Config holds the outbound connection settings.
type Config struct {
	BaseURL        string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
}

// triggerRequest is the engine's expected payload.
type triggerRequest struct {
	ReviewText string `json:"review_text"`
	ReviewID   string `json:"review_id"`
	Limit      int    `json:"limit"`
}

// NewClient creates a recommendation client. The connect timeout bounds
// dialing; the request timeout bounds the whole exchange. Dispatches are
// rate limited to protect the engine from review bursts.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 30 * time.Second
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.ConnectTimeout,
				}).DialContext,
			},
		},
		// 1 request per second with a burst of 10 absorbs normal traffic
		// without letting a flood of reviews pile onto the engine.
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
		logger:      logger,
	}
}

// Trigger asks the engine to generate suggestions for a saved review.
// It returns immediately; the request runs on its own goroutine and any
// failure is logged, never surfaced to the caller. Review creation must not
// depend on the engine being reachable.
func (c *Client) Trigger(reviewID, reviewText string) {
	dispatchID := uuid.NewString()

	c.logger.Info("recommendation trigger dispatched",
		"dispatch_id", dispatchID,
		"review_id", reviewID,
	)

	go c.send(dispatchID, reviewID, reviewText)
}

// send performs the actual exchange. All error paths end in a log statement.
func (c *Client) send(dispatchID, reviewID, reviewText string) {
	body, err := json.Marshal(triggerRequest{
		ReviewText: reviewText,
		ReviewID:   reviewID,
		Limit:      defaultLimit,
	})
	if err != nil {
		c.logger.Error("recommendation trigger failed",
			"dispatch_id", dispatchID,
			"review_id", reviewID,
			"error", err,
		)
		return
	}

	ctx := context.Background()
	if err := c.rateLimiter.Wait(ctx); err != nil {
		c.logger.Error("recommendation trigger failed",
			"dispatch_id", dispatchID,
			"review_id", reviewID,
			"error", err,
		)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+recommendPath, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("recommendation trigger failed",
			"dispatch_id", dispatchID,
			"review_id", reviewID,
			"error", err,
		)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("recommendation trigger failed",
			"dispatch_id", dispatchID,
			"review_id", reviewID,
			"error", err,
		)
		return
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("recommendation trigger rejected",
			"dispatch_id", dispatchID,
			"review_id", reviewID,
			"status", resp.StatusCode,
		)
		return
	}

	c.logger.Info("recommendation trigger succeeded",
		"dispatch_id", dispatchID,
		"review_id", reviewID,
	)
}
