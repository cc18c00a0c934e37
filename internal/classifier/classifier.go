// Package classifier wraps the external snow-detection service. Requests
// carry an image URL; the response is a set of bounding-box predictions plus
// the analyzed image's dimensions.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/snowsquad/engine/internal/server/models"
)

// Client is the detection interface consumed by the scorer.
type Client interface {
	Detect(ctx context.Context, imageURL string) (*models.ClassifierResult, error)
}

// HTTPClient calls a Roboflow-style hosted detection endpoint:
// POST {endpoint}?api_key=...&image=... with an empty body.
type HTTPClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
	backoff  time.Duration
	retries  uint64
}

type Option func(*HTTPClient)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.client = c }
}

// WithRetry overrides the retry budget for transient failures.
func WithRetry(retries uint64, backoff time.Duration) Option {
	return func(h *HTTPClient) {
		h.retries = retries
		h.backoff = backoff
	}
}

// NewHTTPClient constructs a detection client. The timeout bounds each
// attempt; a call that never returns is treated as a failure by the caller
// rather than hanging the pipeline.
func NewHTTPClient(endpoint, apiKey string, timeout time.Duration, opts ...Option) *HTTPClient {
	h := &HTTPClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
		backoff:  200 * time.Millisecond,
		retries:  2,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// response mirrors the detection API wire format.
type response struct {
	Predictions []prediction `json:"predictions"`
	Image       imageInfo    `json:"image"`
}

type prediction struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
	Class      string  `json:"class"`
}

type imageInfo struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Detect runs the image through the detection service. Transient failures
// (network errors, 5xx) are retried with capped exponential backoff; an empty
// prediction list is a valid result, not an error.
func (h *HTTPClient) Detect(ctx context.Context, imageURL string) (*models.ClassifierResult, error) {
	var result *models.ClassifierResult

	b := retry.WithMaxRetries(h.retries, retry.NewExponential(h.backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		r, err := h.detectOnce(ctx, imageURL)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (h *HTTPClient) detectOnce(ctx context.Context, imageURL string) (*models.ClassifierResult, error) {
	q := url.Values{}
	q.Set("api_key", h.apiKey)
	q.Set("image", imageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, retry.RetryableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, retry.RetryableError(fmt.Errorf("detection service: %s", resp.Status))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detection service: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retry.RetryableError(err)
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("malformed detection response: %w", err)
	}

	result := &models.ClassifierResult{
		Detections:  make([]models.Detection, 0, len(parsed.Predictions)),
		ImageWidth:  parsed.Image.Width,
		ImageHeight: parsed.Image.Height,
	}
	for _, p := range parsed.Predictions {
		result.Detections = append(result.Detections, models.Detection{
			X:          p.X,
			Y:          p.Y,
			Width:      p.Width,
			Height:     p.Height,
			Confidence: p.Confidence,
		})
	}
	return result, nil
}
