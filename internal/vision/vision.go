// Package vision wraps the managed image-labeling service used to tag
// catalog images on ingest.
package vision

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/lineup-app/lineup-server/internal/model"
)

// Labeler detects labels for an image reference.
type Labeler interface {
	LabelImage(ctx context.Context, url string) ([]model.TagSalience, error)
}

type Client struct {
	client *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &Client{client: c}
}

type labelRequest struct {
	ImageURL string `json:"imageUrl"`
}

type labelResponse struct {
	Labels []struct {
		Description string  `json:"description"`
		Score       float64 `json:"score"`
	} `json:"labels"`
}

func (c *Client) LabelImage(ctx context.Context, url string) ([]model.TagSalience, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&labelRequest{ImageURL: url}).
		Post("/v1/labelImage")
	if err != nil {
		return nil, fmt.Errorf("%w: image labeling: %v", model.ErrUpstream, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: image labeling status %d: %s", model.ErrUpstream, resp.StatusCode(), resp.String())
	}

	var lr labelResponse
	if err := json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("%w: image labeling response: %v", model.ErrUpstream, err)
	}

	labels := make([]model.TagSalience, 0, len(lr.Labels))
	for _, l := range lr.Labels {
		labels = append(labels, model.TagSalience{Tag: l.Description, Salience: l.Score})
	}
	return labels, nil
}
