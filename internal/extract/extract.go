// Package extract wraps the managed entity-extraction service. The core only
// sees the Extractor interface; failures surface as model.ErrUpstream before
// any transaction starts.
package extract

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/lineup-app/lineup-server/internal/model"
)

// Extractor turns free text into (tag, salience) pairs.
type Extractor interface {
	ExtractTags(ctx context.Context, text string) ([]model.TagSalience, error)
}

// Client calls an entity-analysis HTTP endpoint.
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

type analyzeRequest struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

type analyzeResponse struct {
	Entities []struct {
		Name     string  `json:"name"`
		Salience float64 `json:"salience"`
	} `json:"entities"`
}

func (c *Client) ExtractTags(ctx context.Context, text string) ([]model.TagSalience, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&analyzeRequest{Content: text, Type: "PLAIN_TEXT"}).
		Post("/v1/analyzeEntities")
	if err != nil {
		return nil, fmt.Errorf("%w: entity extraction: %v", model.ErrUpstream, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: entity extraction status %d: %s", model.ErrUpstream, resp.StatusCode(), resp.String())
	}

	var ar analyzeResponse
	if err := json.Unmarshal(resp.Body(), &ar); err != nil {
		return nil, fmt.Errorf("%w: entity extraction response: %v", model.ErrUpstream, err)
	}

	tags := make([]model.TagSalience, 0, len(ar.Entities))
	for _, e := range ar.Entities {
		tags = append(tags, model.TagSalience{Tag: e.Name, Salience: e.Salience})
	}
	return tags, nil
}
