package vision

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineup-app/lineup-server/internal/model"
)

func TestLabelImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/labelImage", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"labels":[{"description":"beach","score":0.9},{"description":"sunset","score":0.6}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	labels, err := c.LabelImage(context.Background(), "https://img.example/beach.jpg")
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, model.TagSalience{Tag: "beach", Salience: 0.9}, labels[0])
	assert.Equal(t, model.TagSalience{Tag: "sunset", Salience: 0.6}, labels[1])
}

func TestLabelImageUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.LabelImage(context.Background(), "https://img.example/x.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUpstream))
}
