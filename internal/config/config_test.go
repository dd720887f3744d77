package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
	assert.Equal(t, 5, cfg.TxnRetries)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.NotEmpty(t, cfg.DefaultImage)
}

func TestNewEnvOverrides(t *testing.T) {
	t.Setenv("LINEUP_HTTP_PORT", "9999")
	t.Setenv("LINEUP_DATA_DIR", "/tmp/lineup-test")
	t.Setenv("LINEUP_ENVIRONMENT", "testing")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.HTTPPort)
	assert.Equal(t, "/tmp/lineup-test", cfg.DataDir)
	assert.True(t, cfg.IsTesting())
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("LINEUP_ENVIRONMENT", "staging")
	_, err := New()
	assert.Error(t, err)
}

func TestValidateRejectsZeroRetries(t *testing.T) {
	t.Setenv("LINEUP_TXN_RETRIES", "0")
	_, err := New()
	assert.Error(t, err)
}

func TestNewForTesting(t *testing.T) {
	cfg := NewForTesting(t.TempDir())
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.IsTesting())
	assert.False(t, cfg.IsProduction())
}
