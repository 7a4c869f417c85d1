package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listener-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "environment:\n  name: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "listener:keywords", cfg.Listener.KeywordsKey)
	assert.Equal(t, "listener:push:messages:", cfg.Listener.PushKeyPrefix)
	assert.Equal(t, 24*time.Hour, cfg.Listener.PushTTL)
	assert.Equal(t, "listener:inbound", cfg.Listener.InboundChannel)
	assert.Equal(t, 64, cfg.Listener.MaxInFlight)
	assert.Equal(t, 60, cfg.Telegram.PollTimeout)
	assert.Empty(t, cfg.Telegram.BotToken)
}

func TestLoadFileValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
listener:
  self_id: 4242
  push_ttl: 1h
  store_timeout: 500ms
redis:
  host: cache
  port: 6380
internal:
  internal_key: 0123456789abcdef
`))
	require.NoError(t, err)

	assert.Equal(t, int64(4242), cfg.Listener.SelfID)
	assert.Equal(t, time.Hour, cfg.Listener.PushTTL)
	assert.Equal(t, 500*time.Millisecond, cfg.Listener.StoreTimeout)
	assert.Equal(t, "cache", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "0123456789abcdef", cfg.Internal.InternalKey)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LISTENER_KEYWORDS_KEY", "custom:keywords")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "custom:keywords", cfg.Listener.KeywordsKey)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
}

func TestLoadValidation(t *testing.T) {
	tcs := map[string]string{
		"non-positive ttl": "listener:\n  push_ttl: 0s\n",
		"short key":        "internal:\n  internal_key: short\n",
		"no in-flight":     "listener:\n  max_in_flight: 0\n",
	}

	for name, body := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
