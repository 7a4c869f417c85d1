package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listener-srv/pkg/log"
)

func TestNewRequiresWebhook(t *testing.T) {
	_, err := New(log.NewNop(), "", "token")
	assert.ErrorIs(t, err, errWebhookRequired)
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"a\nb"}, splitMessage("a\nb", 10))
	assert.Equal(t, []string{"aaaa", "bbbb"}, splitMessage("aaaa\nbbbb", 6))
	assert.Equal(t, []string{"abc", "def", "g"}, splitMessage("abcdefg", 3))
}

func TestReportBugRetries(t *testing.T) {
	var calls atomic.Int32
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		var p webhookPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		got = append(got, p.Content)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.RetryDelay = time.Millisecond
	d := newWithURL(log.NewNop(), srv.URL, cfg)
	defer d.Close()

	require.NoError(t, d.ReportBug(context.Background(), strings.Repeat("x", MaxMessageLength+1)))
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, got, 2)
	assert.Len(t, got[0], MaxMessageLength)
	assert.Equal(t, "x", got[1])
}
