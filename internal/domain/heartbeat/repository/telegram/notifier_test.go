package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conte777/keepalive-service/config"
	heartbeaterrors "github.com/Conte777/keepalive-service/internal/domain/heartbeat/errors"
	"github.com/Conte777/keepalive-service/internal/infrastructure/metrics"
	"github.com/Conte777/keepalive-service/internal/infrastructure/telegram"
)

// botAPI is a fake Bot API counting sendMessage calls
type botAPI struct {
	sends atomic.Int32
	ok    bool
}

func (b *botAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if strings.HasSuffix(r.URL.Path, "/getMe") {
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"keepalive","username":"keepalive_bot"}}`))
		return
	}

	b.sends.Add(1)
	if !b.ok {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
		return
	}
	_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
}

func newBot(t *testing.T, api *botAPI) *telegram.Bot {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	bot, err := telegram.NewBot("123:abc", srv.URL, zerolog.Nop())
	require.NoError(t, err)
	return bot
}

func TestNotifier_Disabled(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	n := NewNotifier(&config.TelegramConfig{ChatID: "42", RatePerSec: 1, Burst: 1}, nil, m, zerolog.Nop())

	for i := 0; i < 3; i++ {
		n.Report(context.Background(), "report")
	}

	assert.Equal(t, 0.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(metrics.ResultSuccess)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(metrics.ResultDropped)))
}

func TestNotifier_Report(t *testing.T) {
	api := &botAPI{ok: true}
	m := metrics.NewMetrics(prometheus.NewRegistry())
	n := NewNotifier(&config.TelegramConfig{ChatID: "42", RatePerSec: 0}, newBot(t, api), m, zerolog.Nop())

	n.Report(context.Background(), "one")
	n.Report(context.Background(), "two")

	assert.Equal(t, int32(2), api.sends.Load())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(metrics.ResultSuccess)))
}

func TestNotifier_ReportNotOKIsSwallowed(t *testing.T) {
	api := &botAPI{ok: false}
	m := metrics.NewMetrics(prometheus.NewRegistry())
	n := NewNotifier(&config.TelegramConfig{ChatID: "42"}, newBot(t, api), m, zerolog.Nop())

	assert.NotPanics(t, func() { n.Report(context.Background(), "text") })
	assert.Equal(t, int32(1), api.sends.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(metrics.ResultFailure)))
}

func TestNotifier_DeliverWrapsErrNotifier(t *testing.T) {
	api := &botAPI{ok: false}
	n := NewNotifier(&config.TelegramConfig{ChatID: "42"}, newBot(t, api), metrics.NewMetrics(prometheus.NewRegistry()), zerolog.Nop())

	err := n.(*Notifier).deliver(context.Background(), "text")
	assert.True(t, errors.Is(err, heartbeaterrors.ErrNotifier))
}

func TestNotifier_RateLimitDrops(t *testing.T) {
	api := &botAPI{ok: true}
	m := metrics.NewMetrics(prometheus.NewRegistry())
	n := NewNotifier(&config.TelegramConfig{ChatID: "42", RatePerSec: 0.001, Burst: 1}, newBot(t, api), m, zerolog.Nop())

	n.Report(context.Background(), "first")
	n.Report(context.Background(), "second")

	assert.Equal(t, int32(1), api.sends.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(metrics.ResultDropped)))
}
