// Package httpclient builds outbound HTTP clients, one per proxy route
package httpclient

import (
	"net/http"
	"net/url"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/fx"

	"github.com/Conte777/keepalive-service/config"
)

// Module provides the client factory for fx DI
var Module = fx.Module("httpclient",
	fx.Provide(func(cfg *config.HeartbeatConfig) *Factory {
		return NewFactory(cfg.RequestTimeout)
	}),
)

// directKey identifies the client without a proxy
const directKey = "direct"

// Factory hands out HTTP clients keyed by proxy URL, so every account keeps
// its own connection pool through its own proxy.
type Factory struct {
	timeout time.Duration
	clients cmap.ConcurrentMap[string, *http.Client]
}

// NewFactory creates a factory whose clients use timeout for every request
func NewFactory(timeout time.Duration) *Factory {
	return &Factory{
		timeout: timeout,
		clients: cmap.New[*http.Client](),
	}
}

// For returns the client routed through proxy; nil proxy means a direct connection
func (f *Factory) For(proxy *url.URL) *http.Client {
	key := directKey
	if proxy != nil {
		key = proxy.String()
	}

	if client, ok := f.clients.Get(key); ok {
		return client
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	// Direct clients ignore HTTP_PROXY from the environment as well
	transport.Proxy = nil
	if proxy != nil {
		transport.Proxy = http.ProxyURL(proxy)
	}

	client := &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}
	if !f.clients.SetIfAbsent(key, client) {
		// Lost a race with another caller; use the stored client
		client, _ = f.clients.Get(key)
	}

	return client
}
