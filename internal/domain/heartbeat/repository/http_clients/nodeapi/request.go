// Package nodeapi contains HTTP clients for the session and ping endpoints
package nodeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/entities"
	"github.com/Conte777/keepalive-service/internal/infrastructure/httpclient"
)

// maxErrorBody limits how much of a failed response is kept for debug logs
const maxErrorBody = 512

// transport sends authenticated JSON POSTs, optionally through a proxy
type transport struct {
	clients *httpclient.Factory
}

// post sends body to url and returns the response body of a 2xx reply.
// Any other outcome is returned as a detailed error for local logging.
func (t *transport) post(ctx context.Context, url, token, userAgent string, proxy *entities.ProxyRecord, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := t.clients.For(proxy.URL()).Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return data, nil
}
