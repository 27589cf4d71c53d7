package nodeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Conte777/keepalive-service/config"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/deps"
	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/entities"
	heartbeaterrors "github.com/Conte777/keepalive-service/internal/domain/heartbeat/errors"
	"github.com/Conte777/keepalive-service/internal/infrastructure/httpclient"
)

// SessionClient authenticates tokens against the session endpoint
type SessionClient struct {
	transport
	url    string
	logger zerolog.Logger
}

// envelope is the {"data": ...} wrapper used by the session endpoint
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// NewSessionClient creates a session client for cfg.SessionURL
func NewSessionClient(cfg *config.HeartbeatConfig, clients *httpclient.Factory, logger zerolog.Logger) deps.SessionClient {
	logger.Info().
		Str("session_url", cfg.SessionURL).
		Msg("Session client initialized")

	return &SessionClient{
		transport: transport{clients: clients},
		url:       cfg.SessionURL,
		logger:    logger,
	}
}

// Authenticate posts an empty JSON object with the bearer token and decodes the account
func (c *SessionClient) Authenticate(ctx context.Context, token, userAgent string, proxy *entities.ProxyRecord) (*entities.AccountSession, error) {
	body, err := c.post(ctx, c.url, token, userAgent, proxy, struct{}{})
	if err != nil {
		c.logger.Debug().Err(err).Str("proxy", proxy.Addr()).Msg("Session request failed")
		return nil, heartbeaterrors.ErrSession
	}

	session, err := decodeSession(body)
	if err != nil {
		c.logger.Debug().Err(err).Msg("Session response could not be decoded")
		return nil, heartbeaterrors.ErrSession
	}

	return session, nil
}

// accountKeys mark an object as the account itself rather than another envelope
var accountKeys = []string{"uid", "browser_id", "name"}

// decodeSession extracts the account from {"data": {...}}, unwrapping one
// more "data" level when the server nests it as {"data": {"data": {...}}}.
// An object carrying any account key is never unwrapped further.
func decodeSession(body []byte) (*entities.AccountSession, error) {
	var outer envelope
	if err := json.Unmarshal(body, &outer); err != nil {
		return nil, fmt.Errorf("invalid session body: %w", err)
	}

	account := outer.Data
	if isObject(account) {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(account, &fields); err != nil {
			return nil, fmt.Errorf("invalid account object: %w", err)
		}
		if !hasAccountKey(fields) && isObject(fields["data"]) {
			account = fields["data"]
		}
	}

	if !isObject(account) {
		return nil, fmt.Errorf("session body has no account object")
	}

	var session entities.AccountSession
	if err := json.Unmarshal(account, &session); err != nil {
		return nil, fmt.Errorf("invalid account object: %w", err)
	}

	return &session, nil
}

func hasAccountKey(fields map[string]json.RawMessage) bool {
	for _, key := range accountKeys {
		if _, ok := fields[key]; ok {
			return true
		}
	}
	return false
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
