// Package entities contains the heartbeat domain entities
package entities

import (
	"crypto/rand"
	"encoding/hex"
)

// ProtocolVersion is the wire-protocol revision expected by the ping endpoint
const ProtocolVersion = "2.2.7"

// AccountSession is the identity returned by the session endpoint.
// It is never mutated after creation.
type AccountSession struct {
	UID       string `json:"uid"`
	BrowserID string `json:"browser_id"`
	Name      string `json:"name"`
}

// Account is one configured credential with its optional proxy
type Account struct {
	Token string
	Proxy *ProxyRecord
}

// PingPayload is the body of a single ping request
type PingPayload struct {
	ID        string `json:"id"`
	BrowserID string `json:"browser_id"`
	Timestamp int64  `json:"timestamp"`
	Version   string `json:"version"`
}

// RandomID returns a fresh 16-hex-character identifier
func RandomID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// OrRandom returns id, or a fresh RandomID when id is empty
func OrRandom(id string) string {
	if id == "" {
		return RandomID()
	}
	return id
}
