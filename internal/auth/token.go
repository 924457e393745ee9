// Package auth issues and verifies the bearer tokens that scope every
// store operation to one user. Tokens are fernet-encrypted payloads
// carrying the user ID, verified with a TTL so leaked tokens age out.
//
// The Manager is constructed from config and injected where needed;
// there is deliberately no package-level client or key state.
package auth

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/minhdq/portfolio-tracker/internal/apperrors"
)

// DefaultTTL is how long an issued token stays verifiable.
const DefaultTTL = 30 * 24 * time.Hour

// Manager issues and verifies user tokens with a fixed key and TTL.
type Manager struct {
	keys []*fernet.Key
	ttl  time.Duration
}

// NewManager creates a Manager from a base64-encoded fernet key.
// A non-positive ttl falls back to DefaultTTL.
func NewManager(encodedKey string, ttl time.Duration) (*Manager, error) {
	keys, err := fernet.DecodeKeys(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode auth token key: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{keys: keys, ttl: ttl}, nil
}

// IssueToken returns a signed, encrypted token for the given user ID.
func (m *Manager) IssueToken(userID string) (string, error) {
	if userID == "" {
		return "", apperrors.ErrEmptyID
	}
	token, err := fernet.EncryptAndSign([]byte(userID), m.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return string(token), nil
}

// VerifyToken decrypts a token and returns the user ID it carries.
// Returns apperrors.ErrInvalidToken for garbage, tampered or expired
// tokens.
func (m *Manager) VerifyToken(token string) (string, error) {
	payload := fernet.VerifyAndDecrypt([]byte(token), m.ttl, m.keys)
	if payload == nil {
		return "", apperrors.ErrInvalidToken
	}
	return string(payload), nil
}

// GenerateKey returns a fresh base64-encoded fernet key, for
// provisioning AUTH_TOKEN_KEY.
func GenerateKey() (string, error) {
	key := &fernet.Key{}
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return key.Encode(), nil
}
