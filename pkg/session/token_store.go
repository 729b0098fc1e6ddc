package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore is the only durable client-side state: the bearer token, kept in
// a single file readable by the owner alone.
type TokenStore struct {
	mu    sync.RWMutex
	path  string
	token string
}

func NewTokenStore(path string) (*TokenStore, error) {
	ts := &TokenStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ts, nil
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	ts.token = strings.TrimSpace(string(data))
	return ts, nil
}

// Token implements client.TokenSource.
func (ts *TokenStore) Token() string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.token
}

func (ts *TokenStore) Save(token string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(ts.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(ts.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	ts.token = token
	return nil
}

func (ts *TokenStore) Clear() error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.token = ""
	if err := os.Remove(ts.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
