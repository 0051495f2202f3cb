package services

import (
	"strings"
	"sync"
)

// ResolveCredential picks the effective API key. A key the user explicitly
// saved during the session overrides the environment value; otherwise the
// environment value from startup applies.
func ResolveCredential(env, sessionOverride string) (string, bool) {
	if key := strings.TrimSpace(sessionOverride); key != "" {
		return key, true
	}
	if key := strings.TrimSpace(env); key != "" {
		return key, true
	}
	return "", false
}

// CredentialStore keeps the single user-supplied API key in process memory.
// No persistence, no rotation, no encryption.
type CredentialStore struct {
	mu       sync.RWMutex
	envKey   string
	override string
}

// NewCredentialStore captures the environment-supplied key at startup.
func NewCredentialStore(envKey string) *CredentialStore {
	return &CredentialStore{envKey: envKey}
}

// Save stores a session override. Saving replaces any previous override.
func (s *CredentialStore) Save(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.override = strings.TrimSpace(key)
}

// Resolve returns the effective key, override first.
func (s *CredentialStore) Resolve() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ResolveCredential(s.envKey, s.override)
}

// Configured reports whether any key is available.
func (s *CredentialStore) Configured() bool {
	_, ok := s.Resolve()
	return ok
}
