// Package session owns the bearer-token lifecycle: one live value per process,
// mirrored to durable storage so it survives restarts, read by the transport
// on every outgoing request.
package session

import (
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Session holds the current bearer token. The in-memory value is authoritative;
// durable storage is best effort and a write failure never invalidates it.
type Session struct {
	mu    sync.RWMutex
	token string
	store Store
	log   *slog.Logger
}

// New creates a session backed by the given store. A nil store disables
// persistence; a nil logger discards session logs.
func New(store Store, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{store: store, log: log}
}

// SetToken stores the token in memory and durable storage. An empty token
// behaves as a clear. Storage-write failures are logged and swallowed; the
// token stays usable in memory for the rest of the process life.
func (s *Session) SetToken(token string) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		s.ClearToken()
		return
	}
	s.mu.Lock()
	s.token = trimmed
	s.mu.Unlock()
	if s.store == nil {
		return
	}
	if err := s.store.Save(trimmed); err != nil {
		s.log.Warn("session token persist failed", slog.Any("error", err))
	}
}

// ClearToken removes the token from memory and durable storage.
func (s *Session) ClearToken() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	if s.store == nil {
		return
	}
	if err := s.store.Clear(); err != nil {
		s.log.Warn("session token clear failed", slog.Any("error", err))
	}
}

// Token returns the current in-memory token. No I/O.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// LoadPersisted restores the token from durable storage, once at process
// start. Any failure leaves the session unauthenticated rather than failing.
func (s *Session) LoadPersisted() {
	if s.store == nil {
		return
	}
	token, err := s.store.Load()
	if err != nil {
		s.log.Warn("persisted token load failed", slog.Any("error", err))
		return
	}
	if trimmed := strings.TrimSpace(token); trimmed != "" {
		s.mu.Lock()
		s.token = trimmed
		s.mu.Unlock()
	}
}
