// Package session keeps the single dashboard session token.
package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/micro-ha/netis-dashboard/internal/storage"
)

var ErrNoSession = errors.New("no active session")

// Store is the persistence the manager needs; *storage.Repository implements it.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Manager issues one token at a time. Beginning a new session replaces the
// previous token, so only the latest login stays valid.
type Manager struct {
	store   Store
	logger  *slog.Logger
	newUUID func() string
}

func NewManager(store Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{store: store, logger: logger, newUUID: uuid.NewString}
}

func (m *Manager) Begin(ctx context.Context) (string, error) {
	token := m.newUUID()
	if err := m.store.Set(ctx, storage.KeySession, token); err != nil {
		return "", fmt.Errorf("store session token: %w", err)
	}
	m.logger.Info("session started")
	return token, nil
}

// Validate returns ErrNoSession when no session exists or token does not match it.
func (m *Manager) Validate(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrNoSession
	}
	current, err := m.current(ctx)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(current), []byte(token)) != 1 {
		return ErrNoSession
	}
	return nil
}

// Active reports whether any session exists, regardless of which client holds it.
func (m *Manager) Active(ctx context.Context) bool {
	_, err := m.current(ctx)
	if err != nil && !errors.Is(err, ErrNoSession) {
		m.logger.Warn("session lookup failed", "err", err)
	}
	return err == nil
}

func (m *Manager) End(ctx context.Context) error {
	if err := m.store.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	m.logger.Info("session ended")
	return nil
}

func (m *Manager) current(ctx context.Context) (string, error) {
	value, err := m.store.Get(ctx, storage.KeySession)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("load session token: %w", err)
	}
	if strings.TrimSpace(value) == "" {
		return "", ErrNoSession
	}
	return value, nil
}
