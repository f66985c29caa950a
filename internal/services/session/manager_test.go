package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/micro-ha/netis-dashboard/internal/storage"
)

type memoryStore struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", s.getErr
	}
	value, ok := s.values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func newTestManager(store Store) *Manager {
	return NewManager(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBeginValidateEnd(t *testing.T) {
	store := newMemoryStore()
	manager := newTestManager(store)
	ctx := context.Background()

	if manager.Active(ctx) {
		t.Fatalf("expected no session initially")
	}
	token, err := manager.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin() error: %v", err)
	}
	if store.values[storage.KeySession] != token {
		t.Fatalf("token not stored under %s", storage.KeySession)
	}
	if err := manager.Validate(ctx, token); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !manager.Active(ctx) {
		t.Fatalf("expected active session")
	}
	if err := manager.End(ctx); err != nil {
		t.Fatalf("End() error: %v", err)
	}
	if err := manager.Validate(ctx, token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after End, got %v", err)
	}
}

func TestValidateRejectsWrongOrBlankToken(t *testing.T) {
	manager := newTestManager(newMemoryStore())
	ctx := context.Background()
	if _, err := manager.Begin(ctx); err != nil {
		t.Fatalf("Begin() error: %v", err)
	}

	for _, token := range []string{"", "  ", "not-the-token"} {
		if err := manager.Validate(ctx, token); !errors.Is(err, ErrNoSession) {
			t.Fatalf("Validate(%q) = %v, want ErrNoSession", token, err)
		}
	}
}

func TestBeginReplacesPreviousToken(t *testing.T) {
	manager := newTestManager(newMemoryStore())
	ctx := context.Background()

	first, _ := manager.Begin(ctx)
	second, _ := manager.Begin(ctx)
	if first == second {
		t.Fatalf("expected distinct tokens")
	}
	if err := manager.Validate(ctx, first); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected old token rejected, got %v", err)
	}
	if err := manager.Validate(ctx, second); err != nil {
		t.Fatalf("Validate(second) error: %v", err)
	}
}

func TestStoreFailureIsNotNoSession(t *testing.T) {
	store := newMemoryStore()
	store.getErr = errors.New("database is locked")
	manager := newTestManager(store)

	err := manager.Validate(context.Background(), "token")
	if err == nil || errors.Is(err, ErrNoSession) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if manager.Active(context.Background()) {
		t.Fatalf("expected inactive on store error")
	}
}
