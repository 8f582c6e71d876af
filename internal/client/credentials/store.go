// Package credentials persists the bearer credential between runs.
//
// The credential is kept under common.CredentialStorageKey. It is the only
// durable client state: the identity is always re-derived from it.
package credentials

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobboard/internal/common"
)

// Store reads and writes the credential. Load returns "" when none is stored.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, credential string) error
	Delete(ctx context.Context) error
}

// RepositoryStore keeps the credential in a metadata repository.
type RepositoryStore struct {
	repo metadata.Repository
}

func NewRepositoryStore(repo metadata.Repository) *RepositoryStore {
	return &RepositoryStore{repo: repo}
}

func (s *RepositoryStore) Load(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.CredentialStorageKey)
	if err != nil {
		return "", fmt.Errorf("load credential: %w", err)
	}
	return string(v), nil
}

func (s *RepositoryStore) Save(ctx context.Context, credential string) error {
	if credential == "" {
		return s.Delete(ctx)
	}
	if err := s.repo.Set(ctx, common.CredentialStorageKey, []byte(credential)); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (s *RepositoryStore) Delete(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.CredentialStorageKey); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

// MemoryStore is a process-local Store. Safe for concurrent use.
type MemoryStore struct {
	mu         sync.Mutex
	credential string
}

func NewMemoryStore(initial string) *MemoryStore {
	return &MemoryStore{credential: initial}
}

func (m *MemoryStore) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential, nil
}

func (m *MemoryStore) Save(_ context.Context, credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = credential
	return nil
}

func (m *MemoryStore) Delete(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = ""
	return nil
}

var (
	_ Store = (*RepositoryStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
