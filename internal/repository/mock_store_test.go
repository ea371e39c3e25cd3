package repository_test

import (
	"context"

	"planner/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of store.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// failingStore is a MemoryStore whose writes to failKey always fail.
type failingStore struct {
	*store.MemoryStore
	failKey string
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if key == s.failKey {
		return assert.AnError
	}
	return s.MemoryStore.Set(ctx, key, value)
}
