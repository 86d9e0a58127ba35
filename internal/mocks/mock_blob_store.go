package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/sachinkumar2222/Productr/domain"
)

// MockBlobStore implements domain.BlobStore for testing. The default
// behavior derives a deterministic reference from the stored bytes.
type MockBlobStore struct {
	StoreFunc func(ctx context.Context, data []byte) (string, error)

	mu     sync.Mutex
	Stores int
}

// NewMockBlobStore creates a new MockBlobStore.
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{}
}

// Store returns a stable reference for the given bytes.
func (m *MockBlobStore) Store(ctx context.Context, data []byte) (string, error) {
	m.mu.Lock()
	m.Stores++
	m.mu.Unlock()

	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, data)
	}
	return fmt.Sprintf("https://cdn.test/%s", data), nil
}

// Compile-time interface compliance verification
var _ domain.BlobStore = (*MockBlobStore)(nil)
