package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sachinkumar2222/Productr/domain"
)

// MockIdentityRepository implements domain.IdentityRepository for testing.
// The default behavior is a thread-safe in-memory store with the same
// conditional-consume semantics as the real repository.
type MockIdentityRepository struct {
	FindByRecipientFunc func(ctx context.Context, key domain.RecipientKey) (*domain.Identity, error)
	UpsertCodeFunc      func(ctx context.Context, key domain.RecipientKey, code string, expires time.Time) error
	ConsumeCodeFunc     func(ctx context.Context, identityID, code string, now time.Time) (bool, error)

	mu          sync.Mutex
	byKey       map[string]*domain.Identity
	UpsertCalls int
}

// NewMockIdentityRepository creates a new MockIdentityRepository.
func NewMockIdentityRepository() *MockIdentityRepository {
	return &MockIdentityRepository{byKey: make(map[string]*domain.Identity)}
}

func storeKey(key domain.RecipientKey) string {
	return string(key.Channel) + ":" + key.Value
}

// FindByRecipient returns the stored identity or domain.ErrIdentityNotFound.
func (m *MockIdentityRepository) FindByRecipient(ctx context.Context, key domain.RecipientKey) (*domain.Identity, error) {
	if m.FindByRecipientFunc != nil {
		return m.FindByRecipientFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	identity, ok := m.byKey[storeKey(key)]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	cp := *identity
	return &cp, nil
}

// UpsertCode creates or overwrites the pending code atomically.
func (m *MockIdentityRepository) UpsertCode(ctx context.Context, key domain.RecipientKey, code string, expires time.Time) error {
	if m.UpsertCodeFunc != nil {
		return m.UpsertCodeFunc(ctx, key, code, expires)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls++

	identity, ok := m.byKey[storeKey(key)]
	if !ok {
		identity = &domain.Identity{ID: uuid.NewString(), Role: "user", CreatedAt: time.Now()}
		if key.Channel == domain.ChannelEmail {
			identity.Email = key.Value
		} else {
			identity.Phone = key.Value
		}
		m.byKey[storeKey(key)] = identity
	}
	identity.OTPCode = code
	identity.OTPExpires = expires
	identity.UpdatedAt = time.Now()
	return nil
}

// ConsumeCode clears code and expiry together iff the stored code matches
// and is not expired at now.
func (m *MockIdentityRepository) ConsumeCode(ctx context.Context, identityID, code string, now time.Time) (bool, error) {
	if m.ConsumeCodeFunc != nil {
		return m.ConsumeCodeFunc(ctx, identityID, code, now)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, identity := range m.byKey {
		if identity.ID != identityID {
			continue
		}
		if identity.OTPCode != code || !now.Before(identity.OTPExpires) {
			return false, nil
		}
		identity.OTPCode = ""
		identity.OTPExpires = time.Time{}
		return true, nil
	}
	return false, nil
}

// Stored returns a copy of the identity for assertions.
func (m *MockIdentityRepository) Stored(key domain.RecipientKey) *domain.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	identity, ok := m.byKey[storeKey(key)]
	if !ok {
		return nil
	}
	cp := *identity
	return &cp
}

// Compile-time interface compliance verification
var _ domain.IdentityRepository = (*MockIdentityRepository)(nil)
