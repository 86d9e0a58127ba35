package mocks

import (
	"context"
	"time"

	"github.com/sachinkumar2222/Productr/domain"
)

// MockResendLimiter implements domain.ResendLimiter for testing. The default
// behavior always allows the request.
type MockResendLimiter struct {
	ReserveFunc func(ctx context.Context, key domain.RecipientKey) (bool, time.Duration, error)
}

// NewMockResendLimiter creates a new MockResendLimiter.
func NewMockResendLimiter() *MockResendLimiter {
	return &MockResendLimiter{}
}

// Reserve defaults to granting the cooldown window.
func (m *MockResendLimiter) Reserve(ctx context.Context, key domain.RecipientKey) (bool, time.Duration, error) {
	if m.ReserveFunc != nil {
		return m.ReserveFunc(ctx, key)
	}
	return true, 0, nil
}

// Compile-time interface compliance verification
var _ domain.ResendLimiter = (*MockResendLimiter)(nil)
