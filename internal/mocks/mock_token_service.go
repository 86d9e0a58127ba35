package mocks

import (
	"time"

	"github.com/sachinkumar2222/Productr/domain"
)

// MockTokenService implements domain.TokenService for testing.
type MockTokenService struct {
	MintFunc     func(identityID string, now time.Time) (string, error)
	ValidateFunc func(token string, now time.Time) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService.
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Mint defaults to a recognizable opaque token.
func (m *MockTokenService) Mint(identityID string, now time.Time) (string, error) {
	if m.MintFunc != nil {
		return m.MintFunc(identityID, now)
	}
	return "token-" + identityID, nil
}

// Validate defaults to accepting tokens minted by the default Mint.
func (m *MockTokenService) Validate(token string, now time.Time) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token, now)
	}
	if len(token) > len("token-") && token[:len("token-")] == "token-" {
		return &domain.TokenClaims{IdentityID: token[len("token-"):]}, nil
	}
	return nil, domain.ErrTokenMalformed
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
