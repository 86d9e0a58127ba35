package mocks

import (
	"context"

	"github.com/sachinkumar2222/Productr/domain"
)

// MockOTPService implements domain.OTPService for testing.
type MockOTPService struct {
	IssueCodeFunc  func(ctx context.Context, rawRecipient string) error
	VerifyCodeFunc func(ctx context.Context, rawRecipient, code string) (*domain.AuthResult, error)
}

// NewMockOTPService creates a new MockOTPService.
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// IssueCode defaults to success.
func (m *MockOTPService) IssueCode(ctx context.Context, rawRecipient string) error {
	if m.IssueCodeFunc != nil {
		return m.IssueCodeFunc(ctx, rawRecipient)
	}
	return nil
}

// VerifyCode defaults to failure so tests must opt in to success paths.
func (m *MockOTPService) VerifyCode(ctx context.Context, rawRecipient, code string) (*domain.AuthResult, error) {
	if m.VerifyCodeFunc != nil {
		return m.VerifyCodeFunc(ctx, rawRecipient, code)
	}
	return nil, domain.ErrCodeInvalidOrExpired
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
