package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/sachinkumar2222/Productr/domain"
)

// OTPServiceImpl implements domain.OTPService against the identity store.
type OTPServiceImpl struct {
	identityRepo domain.IdentityRepository
	sender       domain.NotificationSender
	tokenSvc     domain.TokenService
	limiter      domain.ResendLimiter
	config       OTPConfig
	now          func() time.Time
}

type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// NewOTPService creates a new OTP service.
func NewOTPService(identityRepo domain.IdentityRepository, sender domain.NotificationSender, tokenSvc domain.TokenService, limiter domain.ResendLimiter, config OTPConfig) *OTPServiceImpl {
	return &OTPServiceImpl{
		identityRepo: identityRepo,
		sender:       sender,
		tokenSvc:     tokenSvc,
		limiter:      limiter,
		config:       config,
		now:          time.Now,
	}
}

// IssueCode implements domain.OTPService. A new request always overwrites
// any outstanding code for the recipient; the last-issued code wins. The
// persisted code is intentionally not rolled back when delivery fails — the
// next IssueCode call simply overwrites it.
func (s *OTPServiceImpl) IssueCode(ctx context.Context, rawRecipient string) error {
	key, err := domain.ParseRecipientKey(rawRecipient)
	if err != nil {
		return err
	}

	ok, wait, err := s.limiter.Reserve(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check resend cooldown: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: wait %d seconds before requesting a new code", domain.ErrResendCooldown, int(wait.Seconds()))
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	expires := s.now().Add(s.config.TTL)
	if err := s.identityRepo.UpsertCode(ctx, key, code, expires); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	if err := s.sender.Deliver(ctx, key, code); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	return nil
}

// VerifyCode implements domain.OTPService. The conditional consume in the
// repository is the linearization point: of two racing verifies on the same
// code, exactly one clears it and succeeds.
func (s *OTPServiceImpl) VerifyCode(ctx context.Context, rawRecipient, code string) (*domain.AuthResult, error) {
	key, err := domain.ParseRecipientKey(rawRecipient)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrValidation)
	}

	identity, err := s.identityRepo.FindByRecipient(ctx, key)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if identity.OTPCode == "" || identity.OTPCode != code || !now.Before(identity.OTPExpires) {
		return nil, domain.ErrCodeInvalidOrExpired
	}

	consumed, err := s.identityRepo.ConsumeCode(ctx, identity.ID, code, now)
	if err != nil {
		return nil, fmt.Errorf("failed to consume code: %w", err)
	}
	if !consumed {
		return nil, domain.ErrCodeInvalidOrExpired
	}

	token, err := s.tokenSvc.Mint(identity.ID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to mint token: %w", err)
	}

	identity.OTPCode = ""
	identity.OTPExpires = time.Time{}

	return &domain.AuthResult{Identity: identity, Token: token}, nil
}

// generateSecureCode generates a cryptographically secure numeric code.
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
