package domain

import (
	"context"
	"time"
)

// IdentityRepository defines identity data access operations.
type IdentityRepository interface {
	FindByRecipient(ctx context.Context, key RecipientKey) (*Identity, error)

	// UpsertCode creates the identity for a never-seen recipient or
	// overwrites the pending code of an existing one. Both cases must be a
	// single atomic write so concurrent issues cannot interleave a code
	// with a stale expiry.
	UpsertCode(ctx context.Context, key RecipientKey, code string, expires time.Time) error

	// ConsumeCode clears the pending code and expiry together, conditional
	// on the stored code still equalling code and not being expired at now.
	// Returns false when another call consumed or overwrote it first.
	ConsumeCode(ctx context.Context, identityID, code string, now time.Time) (bool, error)
}

// ProductRepository defines product data access operations.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	ListByOwner(ctx context.Context, ownerID string, published *bool) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool) error
}

// NotificationSender delivers a one-time code out of band. May fail
// transiently; the caller surfaces the failure without retrying.
type NotificationSender interface {
	Deliver(ctx context.Context, key RecipientKey, code string) error
}

// BlobStore stores raw bytes and returns a stable reference.
type BlobStore interface {
	Store(ctx context.Context, data []byte) (string, error)
}

// ResendLimiter throttles repeated code requests per recipient.
type ResendLimiter interface {
	// Reserve claims the cooldown window for the recipient. When the window
	// is already held it returns false with the time left on it.
	Reserve(ctx context.Context, key RecipientKey) (bool, time.Duration, error)
}

// TokenService mints and validates self-contained session tokens.
type TokenService interface {
	Mint(identityID string, now time.Time) (string, error)
	Validate(token string, now time.Time) (*TokenClaims, error)
}

// OTPService defines the one-time-code authentication lifecycle.
type OTPService interface {
	IssueCode(ctx context.Context, rawRecipient string) error
	VerifyCode(ctx context.Context, rawRecipient, code string) (*AuthResult, error)
}

// AssetResolver merges newly-uploaded and previously-stored image entries
// into one canonical reference list.
type AssetResolver interface {
	Reconcile(ctx context.Context, entries []ImageEntry) ([]string, error)
}

// ProductService defines catalog business logic.
type ProductService interface {
	Create(ctx context.Context, callerID string, input ProductInput) (*Product, error)
	List(ctx context.Context, callerID string, published *bool) ([]Product, error)
	Get(ctx context.Context, callerID, id string) (*Product, error)
	Update(ctx context.Context, callerID, id string, upd ProductUpdate) (*Product, error)
	Delete(ctx context.Context, callerID, id string) error
	TogglePublish(ctx context.Context, callerID, id string) (bool, error)
}
