package domain

import "errors"

// Authentication errors
var (
	ErrIdentityNotFound     = errors.New("identity not found")
	ErrCodeInvalidOrExpired = errors.New("invalid or expired code")
	ErrResendCooldown       = errors.New("code recently sent")
	ErrDeliveryFailed       = errors.New("code delivery failed")
)

// Token errors
var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenExpired   = errors.New("token has expired")
)

// Catalog errors
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("product not found")
	ErrForbidden         = errors.New("not authorized")
	ErrAssetUploadFailed = errors.New("asset upload failed")
)
