package domain

import (
	"fmt"
	"strings"
	"time"
)

// RecipientChannel identifies the out-of-band channel a code is delivered on.
type RecipientChannel string

const (
	ChannelEmail RecipientChannel = "email"
	ChannelPhone RecipientChannel = "phone"
)

// RecipientKey is a recipient address tagged with its channel. It is decided
// once at the API boundary and never re-inferred downstream.
type RecipientKey struct {
	Channel RecipientChannel
	Value   string
}

// ParseRecipientKey classifies a raw recipient string: anything containing
// "@" is an email address, everything else is a phone number. Email values
// are lowercased.
func ParseRecipientKey(raw string) (RecipientKey, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return RecipientKey{}, fmt.Errorf("%w: recipient is required", ErrValidation)
	}
	if strings.Contains(v, "@") {
		return RecipientKey{Channel: ChannelEmail, Value: strings.ToLower(v)}, nil
	}
	return RecipientKey{Channel: ChannelPhone, Value: v}, nil
}

// Identity ties a recipient key to a stable id and the current pending-code
// state. Exactly one of Email or Phone is set. OTPCode and OTPExpires are
// always set or cleared together.
type Identity struct {
	ID         string
	Email      string
	Phone      string
	Role       string
	OTPCode    string
	OTPExpires time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AuthResult is returned on successful code verification.
type AuthResult struct {
	Identity *Identity
	Token    string
}

// TokenClaims holds the fields embedded in a session token.
type TokenClaims struct {
	IdentityID string
	IssuedAt   int64
	ExpiresAt  int64
}

// ImageEntry is one element of an incoming product image list: either raw
// bytes of a new upload (Inline) or an already-stable blob reference.
type ImageEntry struct {
	Ref  string
	Data []byte
}

// InlineImage builds an entry carrying not-yet-stored upload bytes.
func InlineImage(data []byte) ImageEntry { return ImageEntry{Data: data} }

// ImageRef builds an entry pointing at an already-stored blob.
func ImageRef(ref string) ImageEntry { return ImageEntry{Ref: ref} }

// IsInline reports whether the entry still needs to be uploaded.
func (e ImageEntry) IsInline() bool { return e.Data != nil }

// ProductTypes is the fixed category set a product must belong to.
var ProductTypes = []string{"Foods", "Electronics", "Clothes", "Beauty Products", "Others"}

// IsValidProductType reports whether t belongs to ProductTypes.
func IsValidProductType(t string) bool {
	for _, pt := range ProductTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Product is a catalog record owned by exactly one identity. Images holds
// stable blob references in display order.
type Product struct {
	ID           string
	OwnerID      string
	Name         string
	Type         string
	Stock        int
	MRP          float64
	SellingPrice float64
	Brand        string
	Images       []string
	Eligibility  bool
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductInput carries the fields for creating a product.
type ProductInput struct {
	Name         string
	Type         string
	Stock        int
	MRP          float64
	SellingPrice float64
	Brand        string
	Images       []ImageEntry
	Eligibility  bool
}

// ProductUpdate carries a partial update. Nil fields are left unchanged.
// A non-nil Images pointer fully replaces the stored list after
// reconciliation, even when it points at an empty slice.
type ProductUpdate struct {
	Name         *string
	Type         *string
	Stock        *int
	MRP          *float64
	SellingPrice *float64
	Brand        *string
	Eligibility  *bool
	Images       *[]ImageEntry
}
