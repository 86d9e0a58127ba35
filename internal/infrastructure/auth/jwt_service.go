package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sachinkumar2222/Productr/domain"
)

// JWTServiceImpl implements domain.TokenService. Tokens are self-contained:
// any holder of the secret can validate them without a lookup, and there is
// no revocation list — expiry is the only termination mechanism.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	lifetime  time.Duration
}

// NewJWTService creates a new JWT service.
func NewJWTService(secretKey, issuer string, lifetime time.Duration) *JWTServiceImpl {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		lifetime:  lifetime,
	}
}

// Mint implements domain.TokenService.
func (j *JWTServiceImpl) Mint(identityID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": identityID,
		"iss": j.issuer,
		"iat": now.Unix(),
		"exp": now.Add(j.lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService. Failures are distinguishable:
// structural problems, bad signatures and expiry each map to their own
// sentinel error.
func (j *JWTServiceImpl) Validate(tokenString string, now time.Time) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, domain.ErrTokenMalformed
			}
			return j.secretKey, nil
		},
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	// The library allows a token at exactly its expiry instant; the contract
	// here is that now >= exp fails.
	if now.Unix() >= int64(exp) {
		return nil, domain.ErrTokenExpired
	}

	return &domain.TokenClaims{
		IdentityID: sub,
		IssuedAt:   int64(iat),
		ExpiresAt:  int64(exp),
	}, nil
}
