package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// HS256Verifier verifies locally minted HMAC-signed tokens. It exists so the
// API can run without Firebase credentials during development; production
// deployments use the Firebase verifier instead.
type HS256Verifier struct {
	secret []byte
}

var _ TokenVerifier = (*HS256Verifier)(nil)

// NewHS256Verifier creates a verifier for tokens signed with the given secret.
func NewHS256Verifier(secret string) *HS256Verifier {
	return &HS256Verifier{secret: []byte(secret)}
}

// Verify parses and checks the token signature and registered claims.
// Any failure resolves to ErrInvalidToken; no detail leaks to the caller.
func (v *HS256Verifier) Verify(ctx context.Context, tokenStr string) (*IdentityToken, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return &IdentityToken{Claims: claims}, nil
}
