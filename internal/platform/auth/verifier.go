// Package auth resolves the caller identity from bearer credentials.
package auth

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned by verifiers for any token that fails
// verification (expired, malformed, bad signature, wrong issuer/audience).
// Callers must treat it as "unauthenticated", not as an internal fault.
var ErrInvalidToken = errors.New("invalid token")

// IdentityToken is the verified result of a bearer credential check.
type IdentityToken struct {
	// UID is the user id reported by the identity provider, when the
	// provider exposes one outside the claims.
	UID string

	// Claims holds the decoded token claims.
	Claims map[string]any
}

// TokenVerifier checks a raw bearer token and returns the identity it
// carries. Verification itself (signature, expiry, issuer, audience) is the
// implementation's responsibility.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*IdentityToken, error)
}

// subjectClaimKeys is the ordered list of claims consulted for the caller
// identity. Firebase ID tokens carry the UID under "sub"; locally minted
// development tokens may use "user_id".
var subjectClaimKeys = []string{"sub", "user_id"}

// Subject returns the stable user identifier carried by the token, or ""
// when none is present. The claim lookup order is fixed so every endpoint
// resolves identity the same way.
func (t *IdentityToken) Subject() string {
	for _, key := range subjectClaimKeys {
		if v, ok := t.Claims[key].(string); ok && v != "" {
			return v
		}
	}
	return t.UID
}
