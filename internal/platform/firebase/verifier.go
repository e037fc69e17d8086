// Package firebase wraps the Firebase Admin SDK used for ID token verification.
package firebase

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"todo_backend/internal/platform/auth"
)

// Verifier checks Firebase ID tokens through the Admin SDK. The underlying
// app handle is created once at startup and shared for the process lifetime;
// business logic only ever sees the injected TokenVerifier interface.
type Verifier struct {
	client *fbauth.Client
}

var _ auth.TokenVerifier = (*Verifier)(nil)

// NewVerifier initializes the Firebase app and returns a verifier backed by
// its auth client. credentialsFile may be empty, in which case Application
// Default Credentials are used.
func NewVerifier(ctx context.Context, credentialsFile string) (*Verifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	slog.Info("Firebase auth client initialized")
	return &Verifier{client: client}, nil
}

// Verify checks the ID token's signature, expiry, issuer and audience via the
// Admin SDK and returns the decoded identity.
func (v *Verifier) Verify(ctx context.Context, token string) (*auth.IdentityToken, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		// 失効・改ざん・期限切れはすべて「未認証」として扱う
		return nil, auth.ErrInvalidToken
	}
	return &auth.IdentityToken{UID: decoded.UID, Claims: decoded.Claims}, nil
}
