// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no profile exists for an identity.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when registering an identity that
	// already has a profile. Clients treat it as "already registered",
	// not as a hard failure.
	ErrUserAlreadyExists = errors.New("user already exists")
)
