// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User is the local profile kept for an authenticated identity.
// It is created exactly once, on first contact after sign-up, and is keyed
// by the identity provider's UID rather than a generated id.
type User struct {
	// UserID is the stable identifier issued by the identity provider.
	// It is immutable for the lifetime of the account.
	UserID string `gorm:"primaryKey;size:128"`

	// FirstName is the user's given name.
	FirstName string `gorm:"size:255;not null"`

	// LastName is the user's family name.
	LastName string `gorm:"size:255;not null"`

	// Email is the address the user signed up with.
	Email string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the profile was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the profile was last updated.
	UpdatedAt time.Time
}
