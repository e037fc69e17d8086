// Package entity defines the domain entities for the tasks feature.
package entity

import (
	"time"

	userentity "todo_backend/internal/feature/users/domain/entity"
)

// Task is a single to-do item owned by exactly one user.
// Every query against tasks is scoped by UserID; a task is never visible
// outside its owner.
type Task struct {
	// ID is the system-generated primary key.
	ID uint `gorm:"primaryKey"`

	// Title is the short label of the task. Required, non-empty.
	Title string `gorm:"size:255;not null"`

	// Description is free-form detail text. Optional.
	Description string `gorm:"size:1024"`

	// IsCompleted marks the task as done.
	IsCompleted bool `gorm:"not null;default:false"`

	// Category groups tasks in the UI (e.g. "shopping"). Required.
	Category string `gorm:"size:255;not null"`

	// Tags is an ordered list of labels, stored as a JSON column.
	Tags []string `gorm:"serializer:json"`

	// Priority ranges 0-5; 0 means the user has not set one.
	Priority int `gorm:"not null;default:0"`

	// UserID is the owner's identity. Assigned from the verified token on
	// creation and immutable afterwards.
	UserID string `gorm:"size:128;not null;index"`

	// User backs the foreign key so the schema carries
	// ON DELETE CASCADE. Application code always scopes by UserID instead
	// of traversing the association.
	User *userentity.User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the task was last updated.
	UpdatedAt time.Time
}
