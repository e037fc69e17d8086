// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when a task does not exist or is owned by
	// another user. The two cases are deliberately indistinguishable so a
	// caller cannot probe for other users' task ids.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTitleRequired is returned when a task is created or updated with an
	// empty title.
	ErrTitleRequired = errors.New("title is required")

	// ErrCategoryRequired is returned when a task is created or updated with
	// an empty category.
	ErrCategoryRequired = errors.New("category is required")

	// ErrInvalidPriority is returned when priority is outside [0,5].
	ErrInvalidPriority = errors.New("priority must be between 0 and 5")
)
