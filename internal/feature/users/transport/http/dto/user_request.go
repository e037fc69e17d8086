// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// UserReq represents the request body for the /api/users endpoint.
// It uses Gin's binding tags for validation (required fields, email format).
type UserReq struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`

	// UserID is accepted for wire compatibility and ignored: the profile is
	// always keyed by the verified token identity.
	UserID string `json:"userId"`
}
