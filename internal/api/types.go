// Package api defines the shared HTTP request/response types of the service.
package api

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for successful requests that carry no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// TaskResponse is the wire representation of a task.
// Field names follow the frontend's camelCase contract.
type TaskResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	IsCompleted bool     `json:"isCompleted"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Priority    int      `json:"priority"`
	UserID      string   `json:"userId"`
	CreatedAt   string   `json:"createdAt"` // RFC 3339
}

// UserResponse is the wire representation of a user profile.
type UserResponse struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
