package user

import "github.com/google/uuid"

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	Name  string
	Email string
}

// UpdateUserRequest represents the request payload for updating an existing user.
type UpdateUserRequest struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID uuid.UUID
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID uuid.UUID
}

// ListUsersRequest represents the request payload for listing users.
// Nil values fall back to the default page and page size.
type ListUsersRequest struct {
	Page     *int
	PageSize *int
}

// ListUsersResponse represents the response payload for user listing.
type ListUsersResponse struct {
	Users []User
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID    uuid.UUID
	Name  string
	Email string
}
