package user

import "github.com/google/uuid"

// User represents a user entity in the system.
type User struct {
	ID    uuid.UUID // ID is assigned by the store on creation and never changes
	Name  string    // Name is the display name of the user
	Email string    // Email is the contact address of the user
}
