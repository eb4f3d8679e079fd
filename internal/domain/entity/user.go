// Package entity contains the records the storefront mirrors from the remote
// API. They carry no identity or invariants of their own.
package entity

// User is the profile returned by the remote auth endpoints.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Profile is the fuller record returned by /users/getMe.
type Profile struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  Role   `json:"role"`
}
