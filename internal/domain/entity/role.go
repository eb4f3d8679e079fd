package entity

// Role represents the role the remote API assigns to an account.
type Role string

const (
	// RoleUser indicates a shopper.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator allowed to list all orders and users.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
