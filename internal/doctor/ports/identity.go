package ports

import "context"

// User identifies the operator a pass runs for.
type User struct {
	ID       string
	Username string
	Roles    []string
}

// Identity resolves the current operator and their capabilities.
type Identity interface {
	// Current returns the authenticated user for this request, if any.
	Current(ctx context.Context) (*User, bool)

	// Allowed reports whether the user holds a capability such as
	// "files:config".
	Allowed(u *User, capability string) bool
}
