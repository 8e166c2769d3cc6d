package auth

import "strings"

// Role controls UI visibility and, on the remote API side, authorization.
type Role string

const (
	RoleUser  Role = "USER"
	RoleHost  Role = "HOST"
	RoleAdmin Role = "ADMIN"
)

// ParseRole normalizes a raw role string, tolerating case differences in
// server responses. Unknown values come back as-is so callers can decide
// how to fail; IsValid reports recognition.
func ParseRole(raw string) Role {
	switch normalized := Role(strings.ToUpper(raw)); normalized {
	case RoleUser, RoleHost, RoleAdmin:
		return normalized
	}
	return Role(raw)
}

// IsValid reports whether the role is one of the fixed set.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleHost || r == RoleAdmin
}
