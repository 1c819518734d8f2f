// Package domain defines the core types for the identity service
package domain

// RoleAdmin unlocks moderation and admin endpoints
const RoleAdmin = "admin"

// Identity is the resolved caller. Anon is the long-lived anonymous token
// and is always present; Account and Role appear once a bearer token is
// presented. Both halves coexist until a claim merges the history.
type Identity struct {
	Anon    string
	Account string
	Role    string
}

// HasAccount reports whether the caller is authenticated
func (i Identity) HasAccount() bool { return i.Account != "" }

// IsAdmin reports whether the caller may hit moderation endpoints
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// Actor returns the key contributions are attributed to: the account when
// present, the anonymous token otherwise
func (i Identity) Actor() string {
	if i.Account != "" {
		return i.Account
	}
	return i.Anon
}
