// Package model defines the typed records exchanged between handlers,
// repositories and the store, together with the partial-update payloads used
// by PUT routes.  Update payloads use pointer fields so that "field omitted"
// and "field explicitly cleared" stay distinguishable.
package model

import "regexp"

// Roles ordered by privilege.  Admin and superadmin are equally privileged
// for general admin gating; superadmin-only gates exist separately.
const (
	RoleUser       = "user"
	RoleManager    = "manager"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch s {
	case RoleUser, RoleManager, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role passes the admin-or-above gate.
func IsAdmin(role string) bool {
	return role == RoleAdmin || role == RoleSuperadmin
}

var mobileRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidMobile reports whether s looks like an E.164 number.
func ValidMobile(s string) bool {
	return mobileRe.MatchString(s)
}

// User mirrors a Users item.  PasswordHash is never serialized.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Disabled     bool   `json:"disabled"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// UserRegister is the payload for registration and bootstrap.
type UserRegister struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password"`
	Role         string `json:"role"`
}

// UserUpdate carries a partial user mutation.
type UserUpdate struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	MobileNumber *string `json:"mobile_number"`
	Password     *string `json:"password"`
	Disabled     *bool   `json:"disabled"`
}
