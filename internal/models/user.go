package models

// Role tags a user as a shopper or an administrator.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is the public view of an account; the current session is a copy of one.
type User struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`
}

// IsAdmin reports whether the user carries the admin role flag.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// StoredUser is the persisted account record. The password is kept in plaintext.
type StoredUser struct {
	User
	Password string `json:"password"`
}
