package types

// User roles. A user is either an administrator or a regular reader.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// validRoles is the set of recognized role values.
var validRoles = map[string]bool{
	RoleAdmin: true,
	RoleUser:  true,
}

// User is an identity record. Credentials are stored and compared in
// plaintext; this boundary is deliberately not hardened.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Validate checks the fields required to create a user.
// Returns a sentinel error from this package on the first violation.
func (u User) Validate() error {
	if u.Name == "" {
		return ErrInvalidName
	}
	if u.Username == "" {
		return ErrInvalidUsername
	}
	if u.Password == "" {
		return ErrInvalidPassword
	}
	if !validRoles[u.Role] {
		return ErrInvalidRole
	}
	return nil
}
