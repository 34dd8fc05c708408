package kb

import "github.com/opsdesk/kbase/pkg/types"

// Gate validates credentials against the user repository. Credentials
// are compared in plaintext, exact and case-sensitive, with no hashing,
// rate limiting, or lockout. This boundary is deliberately not hardened
// for production trust models.
type Gate struct {
	db *Database
}

// Authenticate returns the first user whose username and password both
// match the supplied values. Returns ErrInvalidCredentials otherwise.
func (g *Gate) Authenticate(username, password string) (*types.User, error) {
	for _, u := range g.db.Users().GetAll() {
		if u.Username == username && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, types.ErrInvalidCredentials
}

// Register creates a new user account. Delegates to Users.Add, so the
// duplicate-username and validation rules apply unchanged.
func (g *Gate) Register(candidate types.User) ([]types.User, error) {
	return g.db.Users().Add(candidate)
}
