package types

import "errors"

// Validation errors. Surfaced before any mutation is attempted; nothing
// is persisted when one of these is returned.
var (
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidUsername = errors.New("username must not be empty")
	ErrInvalidPassword = errors.New("password must not be empty")
	ErrInvalidRole     = errors.New("invalid role value")
	ErrInvalidTitle    = errors.New("title must not be empty")
	ErrInvalidContent  = errors.New("content must not be empty")
)

// Conflict and integrity-guard errors. The repository refuses the
// operation entirely and leaves the stored collections unchanged.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUnknownCategory   = errors.New("category does not exist")
	ErrCategoryInUse     = errors.New("category is referenced by entries")
	ErrSelfDelete        = errors.New("cannot delete the active session's user")
)

// Access errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPermissionDenied   = errors.New("administrator role required")
)
