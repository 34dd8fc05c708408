package kb

import "github.com/opsdesk/kbase/pkg/types"

// Settings persists the process-wide presentation state. Unlike the
// entity repositories this is a single scalar, stored under its own key.
type Settings struct {
	db *Database
}

// HeaderColor returns the persisted header color, or the fixed default
// when nothing usable is stored.
func (r *Settings) HeaderColor() string {
	var color string
	if !r.db.read(keyHeaderColor, &color) || color == "" {
		return types.DefaultHeaderColor
	}
	return color
}

// SetHeaderColor persists the header color.
func (r *Settings) SetHeaderColor(color string) error {
	if color == "" {
		color = types.DefaultHeaderColor
	}
	return r.db.write(keyHeaderColor, color)
}
