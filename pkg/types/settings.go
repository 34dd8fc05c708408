package types

// DefaultHeaderColor is the fallback header color used when no color has
// been persisted.
const DefaultHeaderColor = "#EC0000"

// Settings holds process-wide presentation state. It is a single scalar
// persisted independently of the entity collections.
type Settings struct {
	HeaderColor string `json:"headerColor"`
}
