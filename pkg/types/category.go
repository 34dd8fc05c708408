package types

// Category is a classification tag for knowledge entries. Entries
// reference categories by ID; a category cannot be deleted while any
// entry still references it.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate checks the fields required to create or rename a category.
func (c Category) Validate() error {
	if c.Name == "" {
		return ErrInvalidName
	}
	return nil
}
