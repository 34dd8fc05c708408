package types

import "time"

// Entry is a knowledge-base content record. Content is stored as HTML
// markup under a trusted-author model; no sanitization is performed.
// CreatedAt is set once at creation and never changes. Views is
// persisted but nothing increments it automatically.
type Entry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CategoryID string    `json:"categoryId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	Views      int       `json:"views"`
}

// Validate checks the fields required to create an entry. Category
// existence is checked by the repository, which can see the current
// category collection.
func (e Entry) Validate() error {
	if e.Title == "" {
		return ErrInvalidTitle
	}
	if e.Content == "" {
		return ErrInvalidContent
	}
	if e.CategoryID == "" {
		return ErrUnknownCategory
	}
	return nil
}
