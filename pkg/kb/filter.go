package kb

import (
	"regexp"
	"strings"
	"time"

	"github.com/opsdesk/kbase/pkg/types"
)

// Window narrows results to entries created within the last N days.
// WindowAll disables the stage.
type Window int

const (
	WindowAll    Window = 0
	WindowWeek   Window = 7
	WindowMonth  Window = 30
)

// Filter holds the three independent predicates of the search pipeline.
// The zero value matches everything.
type Filter struct {
	Query      string
	CategoryID string
	Window     Window
}

// IsZero reports whether no predicate is active.
func (f Filter) IsZero() bool {
	return f.Query == "" && f.CategoryID == "" && f.Window == WindowAll
}

// tagPattern strips markup for content search. Matches any <...> run
// greedily, including an unterminated trailing tag.
var tagPattern = regexp.MustCompile(`<[^>]*>?`)

// StripTags removes markup tags from content, leaving the visible text.
func StripTags(content string) string {
	return tagPattern.ReplaceAllString(content, "")
}

// Apply runs the pipeline stages in order — text search, category,
// recency — each narrowing the previous result. Input ordering is
// preserved; the pipeline never re-sorts. Pure function: no stage
// touches the store.
func Apply(entries []types.Entry, f Filter, now time.Time) []types.Entry {
	result := entries

	if f.Query != "" {
		q := strings.ToLower(f.Query)
		matched := result[:0:0]
		for _, e := range result {
			title := strings.ToLower(e.Title)
			content := strings.ToLower(StripTags(e.Content))
			if strings.Contains(title, q) || strings.Contains(content, q) {
				matched = append(matched, e)
			}
		}
		result = matched
	}

	if f.CategoryID != "" {
		matched := result[:0:0]
		for _, e := range result {
			if sameID(e.CategoryID, f.CategoryID) {
				matched = append(matched, e)
			}
		}
		result = matched
	}

	if f.Window != WindowAll {
		cutoff := now.AddDate(0, 0, -int(f.Window))
		matched := result[:0:0]
		for _, e := range result {
			// Inclusive boundary: an entry created exactly at the cutoff stays.
			if !e.CreatedAt.Before(cutoff) {
				matched = append(matched, e)
			}
		}
		result = matched
	}

	return result
}
