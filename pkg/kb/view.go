package kb

import (
	"time"

	"github.com/opsdesk/kbase/pkg/types"
)

// View derives the visible entry subset from the full collection plus
// the active filter. It recomputes on every input change and notifies
// subscribers only when the visible set actually changed, so derived
// state (like an AI summary of the visible subset) can invalidate
// itself instead of describing a stale snapshot.
type View struct {
	entries []types.Entry
	filter  Filter
	visible []types.Entry
	subs    []func([]types.Entry)
	now     func() time.Time
}

// NewView returns a View with an empty collection and no active filter.
func NewView() *View {
	return &View{now: time.Now}
}

// Subscribe registers fn to run after every change of the visible set.
func (v *View) Subscribe(fn func([]types.Entry)) {
	v.subs = append(v.subs, fn)
}

// SetEntries replaces the underlying collection and recomputes.
func (v *View) SetEntries(entries []types.Entry) {
	v.entries = entries
	v.recompute()
}

// SetFilter replaces the active filter and recomputes.
func (v *View) SetFilter(f Filter) {
	v.filter = f
	v.recompute()
}

// Visible returns the currently visible subset, in collection order.
func (v *View) Visible() []types.Entry {
	return v.visible
}

func (v *View) recompute() {
	next := Apply(v.entries, v.filter, v.now())
	if sameEntries(v.visible, next) {
		v.visible = next
		return
	}
	v.visible = next
	for _, fn := range v.subs {
		fn(next)
	}
}

// sameEntries reports whether two entry slices show the same entries,
// field for field, in the same order. Membership alone is not enough:
// an edit that keeps the visible IDs still changes what subscribers
// describe.
func sameEntries(a, b []types.Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameID(a[i].ID, b[i].ID) ||
			a[i].Title != b[i].Title ||
			a[i].Content != b[i].Content ||
			a[i].CategoryID != b[i].CategoryID ||
			a[i].AuthorName != b[i].AuthorName ||
			a[i].Views != b[i].Views ||
			!a[i].CreatedAt.Equal(b[i].CreatedAt) {
			return false
		}
	}
	return true
}

// SummaryCache holds a generated overview of one specific visible
// subset. Bind it to a View and it clears itself whenever the subset
// changes, since the text describes a snapshot that no longer exists.
type SummaryCache struct {
	text string
}

// Bind subscribes the cache to the view's changes.
func (c *SummaryCache) Bind(v *View) {
	v.Subscribe(func([]types.Entry) { c.Clear() })
}

// Set stores the summary for the current subset.
func (c *SummaryCache) Set(text string) { c.text = text }

// Text returns the cached summary, or "" when invalidated.
func (c *SummaryCache) Text() string { return c.text }

// Clear discards the cached summary.
func (c *SummaryCache) Clear() { c.text = "" }
