package kb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/kbase/pkg/types"
)

func TestViewRecomputesOnInputChange(t *testing.T) {
	now := time.Now()
	v := NewView()
	v.SetEntries(fixtureEntries(now))

	require.Len(t, v.Visible(), 2)

	v.SetFilter(Filter{Query: "vpn"})
	require.Len(t, v.Visible(), 1)
	assert.Equal(t, "a", v.Visible()[0].ID)

	v.SetFilter(Filter{})
	assert.Len(t, v.Visible(), 2)
}

func TestViewNotifiesOnlyOnVisibleChange(t *testing.T) {
	now := time.Now()
	v := NewView()

	var notified int
	v.Subscribe(func([]types.Entry) { notified++ })

	v.SetEntries(fixtureEntries(now))
	assert.Equal(t, 1, notified)

	// Same filter result: no notification.
	v.SetFilter(Filter{CategoryID: ""})
	assert.Equal(t, 1, notified)

	v.SetFilter(Filter{CategoryID: "1"})
	assert.Equal(t, 2, notified)
}

func TestSummaryCacheInvalidation(t *testing.T) {
	now := time.Now()
	v := NewView()
	v.SetEntries(fixtureEntries(now))

	var cache SummaryCache
	cache.Bind(v)
	cache.Set("Covers VPN and printer setup.")
	require.Equal(t, "Covers VPN and printer setup.", cache.Text())

	// The summary describes a specific subset; any change clears it.
	v.SetFilter(Filter{Query: "vpn"})
	assert.Empty(t, cache.Text())

	cache.Set("Covers VPN setup.")
	v.SetFilter(Filter{Query: "vpn"}) // identical result, summary survives
	assert.Equal(t, "Covers VPN setup.", cache.Text())
}

func TestSummaryCacheClearsOnEditWithSameMembership(t *testing.T) {
	now := time.Now()
	v := NewView()
	v.SetEntries(fixtureEntries(now))

	var cache SummaryCache
	cache.Bind(v)
	cache.Set("Covers VPN setup.")

	// An edit keeps the visible IDs but the summary describes titles
	// that no longer exist.
	edited := fixtureEntries(now)
	edited[0].Title = "Wireguard rollout"
	v.SetEntries(edited)
	assert.Empty(t, cache.Text())

	cache.Set("Covers Wireguard rollout.")
	v.SetEntries(edited) // byte-identical collection, summary survives
	assert.Equal(t, "Covers Wireguard rollout.", cache.Text())
}
