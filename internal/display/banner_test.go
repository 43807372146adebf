package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/wayfind/internal/trail"
)

func TestBannerJoinsKeys(t *testing.T) {
	st := trail.NewStore()
	st.Append("ws.main.s", "x", trail.NavMenu)
	st.Append("ws.main.s", "y", trail.NavMenu)

	got := Banner(st)

	assert.Equal(t, map[string]string{"ws.main.s": "x > y"}, got)
}

func TestBannerNeverExposesBookkeeping(t *testing.T) {
	st := trail.NewStore()
	st.Append("ws.main.s", "x", trail.NavMenu)
	st.Create("ws.other.t", trail.NavZLink)

	got := Banner(st)

	require.Len(t, got, 2)
	for k := range got {
		assert.False(t, strings.HasPrefix(k, "_"), "banner keys are scope keys only, got %q", k)
	}
	assert.Equal(t, "", got["ws.other.t"], "empty trail renders as empty string")
}

func TestBannerEmptyStore(t *testing.T) {
	assert.Empty(t, Banner(trail.NewStore()))
}

func TestBannerWithSeparator(t *testing.T) {
	st := trail.NewStore()
	st.Append("ws.main.s", "a", trail.NavMenu)
	st.Append("ws.main.s", "b", trail.NavMenu)

	got := BannerWithSeparator(st, " / ")

	assert.Equal(t, "a / b", got["ws.main.s"])
}

func TestBannerEndToEnd(t *testing.T) {
	st := trail.NewStore()
	st.Append("ws.main.root", "Menu", trail.NavMenu)
	st.Append("ws.main.root", "Settings", trail.NavMenu)
	st.Append("ws.main.root", "Network", trail.NavMenu)

	assert.Equal(t, "Menu > Settings > Network", Banner(st)["ws.main.root"])

	st.Pop("ws.main.root", trail.NavSequential)
	assert.Equal(t, "Menu > Settings", Banner(st)["ws.main.root"])
}

func TestStripTruncatesFromLeft(t *testing.T) {
	st := trail.NewStore()
	st.Append("ws.main.s", "Menu", trail.NavMenu)
	st.Append("ws.main.s", "Settings", trail.NavMenu)
	st.Append("ws.main.s", "Network", trail.NavMenu)

	full := Strip(st, "ws.main.s", DefaultSeparator, 80)
	assert.Equal(t, "Menu > Settings > Network", full)

	short := Strip(st, "ws.main.s", DefaultSeparator, 20)
	assert.Equal(t, "… Settings > Network", short)

	tiny := Strip(st, "ws.main.s", DefaultSeparator, 9)
	assert.Equal(t, "… Network", tiny)
}

func TestStripMissingScope(t *testing.T) {
	assert.Empty(t, Strip(trail.NewStore(), "ws.main.s", DefaultSeparator, 40))
}
