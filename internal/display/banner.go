// Package display renders user-facing views of the trail store. Output
// carries scope keys and joined trail strings only; the store's context
// record and depth map are internal bookkeeping and never leak through
// this package.
package display

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/wayfind/internal/trail"
)

// DefaultSeparator joins trail keys in banner output.
const DefaultSeparator = " > "

// Banner formats every live trail, keyed by scope, joined with the default
// separator.
func Banner(st *trail.Store) map[string]string {
	return BannerWithSeparator(st, DefaultSeparator)
}

// BannerWithSeparator is Banner with a caller-chosen separator.
func BannerWithSeparator(st *trail.Store, sep string) map[string]string {
	out := make(map[string]string)
	for _, scopeKey := range st.Scopes() {
		t, ok := st.Trail(scopeKey)
		if !ok {
			continue
		}
		out[scopeKey] = strings.Join(t, sep)
	}
	return out
}

// Strip renders the single-line breadcrumb for one scope, truncated from
// the left so the most recent keys stay visible in width cells.
func Strip(st *trail.Store, scopeKey, sep string, width int) string {
	t, ok := st.Trail(scopeKey)
	if !ok || len(t) == 0 {
		return ""
	}
	line := strings.Join(t, sep)
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return line
	}
	// Drop leading keys until the tail fits.
	for i := 1; i < len(t); i++ {
		line = "… " + strings.Join(t[i:], sep)
		if runewidth.StringWidth(line) <= width {
			return line
		}
	}
	return runewidth.Truncate("… "+t[len(t)-1], width, "")
}
