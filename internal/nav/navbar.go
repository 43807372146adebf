package nav

import (
	"github.com/oakwood-commons/wayfind/internal/scope"
	"github.com/oakwood-commons/wayfind/internal/session"
	"github.com/oakwood-commons/wayfind/internal/trail"
	"github.com/oakwood-commons/wayfind/pkg/menu"
)

// NavBar guarantees that navigation-bar jumps always perform a full reset
// followed by a create for the destination; it never issues incremental
// trail operations.
type NavBar struct {
	store    *trail.Store
	sess     *session.Session
	defaults []menu.NavBarItem
}

// NewNavBar wires the handler with the process-wide default item list,
// which may be empty.
func NewNavBar(store *trail.Store, sess *session.Session, defaults []menu.NavBarItem) *NavBar {
	return &NavBar{store: store, sess: sess, defaults: defaults}
}

// ItemsFor resolves the navigation bar for a screen: a per-screen override
// wins over the process-wide default; with neither, the bar is disabled and
// nil is returned.
func (n *NavBar) ItemsFor(screen *menu.Block) []menu.NavBarItem {
	if screen != nil && len(screen.NavBar) > 0 {
		return screen.NavBar
	}
	if len(n.defaults) > 0 {
		return n.defaults
	}
	return nil
}

// Enabled reports whether any navigation bar applies to the screen.
func (n *NavBar) Enabled(screen *menu.Block) bool {
	return len(n.ItemsFor(screen)) > 0
}

// HandleClick jumps to a navigation-bar destination: every trail is cleared
// and a fresh trail is created for the destination scope, and the session
// moves there.
func (n *NavBar) HandleClick(item menu.NavBarItem) (scope.Key, error) {
	dest, err := scope.Resolve(scope.Location{
		Workspace: n.sess.Workspace(),
		File:      item.File,
		Block:     item.Block,
	})
	if err != nil {
		return "", err
	}
	n.store.Reset(trail.NavNavBar)
	n.store.Create(string(dest), trail.NavNavBar)
	n.sess.Restore(dest.Location())
	return dest, nil
}
