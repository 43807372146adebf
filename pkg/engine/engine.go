// Package engine is the public face of the navigation-trail engine. It
// binds one session's trail store to the collaborators the core needs: a
// block loader, an access checker, and the navigation-bar configuration.
//
// The engine processes one event at a time and performs no internal
// locking; hosts that fan events across goroutines must serialize them per
// session before calling in.
package engine

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/wayfind/internal/access"
	"github.com/oakwood-commons/wayfind/internal/display"
	"github.com/oakwood-commons/wayfind/internal/nav"
	"github.com/oakwood-commons/wayfind/internal/scope"
	"github.com/oakwood-commons/wayfind/internal/session"
	"github.com/oakwood-commons/wayfind/internal/trail"
	"github.com/oakwood-commons/wayfind/pkg/menu"
)

// AccessChecker decides whether a user may follow a protected link.
type AccessChecker interface {
	CheckAccess(user map[string]any, rule string) (bool, error)
}

// Engine drives navigation for one session.
type Engine struct {
	store   *trail.Store
	sess    *session.Session
	loader  nav.Loader
	checker AccessChecker
	back    *nav.BackResolver
	navbar  *nav.NavBar
	user    map[string]any
	sep     string
	log     logr.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithLoader sets the block loader used for cross-file navigation and
// back-navigation reloads.
func WithLoader(l nav.Loader) Option {
	return func(e *Engine) { e.loader = l }
}

// WithAccessChecker sets a custom permission checker.
func WithAccessChecker(c AccessChecker) Option {
	return func(e *Engine) { e.checker = c }
}

// WithNavBarDefaults sets the process-wide navigation-bar item list.
func WithNavBarDefaults(items []menu.NavBarItem) Option {
	return func(e *Engine) { e.navbar = nav.NewNavBar(e.store, e.sess, items) }
}

// WithUser sets the attributes evaluated by access rules.
func WithUser(user map[string]any) Option {
	return func(e *Engine) { e.user = user }
}

// WithSeparator sets the banner separator.
func WithSeparator(sep string) Option {
	return func(e *Engine) { e.sep = sep }
}

// WithLogger sets the engine logger.
func WithLogger(log logr.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an engine over a fresh trail store for the given session.
// Without WithAccessChecker, a CEL rule checker is used.
func New(sess *session.Session, opts ...Option) (*Engine, error) {
	if sess == nil {
		return nil, fmt.Errorf("engine needs a session")
	}
	e := &Engine{
		store: trail.NewStore(),
		sess:  sess,
		sep:   display.DefaultSeparator,
		log:   logr.Discard(),
	}
	e.navbar = nav.NewNavBar(e.store, e.sess, nil)
	for _, opt := range opts {
		opt(e)
	}
	if e.checker == nil {
		c, err := access.NewChecker()
		if err != nil {
			return nil, err
		}
		e.checker = c
	}
	e.back = nav.NewBackResolver(e.store, e.sess, e.loader, e.log)
	return e, nil
}

// Scope resolves the active scope key from the session snapshot. The
// engine never accepts a caller-computed scope for its own operations;
// the session is the single source of truth for "where are we".
func (e *Engine) Scope() (scope.Key, error) {
	return scope.Resolve(e.sess.Snapshot())
}

// Session returns the session the engine operates on.
func (e *Engine) Session() *session.Session {
	return e.sess
}

// Store exposes the trail store for read-side collaborators.
func (e *Engine) Store() *trail.Store {
	return e.store
}

// Append pushes a navigation key onto the active scope's trail.
func (e *Engine) Append(key string, nv trail.NavType, opts ...trail.AppendOption) error {
	sc, err := e.Scope()
	if err != nil {
		return err
	}
	e.store.Append(string(sc), key, nv, opts...)
	e.log.V(1).Info("append", "scope", string(sc), "key", key, "nav_type", string(nv))
	return nil
}

// Pop removes one step from the active trail (or a whole collapsed
// subtree), returning the new last key. popped is false when the trail was
// already empty; that is an expected outcome, not an error.
func (e *Engine) Pop() (cursor string, popped bool, err error) {
	sc, err := e.Scope()
	if err != nil {
		return "", false, err
	}
	cursor, popped = e.store.Pop(string(sc), trail.NavSequential)
	return cursor, popped, nil
}

// Create initializes an empty trail for the active scope. Creating an
// existing scope is a no-op for its trail.
func (e *Engine) Create() error {
	sc, err := e.Scope()
	if err != nil {
		return err
	}
	e.store.Create(string(sc), trail.NavSequential)
	return nil
}

// Delete removes the active scope's trail and depth records.
func (e *Engine) Delete() error {
	sc, err := e.Scope()
	if err != nil {
		return err
	}
	e.store.Delete(string(sc), trail.NavSequential)
	return nil
}

// DeleteScope removes an explicitly named scope. The raw key is validated
// at this boundary and never silently corrected.
func (e *Engine) DeleteScope(raw string) error {
	sc, err := scope.Parse(raw)
	if err != nil {
		return err
	}
	e.store.Delete(string(sc), trail.NavSequential)
	return nil
}

// Reset clears every trail and establishes a fresh destination scope in
// one step. Reset is never left dangling without a destination.
func (e *Engine) Reset(fileID, blockID string) error {
	dest, err := scope.Resolve(scope.Location{
		Workspace: e.sess.Workspace(),
		File:      fileID,
		Block:     blockID,
	})
	if err != nil {
		return err
	}
	e.store.Reset(trail.NavNavBar)
	e.store.Create(string(dest), trail.NavNavBar)
	e.sess.Restore(dest.Location())
	return nil
}

// Banner returns the user-facing view of every live trail, keyed by scope.
func (e *Engine) Banner() map[string]string {
	return display.BannerWithSeparator(e.store, e.sep)
}

// Strip renders the active scope's breadcrumb line, truncated to width.
func (e *Engine) Strip(width int) string {
	sc, err := e.Scope()
	if err != nil {
		return ""
	}
	return display.Strip(e.store, string(sc), e.sep, width)
}

// HandleBack performs one back-navigation step; see nav.BackResolver.
func (e *Engine) HandleBack(ctx context.Context) (nav.BackResult, error) {
	if e.loader == nil {
		return nav.BackResult{}, fmt.Errorf("no loader configured")
	}
	return e.back.HandleBack(ctx)
}

// NavBarItems resolves the navigation bar for a screen; nil means the bar
// is disabled there.
func (e *Engine) NavBarItems(screen *menu.Block) []menu.NavBarItem {
	return e.navbar.ItemsFor(screen)
}

// HandleNavBarClick jumps to a navigation-bar destination (full reset +
// create, never incremental) and loads the destination block.
func (e *Engine) HandleNavBarClick(ctx context.Context, item menu.NavBarItem) (*menu.Block, error) {
	if e.loader == nil {
		return nil, fmt.Errorf("no loader configured")
	}
	dest, err := e.navbar.HandleClick(item)
	if err != nil {
		return nil, err
	}
	e.log.V(1).Info("navbar jump", "scope", string(dest))
	return e.loader.Load(ctx, dest.File(), dest.Block())
}
