// Package nav implements the two navigation entry points that coordinate
// the trail store with the ambient session: back-navigation (undo one
// step, possibly restoring a parent file or leaving a dashboard panel) and
// navigation-bar jumps (full reset to a fresh destination).
package nav

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/wayfind/internal/scope"
	"github.com/oakwood-commons/wayfind/internal/session"
	"github.com/oakwood-commons/wayfind/internal/trail"
	"github.com/oakwood-commons/wayfind/pkg/menu"
)

// Loader serves block content for a file and block identifier. It is the
// only collaborator that performs I/O during navigation, so implementations
// honor ctx cancellation.
type Loader interface {
	Load(ctx context.Context, fileID, blockID string) (*menu.Block, error)
}

// BackResult is what the command dispatcher needs to resume after a back
// step: the content at the restored location, the valid keys there, and a
// cursor naming the last navigation key still on the trail.
type BackResult struct {
	// AtRoot is set when there was nothing to pop and no parent to
	// restore. Back at the root is an expected outcome, not an error.
	AtRoot bool

	Block  *menu.Block
	Keys   []string
	Cursor string
}

// BackResolver resolves the current scope from the session and performs a
// depth-aware pop, cascading to a parent scope when a trail empties out.
type BackResolver struct {
	store  *trail.Store
	sess   *session.Session
	loader Loader
	log    logr.Logger
}

// NewBackResolver wires a resolver over one session's store.
func NewBackResolver(store *trail.Store, sess *session.Session, loader Loader, log logr.Logger) *BackResolver {
	return &BackResolver{store: store, sess: sess, loader: loader, log: log}
}

// HandleBack pops one step off the active trail. When the trail empties,
// the current scope is torn down: a panel scope falls back to its owning
// dashboard scope, and a scope living in a different file than its parent
// restores the session to the parent's file and block before content is
// reloaded.
func (r *BackResolver) HandleBack(ctx context.Context) (BackResult, error) {
	key, err := scope.Resolve(r.sess.Snapshot())
	if err != nil {
		return BackResult{}, err
	}

	prevFile := r.store.Context().CurrentFile
	cursor, popped := r.store.Pop(string(key), trail.NavSequential)

	restored := false
	if t, _ := r.store.Trail(string(key)); len(t) == 0 {
		switch {
		case r.leavePanel(key):
			restored = true
		case r.restoreParentFile(key, prevFile):
			restored = true
		}
		if restored {
			cursor = r.lastKey()
		}
	}

	if !popped && !restored {
		return BackResult{AtRoot: true}, nil
	}

	blk, err := r.loader.Load(ctx, r.sess.File(), r.sess.Block())
	if err != nil {
		return BackResult{}, err
	}
	return BackResult{Block: blk, Keys: blk.Keys(), Cursor: cursor}, nil
}

// leavePanel tears down an emptied panel scope and drops back to the
// enclosing scope. Returns false when the key has no panel segments.
func (r *BackResolver) leavePanel(key scope.Key) bool {
	parent, ok := key.Parent()
	if !ok {
		return false
	}
	r.store.Delete(string(key), trail.NavDashboard)
	r.sess.Restore(parent.Location())
	r.log.V(1).Info("left panel scope", "scope", string(key), "parent", string(parent))
	return true
}

// restoreParentFile tears down an emptied scope whose file differs from the
// scope one step up the navigation stack, and moves the session there.
func (r *BackResolver) restoreParentFile(key scope.Key, prevFile string) bool {
	parent, ok := r.store.ParentScope(string(key))
	if !ok {
		return false
	}
	pk, err := scope.Parse(parent)
	if err != nil || pk.File() == key.File() {
		return false
	}
	r.store.Delete(string(key), trail.NavSequential)
	r.sess.Restore(pk.Location())
	r.log.V(1).Info("restored parent file",
		"scope", string(key), "parent", parent, "previous_file", prevFile)
	return true
}

// lastKey returns the last entry of the now-active scope's trail.
func (r *BackResolver) lastKey() string {
	key, err := scope.Resolve(r.sess.Snapshot())
	if err != nil {
		return ""
	}
	t, _ := r.store.Trail(string(key))
	if len(t) == 0 {
		return ""
	}
	return t[len(t)-1]
}
