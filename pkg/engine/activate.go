package engine

import (
	"context"
	"fmt"

	"github.com/oakwood-commons/wayfind/internal/access"
	"github.com/oakwood-commons/wayfind/internal/trail"
	"github.com/oakwood-commons/wayfind/pkg/menu"
)

// ActivateResult describes where an activated item took the session. Block
// and Keys are set only when the activation loaded new content (delta and
// cross-file links); local activations leave them nil.
type ActivateResult struct {
	Block *menu.Block
	Keys  []string
}

// Activate processes a menu item selection: the one entry point the
// dispatcher calls when the user picks an item. The item's kind decides
// the trail operation:
//
//   - item: append one sequential step
//   - menu: append a container entry opening a submenu level
//   - delta: append the link key, then create a trail for the sibling
//     block and move the session there
//   - zlink: check access, append the link key, create a trail for the
//     foreign block, move the session, and load the destination content
//   - dashboard: append a container entry opening the panel set
//   - panel: create the nested panel scope and enter it
func (e *Engine) Activate(ctx context.Context, item menu.Item) (ActivateResult, error) {
	switch item.EffectiveKind() {
	case menu.KindItem:
		return ActivateResult{}, e.activateItem(item)

	case menu.KindMenu:
		return ActivateResult{}, e.Append(item.Key, trail.NavMenu, trail.WithEntryType(trail.TypeMenu))

	case menu.KindDelta:
		return e.activateDelta(ctx, item)

	case menu.KindZLink:
		return e.activateZLink(ctx, item)

	case menu.KindDashboard:
		return ActivateResult{}, e.Append(item.Key, trail.NavDashboard, trail.WithEntryType(trail.TypeDashboard))

	case menu.KindPanel:
		return ActivateResult{}, e.activatePanel(item)
	}
	return ActivateResult{}, fmt.Errorf("cannot activate item %q of kind %q", item.Key, item.Kind)
}

// activateItem appends a leaf step. Inside an open submenu the step lands
// at the container's child level, and further leaves are siblings at that
// level; outside any container it is a plain sequential step.
func (e *Engine) activateItem(item menu.Item) error {
	sc, err := e.Scope()
	if err != nil {
		return err
	}
	if _, di, ok := e.store.Last(string(sc)); ok {
		if trail.IsContainerType(di.Type) {
			return e.Append(item.Key, trail.NavMenu,
				trail.WithDepth(di.Depth+1), trail.WithEntryType(trail.TypeMenuChild))
		}
		if di.Type == trail.TypeMenuChild {
			return e.Append(item.Key, trail.NavMenu,
				trail.WithDepth(di.Depth), trail.WithEntryType(trail.TypeMenuChild))
		}
	}
	return e.Append(item.Key, trail.NavSequential)
}

func (e *Engine) activateDelta(ctx context.Context, item menu.Item) (ActivateResult, error) {
	if err := e.checkAccess(item); err != nil {
		return ActivateResult{}, err
	}
	if err := e.Append(item.Key, trail.NavDelta); err != nil {
		return ActivateResult{}, err
	}
	e.sess.SetBlock(item.Block)
	dest, err := e.Scope()
	if err != nil {
		return ActivateResult{}, err
	}
	e.store.Create(string(dest), trail.NavDelta)

	if e.loader == nil {
		return ActivateResult{}, nil
	}
	blk, err := e.loader.Load(ctx, e.sess.File(), e.sess.Block())
	if err != nil {
		return ActivateResult{}, err
	}
	return ActivateResult{Block: blk, Keys: blk.Keys()}, nil
}

func (e *Engine) activateZLink(ctx context.Context, item menu.Item) (ActivateResult, error) {
	if err := e.checkAccess(item); err != nil {
		return ActivateResult{}, err
	}
	if err := e.Append(item.Key, trail.NavZLink); err != nil {
		return ActivateResult{}, err
	}
	e.sess.SetLocation(item.File, item.Block)
	dest, err := e.Scope()
	if err != nil {
		return ActivateResult{}, err
	}
	e.store.Create(string(dest), trail.NavZLink)
	e.log.V(1).Info("cross-file link", "scope", string(dest), "key", item.Key)

	if e.loader == nil {
		return ActivateResult{}, nil
	}
	blk, err := e.loader.Load(ctx, e.sess.File(), e.sess.Block())
	if err != nil {
		return ActivateResult{}, err
	}
	return ActivateResult{Block: blk, Keys: blk.Keys()}, nil
}

func (e *Engine) activatePanel(item menu.Item) error {
	sc, err := e.Scope()
	if err != nil {
		return err
	}
	e.store.Create(string(sc.WithPanel(item.Key)), trail.NavDashboard)
	e.sess.EnterPanel(item.Key)
	return nil
}

// checkAccess evaluates a link's access rule, if any, against the engine's
// user. Denial aborts the operation before any trail state changes.
func (e *Engine) checkAccess(item menu.Item) error {
	if item.Access == "" {
		return nil
	}
	ok, err := e.checker.CheckAccess(e.user, item.Access)
	if err != nil {
		return fmt.Errorf("access rule for %q: %w", item.Key, err)
	}
	if !ok {
		return access.Denial(item.Access)
	}
	return nil
}
