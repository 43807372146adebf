// Package menu loads and models the YAML menu documents that drive
// navigation. A document is one file holding named blocks; a block is one
// screen with an ordered item list. Items either run something opaque to
// this package, open a nested submenu, or link to another block or file.
package menu

import (
	"errors"
	"fmt"
)

// Item kinds.
const (
	KindItem      = "item"      // leaf entry, optional exec reference
	KindMenu      = "menu"      // opens a nested item list on the same screen
	KindDelta     = "delta"     // link to another block in the same file
	KindZLink     = "zlink"     // link to a block in a different file
	KindDashboard = "dashboard" // opens a panel set
	KindPanel     = "panel"     // one dashboard panel, nested under a dashboard item
)

// ErrBlockNotFound indicates a document has no block with the requested name.
var ErrBlockNotFound = errors.New("block not found")

// Document is one parsed menu file.
type Document struct {
	Name   string            `yaml:"name"`
	Blocks map[string]*Block `yaml:"blocks"`
}

// Block is one screen: a title, optional body text, an ordered item list,
// and an optional per-screen navigation-bar override.
type Block struct {
	Title  string       `yaml:"title"`
	Body   string       `yaml:"body"`
	Items  []Item       `yaml:"items"`
	NavBar []NavBarItem `yaml:"navbar"`

	// Name and File are filled in at load time.
	Name string `yaml:"-"`
	File string `yaml:"-"`
}

// Item is one menu entry. Key is the navigation key recorded in trails.
type Item struct {
	Key    string `yaml:"key"`
	Kind   string `yaml:"kind"`
	Items  []Item `yaml:"items"`
	File   string `yaml:"file"`
	Block  string `yaml:"block"`
	Access string `yaml:"access"`
	Exec   string `yaml:"exec"`
}

// NavBarItem is one navigation-bar destination.
type NavBarItem struct {
	Label string `yaml:"label"`
	File  string `yaml:"file"`
	Block string `yaml:"block"`
}

// RuleValidator checks an access rule for structural problems at load time.
type RuleValidator interface {
	ValidateRule(rule string) error
}

// Keys returns the navigation keys of the block's top-level items.
func (b *Block) Keys() []string {
	keys := make([]string, len(b.Items))
	for i, item := range b.Items {
		keys[i] = item.Key
	}
	return keys
}

// Find returns the top-level item with the given key.
func (b *Block) Find(key string) (*Item, bool) {
	for i := range b.Items {
		if b.Items[i].Key == key {
			return &b.Items[i], true
		}
	}
	return nil, false
}

// EffectiveKind returns the item kind, defaulting to a plain item.
func (i *Item) EffectiveKind() string {
	if i.Kind == "" {
		return KindItem
	}
	return i.Kind
}

// IsContainer reports whether activating the item opens a nested level.
func (i *Item) IsContainer() bool {
	switch i.EffectiveKind() {
	case KindMenu, KindDashboard:
		return true
	}
	return false
}

// Block returns the named block of the document.
func (d *Document) Block(name string) (*Block, error) {
	b, ok := d.Blocks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in document %q", ErrBlockNotFound, name, d.Name)
	}
	return b, nil
}

// Validate walks the document checking structural rules: link items carry
// their targets, panels only appear under dashboards, and access rules pass
// the supplied validator. A nil validator skips rule checks.
func (d *Document) Validate(rv RuleValidator) error {
	for name, b := range d.Blocks {
		if err := validateItems(b.Items, false, rv); err != nil {
			return fmt.Errorf("block %q: %w", name, err)
		}
	}
	return nil
}

func validateItems(items []Item, underDashboard bool, rv RuleValidator) error {
	for i := range items {
		item := &items[i]
		if item.Key == "" {
			return fmt.Errorf("item without key")
		}
		switch item.EffectiveKind() {
		case KindItem:
		case KindMenu:
			if len(item.Items) == 0 {
				return fmt.Errorf("menu %q has no items", item.Key)
			}
		case KindDelta:
			if item.Block == "" {
				return fmt.Errorf("delta link %q has no target block", item.Key)
			}
		case KindZLink:
			if item.File == "" || item.Block == "" {
				return fmt.Errorf("cross-file link %q needs file and block", item.Key)
			}
		case KindDashboard:
			if len(item.Items) == 0 {
				return fmt.Errorf("dashboard %q has no panels", item.Key)
			}
		case KindPanel:
			if !underDashboard {
				return fmt.Errorf("panel %q outside a dashboard", item.Key)
			}
		default:
			return fmt.Errorf("item %q has unknown kind %q", item.Key, item.Kind)
		}
		if item.Access != "" && rv != nil {
			if err := rv.ValidateRule(item.Access); err != nil {
				return fmt.Errorf("item %q: %w", item.Key, err)
			}
		}
		if err := validateItems(item.Items, item.EffectiveKind() == KindDashboard, rv); err != nil {
			return err
		}
	}
	return nil
}
