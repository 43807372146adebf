// Package scope derives and validates the keys that identify navigation
// trails. A scope key is a dot-joined string of workspace, file, and block
// segments, optionally extended with dashboard panel segments.
package scope

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncompleteScope indicates the session location is missing fields
	// required to resolve a scope key. This is a caller bug: session state
	// must be set before navigation operations run.
	ErrIncompleteScope = errors.New("incomplete scope: location is missing workspace, file, or block")

	// ErrInvalidTrailFormat indicates a scope key string does not meet the
	// minimum structural requirement of three dot-joined segments.
	ErrInvalidTrailFormat = errors.New("invalid scope key: want workspace.file.block")
)

// Key uniquely identifies one trail. Segment layout is
// workspace.file.block with zero or more trailing panel segments.
// Segments are logical identifiers and never contain dots.
type Key string

// Location is an immutable snapshot of the session's active position. It is
// the single source of truth for "where are we": navigation operations
// resolve their scope from a Location rather than accepting a pre-computed
// key from the caller.
type Location struct {
	Workspace string
	File      string
	Block     string
	Panels    []string
}

// Complete reports whether the location carries every required field.
func (l Location) Complete() bool {
	return l.Workspace != "" && l.File != "" && l.Block != ""
}

// Resolve derives the scope key for a location. Returns ErrIncompleteScope
// when a required field is empty or any segment contains a dot.
func Resolve(loc Location) (Key, error) {
	if !loc.Complete() {
		return "", fmt.Errorf("%w: %+v", ErrIncompleteScope, loc)
	}
	segs := make([]string, 0, 3+len(loc.Panels))
	segs = append(segs, loc.Workspace, loc.File, loc.Block)
	segs = append(segs, loc.Panels...)
	for _, s := range segs {
		if s == "" || strings.Contains(s, ".") {
			return "", fmt.Errorf("%w: segment %q", ErrIncompleteScope, s)
		}
	}
	return Key(strings.Join(segs, ".")), nil
}

// Parse validates a raw scope key string. Structural errors surface
// immediately; keys are never silently corrected.
func Parse(s string) (Key, error) {
	segs := strings.Split(s, ".")
	if len(segs) < 3 {
		return "", fmt.Errorf("%w: got %q", ErrInvalidTrailFormat, s)
	}
	for _, seg := range segs {
		if seg == "" {
			return "", fmt.Errorf("%w: empty segment in %q", ErrInvalidTrailFormat, s)
		}
	}
	return Key(s), nil
}

// Segments returns the dot-split parts of the key.
func (k Key) Segments() []string {
	return strings.Split(string(k), ".")
}

// Workspace returns the workspace segment.
func (k Key) Workspace() string {
	return k.Segments()[0]
}

// File returns the file segment.
func (k Key) File() string {
	segs := k.Segments()
	if len(segs) < 2 {
		return ""
	}
	return segs[1]
}

// Block returns the block segment.
func (k Key) Block() string {
	segs := k.Segments()
	if len(segs) < 3 {
		return ""
	}
	return segs[2]
}

// Panels returns the panel segments beyond the block, or nil.
func (k Key) Panels() []string {
	segs := k.Segments()
	if len(segs) <= 3 {
		return nil
	}
	return segs[3:]
}

// Location reconstructs the location snapshot the key was resolved from.
func (k Key) Location() Location {
	return Location{
		Workspace: k.Workspace(),
		File:      k.File(),
		Block:     k.Block(),
		Panels:    k.Panels(),
	}
}

// WithPanel extends the key with one panel segment, entering a nested
// dashboard panel scope.
func (k Key) WithPanel(name string) Key {
	return Key(string(k) + "." + name)
}

// Parent returns the key with the last panel segment removed. A key at
// block level has no parent; ok is false.
func (k Key) Parent() (Key, bool) {
	segs := k.Segments()
	if len(segs) <= 3 {
		return "", false
	}
	return Key(strings.Join(segs[:len(segs)-1], ".")), true
}
