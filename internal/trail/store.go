// Package trail implements the navigation trail store: per-scope ordered
// key sequences, a side-table of nesting depths, and a single context
// record describing the most recent operation.
//
// The store is deliberately a flat list plus an auxiliary map rather than a
// tree. Trails support exactly one thing well: bounded back-navigation.
// The store carries no history beyond the live trails and is not safe for
// concurrent use; callers own one store per session and serialize access.
package trail

import (
	"time"

	"github.com/oakwood-commons/wayfind/internal/scope"
)

// Operation names recorded in the context record.
type Operation string

const (
	OpAppend Operation = "append"
	OpPop    Operation = "pop"
	OpReset  Operation = "reset"
	OpCreate Operation = "create"
	OpDelete Operation = "delete"
)

// NavType tags the semantic flavor of the navigation event that triggered
// an operation.
type NavType string

const (
	NavSequential NavType = "sequential"
	NavMenu       NavType = "menu"
	NavDelta      NavType = "delta"
	NavZLink      NavType = "zlink"
	NavDashboard  NavType = "dashboard"
	NavNavBar     NavType = "navbar"
)

// Entry types recorded in the depth map. Container types open a nested
// level; popping past one collapses the whole subtree beneath it.
const (
	TypeSequential = "sequential"
	TypeMenu       = "menu"
	TypeMenuChild  = "menu_child"
	TypeDashboard  = "dashboard"
	TypePanel      = "panel"
	TypePanelChild = "panel_child"
)

var containerTypes = map[string]bool{
	TypeMenu:      true,
	TypeDashboard: true,
	TypePanel:     true,
}

// IsContainerType reports whether an entry type opens a nested level.
func IsContainerType(t string) bool {
	return containerTypes[t]
}

// DepthInfo records the nesting depth and navigational role of one trail
// entry within its scope.
type DepthInfo struct {
	Depth int
	Type  string
}

// Context is the single most-recent-operation record. It is overwritten,
// never accumulated, on every mutating operation.
type Context struct {
	LastOperation Operation
	LastNavType   NavType
	CurrentFile   string
	Timestamp     int64
}

// Store holds every live trail for one session. Keys within a trail are
// assumed unique; the depth map is keyed by entry.
type Store struct {
	trails   map[string][]string
	depthMap map[string]map[string]DepthInfo
	context  Context

	// order tracks scope creation order. It backs parent-scope lookup for
	// back-navigation and deterministic banner iteration.
	order []string

	// now is swappable for tests.
	now func() int64
}

// NewStore returns an empty trail store.
func NewStore() *Store {
	return &Store{
		trails:   make(map[string][]string),
		depthMap: make(map[string]map[string]DepthInfo),
		now:      func() int64 { return time.Now().UnixNano() },
	}
}

// Trail returns a copy of the trail for a scope and whether it exists.
func (s *Store) Trail(scopeKey string) ([]string, bool) {
	t, ok := s.trails[scopeKey]
	if !ok {
		return nil, false
	}
	out := make([]string, len(t))
	copy(out, t)
	return out, true
}

// Trails returns a copy of every live trail keyed by scope.
func (s *Store) Trails() map[string][]string {
	out := make(map[string][]string, len(s.trails))
	for k := range s.trails {
		t, _ := s.Trail(k)
		out[k] = t
	}
	return out
}

// Scopes returns the live scope keys in creation order.
func (s *Store) Scopes() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Depth returns the depth-map record for one entry of a scope's trail.
func (s *Store) Depth(scopeKey, key string) (DepthInfo, bool) {
	dm, ok := s.depthMap[scopeKey]
	if !ok {
		return DepthInfo{}, false
	}
	di, ok := dm[key]
	return di, ok
}

// Last returns the final entry of a scope's trail with its depth record.
func (s *Store) Last(scopeKey string) (string, DepthInfo, bool) {
	t := s.trails[scopeKey]
	if len(t) == 0 {
		return "", DepthInfo{}, false
	}
	key := t[len(t)-1]
	return key, s.depthMap[scopeKey][key], true
}

// DepthEntries returns the number of depth-map records held for a scope.
func (s *Store) DepthEntries(scopeKey string) int {
	return len(s.depthMap[scopeKey])
}

// Context returns the most-recent-operation record.
func (s *Store) Context() Context {
	return s.context
}

// ParentScope returns the live scope created immediately before the given
// one. This is the scope back-navigation restores to when the current
// scope's trail empties out.
func (s *Store) ParentScope(scopeKey string) (string, bool) {
	for i, k := range s.order {
		if k == scopeKey {
			if i == 0 {
				return "", false
			}
			return s.order[i-1], true
		}
	}
	return "", false
}

// touch overwrites the context record. Timestamps never decrease, even if
// the wall clock steps backward.
func (s *Store) touch(op Operation, nav NavType, scopeKey string) {
	ts := s.now()
	if ts <= s.context.Timestamp {
		ts = s.context.Timestamp + 1
	}
	file := s.context.CurrentFile
	if k, err := scope.Parse(scopeKey); err == nil {
		file = k.File()
	}
	s.context = Context{
		LastOperation: op,
		LastNavType:   nav,
		CurrentFile:   file,
		Timestamp:     ts,
	}
}
