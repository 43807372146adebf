// Package session holds the mutable per-client navigation position: the
// active workspace, file, block, and dashboard panel chain. One Session
// exists per client; it is not safe for concurrent use.
package session

import (
	"github.com/oakwood-commons/wayfind/internal/scope"
)

// Session is the ambient location state the engine reads (via Snapshot) and
// restores on cross-file back-navigation and nav-bar jumps.
type Session struct {
	workspace string
	file      string
	block     string
	panels    []string
}

// New returns a session positioned at the given workspace, file, and block.
func New(workspace, file, block string) *Session {
	return &Session{workspace: workspace, file: file, block: block}
}

// Snapshot returns an immutable copy of the current location. Navigation
// operations resolve their scope from this snapshot, never from
// caller-supplied keys.
func (s *Session) Snapshot() scope.Location {
	panels := make([]string, len(s.panels))
	copy(panels, s.panels)
	return scope.Location{
		Workspace: s.workspace,
		File:      s.file,
		Block:     s.block,
		Panels:    panels,
	}
}

// SetLocation moves the session to a new file and block, leaving any open
// panel chain behind.
func (s *Session) SetLocation(file, block string) {
	s.file = file
	s.block = block
	s.panels = nil
}

// SetBlock moves the session to a different block in the same file.
func (s *Session) SetBlock(block string) {
	s.block = block
	s.panels = nil
}

// EnterPanel pushes a dashboard panel onto the active panel chain.
func (s *Session) EnterPanel(name string) {
	s.panels = append(s.panels, name)
}

// LeavePanel pops the innermost panel from the chain. No-op when no panel
// is open.
func (s *Session) LeavePanel() {
	if len(s.panels) > 0 {
		s.panels = s.panels[:len(s.panels)-1]
	}
}

// Restore positions the session at an arbitrary resolved location.
func (s *Session) Restore(loc scope.Location) {
	s.workspace = loc.Workspace
	s.file = loc.File
	s.block = loc.Block
	s.panels = make([]string, len(loc.Panels))
	copy(s.panels, loc.Panels)
}

// Workspace returns the active workspace label.
func (s *Session) Workspace() string { return s.workspace }

// File returns the active file identifier.
func (s *Session) File() string { return s.file }

// Block returns the active block identifier.
func (s *Session) Block() string { return s.block }

// Panels returns a copy of the active panel chain.
func (s *Session) Panels() []string {
	out := make([]string, len(s.panels))
	copy(out, s.panels)
	return out
}
