package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakwood-commons/wayfind/internal/scope"
)

func TestSnapshotIsACopy(t *testing.T) {
	s := New("ws", "main", "home")
	s.EnterPanel("cpu")

	snap := s.Snapshot()
	snap.Panels[0] = "mutated"

	assert.Equal(t, []string{"cpu"}, s.Panels())
}

func TestSetLocationClearsPanels(t *testing.T) {
	s := New("ws", "dash", "overview")
	s.EnterPanel("cpu")
	s.EnterPanel("load")

	s.SetLocation("main", "home")

	assert.Equal(t, "main", s.File())
	assert.Equal(t, "home", s.Block())
	assert.Empty(t, s.Panels())
}

func TestSetBlockClearsPanels(t *testing.T) {
	s := New("ws", "dash", "overview")
	s.EnterPanel("cpu")

	s.SetBlock("detail")

	assert.Equal(t, "dash", s.File())
	assert.Equal(t, "detail", s.Block())
	assert.Empty(t, s.Panels())
}

func TestPanelChain(t *testing.T) {
	s := New("ws", "dash", "overview")
	s.EnterPanel("cpu")
	s.EnterPanel("load")
	assert.Equal(t, []string{"cpu", "load"}, s.Panels())

	s.LeavePanel()
	assert.Equal(t, []string{"cpu"}, s.Panels())

	s.LeavePanel()
	s.LeavePanel() // extra leave is a no-op
	assert.Empty(t, s.Panels())
}

func TestRestore(t *testing.T) {
	s := New("ws", "main", "home")

	s.Restore(scope.Location{Workspace: "ws", File: "dash", Block: "overview", Panels: []string{"cpu"}})

	assert.Equal(t, "dash", s.File())
	assert.Equal(t, "overview", s.Block())
	assert.Equal(t, []string{"cpu"}, s.Panels())

	key, err := scope.Resolve(s.Snapshot())
	assert.NoError(t, err)
	assert.Equal(t, scope.Key("ws.dash.overview.cpu"), key)
}
