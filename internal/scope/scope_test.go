package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		loc     Location
		want    Key
		wantErr error
	}{
		{
			name: "workspace file block",
			loc:  Location{Workspace: "ws", File: "main", Block: "home"},
			want: "ws.main.home",
		},
		{
			name: "panel chain",
			loc:  Location{Workspace: "ws", File: "dash", Block: "overview", Panels: []string{"cpu", "load"}},
			want: "ws.dash.overview.cpu.load",
		},
		{
			name:    "missing workspace",
			loc:     Location{File: "main", Block: "home"},
			wantErr: ErrIncompleteScope,
		},
		{
			name:    "missing file",
			loc:     Location{Workspace: "ws", Block: "home"},
			wantErr: ErrIncompleteScope,
		},
		{
			name:    "missing block",
			loc:     Location{Workspace: "ws", File: "main"},
			wantErr: ErrIncompleteScope,
		},
		{
			name:    "dotted segment rejected",
			loc:     Location{Workspace: "ws", File: "main.yaml", Block: "home"},
			wantErr: ErrIncompleteScope,
		},
		{
			name:    "empty panel segment rejected",
			loc:     Location{Workspace: "ws", File: "main", Block: "home", Panels: []string{""}},
			wantErr: ErrIncompleteScope,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.loc)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "minimal", in: "ws.main.home"},
		{name: "with panels", in: "ws.dash.overview.cpu"},
		{name: "two segments", in: "ws.main", wantErr: true},
		{name: "one segment", in: "ws", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "empty segment", in: "ws..home", wantErr: true},
		{name: "trailing dot", in: "ws.main.home.", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTrailFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Key(tt.in), got)
		})
	}
}

func TestKeyAccessors(t *testing.T) {
	k := Key("ws.dash.overview.cpu.load")

	assert.Equal(t, "ws", k.Workspace())
	assert.Equal(t, "dash", k.File())
	assert.Equal(t, "overview", k.Block())
	assert.Equal(t, []string{"cpu", "load"}, k.Panels())

	loc := k.Location()
	roundTrip, err := Resolve(loc)
	require.NoError(t, err)
	assert.Equal(t, k, roundTrip)
}

func TestKeyPanelsNilAtBlockLevel(t *testing.T) {
	assert.Nil(t, Key("ws.main.home").Panels())
}

func TestWithPanelAndParent(t *testing.T) {
	base := Key("ws.dash.overview")

	child := base.WithPanel("cpu")
	assert.Equal(t, Key("ws.dash.overview.cpu"), child)

	parent, ok := child.Parent()
	require.True(t, ok)
	assert.Equal(t, base, parent)

	_, ok = base.Parent()
	assert.False(t, ok)
}
