package menu

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainDoc = `
name: main
blocks:
  home:
    title: Home
    items:
      - key: Status
      - key: Settings
        kind: menu
        items:
          - key: Network
          - key: Display
      - key: Reports
        kind: zlink
        file: reports
        block: summary
        access: '"admin" in user.roles'
      - key: Detail
        kind: delta
        block: detail
    navbar:
      - label: Home
        file: main
        block: home
  detail:
    title: Detail
    items:
      - key: Back
`

func writeMenuDir(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestLoadBlock(t *testing.T) {
	dir := writeMenuDir(t, map[string]string{"main.yaml": mainDoc})
	l := NewFileLoader(dir)

	blk, err := l.Load(context.Background(), "main", "home")
	require.NoError(t, err)

	assert.Equal(t, "Home", blk.Title)
	assert.Equal(t, "home", blk.Name)
	assert.Equal(t, "main", blk.File)
	assert.Equal(t, []string{"Status", "Settings", "Reports", "Detail"}, blk.Keys())
	require.Len(t, blk.NavBar, 1)
	assert.Equal(t, "Home", blk.NavBar[0].Label)
}

func TestLoadUnknownBlock(t *testing.T) {
	dir := writeMenuDir(t, map[string]string{"main.yaml": mainDoc})
	l := NewFileLoader(dir)

	_, err := l.Load(context.Background(), "main", "missing")
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestLoadMissingFile(t *testing.T) {
	l := NewFileLoader(t.TempDir())

	_, err := l.Load(context.Background(), "nope", "home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `menu file "nope"`)
}

func TestLoadYmlExtensionFallback(t *testing.T) {
	dir := writeMenuDir(t, map[string]string{"main.yml": mainDoc})
	l := NewFileLoader(dir)

	_, err := l.Load(context.Background(), "main", "home")
	assert.NoError(t, err)
}

func TestLoadHonorsCancellation(t *testing.T) {
	dir := writeMenuDir(t, map[string]string{"main.yaml": mainDoc})
	l := NewFileLoader(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := l.Load(ctx, "main", "home")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadCachesDocuments(t *testing.T) {
	dir := writeMenuDir(t, map[string]string{"main.yaml": mainDoc})
	l := NewFileLoader(dir)

	_, err := l.Load(context.Background(), "main", "home")
	require.NoError(t, err)

	// A cached document is served even if the file disappears.
	require.NoError(t, os.Remove(filepath.Join(dir, "main.yaml")))
	_, err = l.Load(context.Background(), "main", "detail")
	assert.NoError(t, err)
}

func TestLoadValidatesStructure(t *testing.T) {
	bad := "name: main\nblocks:\n  a:\n    items:\n      - key: M\n        kind: menu\n"
	dir := writeMenuDir(t, map[string]string{"main.yaml": bad})
	l := NewFileLoader(dir)

	_, err := l.Load(context.Background(), "main", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no items")
}

func TestLoadWithValidatorChecksRules(t *testing.T) {
	dir := writeMenuDir(t, map[string]string{"main.yaml": mainDoc})
	l := NewFileLoader(dir).WithValidator(rejectAllValidator{})

	_, err := l.Load(context.Background(), "main", "home")
	assert.Error(t, err)
}

func TestParseDocumentRejectsUnknownFields(t *testing.T) {
	_, err := ParseDocument([]byte("name: x\nblocks:\n  a:\n    titel: typo\n"))
	assert.Error(t, err)
}

func TestParseDocumentRejectsEmpty(t *testing.T) {
	_, err := ParseDocument([]byte("name: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no blocks")
}

func TestFindAndEffectiveKind(t *testing.T) {
	doc, err := ParseDocument([]byte(mainDoc))
	require.NoError(t, err)
	blk, err := doc.Block("home")
	require.NoError(t, err)

	item, ok := blk.Find("Settings")
	require.True(t, ok)
	assert.Equal(t, KindMenu, item.EffectiveKind())
	assert.True(t, item.IsContainer())

	item, ok = blk.Find("Status")
	require.True(t, ok)
	assert.Equal(t, KindItem, item.EffectiveKind())
	assert.False(t, item.IsContainer())

	_, ok = blk.Find("Nope")
	assert.False(t, ok)
}

type rejectAllValidator struct{}

func (rejectAllValidator) ValidateRule(rule string) error {
	return assert.AnError
}

func TestDocumentValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		rv      RuleValidator
		wantErr string
	}{
		{name: "valid", doc: mainDoc},
		{
			name:    "menu without items",
			doc:     "blocks:\n  a:\n    items:\n      - key: M\n        kind: menu\n",
			wantErr: "has no items",
		},
		{
			name:    "delta without block",
			doc:     "blocks:\n  a:\n    items:\n      - key: D\n        kind: delta\n",
			wantErr: "no target block",
		},
		{
			name:    "zlink without file",
			doc:     "blocks:\n  a:\n    items:\n      - key: Z\n        kind: zlink\n        block: b\n",
			wantErr: "needs file and block",
		},
		{
			name:    "panel outside dashboard",
			doc:     "blocks:\n  a:\n    items:\n      - key: P\n        kind: panel\n",
			wantErr: "outside a dashboard",
		},
		{
			name: "panel under dashboard ok",
			doc:  "blocks:\n  a:\n    items:\n      - key: D\n        kind: dashboard\n        items:\n          - key: P\n            kind: panel\n",
		},
		{
			name:    "unknown kind",
			doc:     "blocks:\n  a:\n    items:\n      - key: X\n        kind: warp\n",
			wantErr: "unknown kind",
		},
		{
			name:    "missing key",
			doc:     "blocks:\n  a:\n    items:\n      - kind: item\n",
			wantErr: "without key",
		},
		{
			name:    "rule validator consulted",
			doc:     mainDoc,
			rv:      rejectAllValidator{},
			wantErr: assert.AnError.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.doc))
			require.NoError(t, err)
			err = doc.Validate(tt.rv)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
