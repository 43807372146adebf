package menu

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"
)

// FileLoader reads menu documents from a root directory and serves blocks
// by file and block identifier. File identifiers are logical names without
// extension; <root>/<id>.yaml and <root>/<id>.yml are tried in that order.
// Parsed documents are cached for the loader's lifetime.
//
// FileLoader is the sole I/O point of a navigation session, so Load honors
// context cancellation before touching the filesystem.
type FileLoader struct {
	root  string
	cache map[string]*Document
	rv    RuleValidator
	log   logr.Logger
}

// NewFileLoader creates a loader rooted at dir.
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{
		root:  dir,
		cache: make(map[string]*Document),
		log:   logr.Discard(),
	}
}

// WithLogger sets the loader's logger and returns the loader.
func (l *FileLoader) WithLogger(log logr.Logger) *FileLoader {
	l.log = log
	return l
}

// WithValidator adds access-rule checking to the structural validation
// every document already gets at load time.
func (l *FileLoader) WithValidator(rv RuleValidator) *FileLoader {
	l.rv = rv
	return l
}

// Load returns the named block of a menu file.
func (l *FileLoader) Load(ctx context.Context, fileID, blockID string) (*Block, error) {
	doc, err := l.Document(ctx, fileID)
	if err != nil {
		return nil, err
	}
	return doc.Block(blockID)
}

// Document returns the parsed document for a file identifier, reading and
// caching it on first use.
func (l *FileLoader) Document(ctx context.Context, fileID string) (*Document, error) {
	if doc, ok := l.cache[fileID]; ok {
		return doc, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, path, err := l.read(fileID)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := doc.Validate(l.rv); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	for name, b := range doc.Blocks {
		b.Name = name
		b.File = fileID
	}
	l.log.V(1).Info("loaded menu document", "file", fileID, "path", path, "blocks", len(doc.Blocks))

	l.cache[fileID] = doc
	return doc, nil
}

func (l *FileLoader) read(fileID string) ([]byte, string, error) {
	var firstErr error
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(l.root, fileID+ext)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, path, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, "", fmt.Errorf("menu file %q: %w", fileID, firstErr)
}

// ParseDocument parses one menu document. Unknown fields are rejected so
// typos in menu files surface at load time instead of silently vanishing.
func ParseDocument(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if len(doc.Blocks) == 0 {
		return nil, fmt.Errorf("document %q has no blocks", doc.Name)
	}
	return &doc, nil
}
