package engine

import (
	"github.com/oakwood-commons/wayfind/internal/access"
	"github.com/oakwood-commons/wayfind/internal/scope"
	"github.com/oakwood-commons/wayfind/pkg/menu"
)

// Sentinel errors re-exported for callers outside the module.
var (
	// ErrIncompleteScope: session state lacks fields needed to resolve a
	// scope key. Fix session setup before navigating.
	ErrIncompleteScope = scope.ErrIncompleteScope

	// ErrInvalidTrailFormat: a raw scope key does not have at least
	// workspace.file.block segments.
	ErrInvalidTrailFormat = scope.ErrInvalidTrailFormat

	// ErrAccessDenied: a protected link's rule rejected the user; the
	// trail store is unchanged.
	ErrAccessDenied = access.ErrAccessDenied

	// ErrBlockNotFound: a menu document has no block with the requested
	// name.
	ErrBlockNotFound = menu.ErrBlockNotFound
)
