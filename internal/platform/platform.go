// Package platform defines the narrow interfaces a live element tree must
// expose to be captured. A toolkit backend implements them once per
// concrete element kind; the capture traversal itself lives in
// internal/capture and never depends on a concrete backend.
package platform

import (
	"errors"

	"github.com/HullComputing/uisnap/internal/model"
)

// Element is one node of a live UI hierarchy. Implementations are queried
// synchronously on the thread that owns the tree; none of these methods
// may block. All reads are assumed total — a malformed element (negative
// width, odd flags) is captured as-is.
type Element interface {
	// ID returns the element's numeric identifier, 0 for none.
	ID() int32

	// Geometry returns position relative to the parent, scroll offset
	// and size, from the element's current layout state.
	Geometry() model.Geometry

	// Visibility returns the tri-state visibility.
	Visibility() model.Visibility

	// Attributes returns the element's boolean attributes, uninverted.
	Attributes() model.Attributes

	// ClassName names the concrete element kind. Never empty.
	ClassName() string

	// ContentDescription returns the accessibility description, or "".
	ContentDescription() string

	// FillTextAndExtras lets the element report text, hint and extension
	// attributes into the capture's scratch buffer. Elements with
	// nothing to report leave the buffer untouched.
	FillTextAndExtras(s *model.Scratch)

	// ChildCount returns the number of children; 0 for leaves and for
	// containers that happen to be empty.
	ChildCount() int

	// ChildAt returns the i-th child in traversal order.
	ChildAt(i int) Element
}

// Window is one top-level surface of a live tree.
type Window interface {
	// Frame returns the window rectangle in screen coordinates.
	Frame() (x, y, width, height int)

	// Title returns the window title, or "".
	Title() string

	// Root returns the window's root element. Never nil.
	Root() Element
}

// Reader enumerates the live windows owned by a component.
type Reader interface {
	Windows(component string) ([]Window, error)
}

// ErrNotFound is returned by a Resolver when an id has no symbolic form.
var ErrNotFound = errors.New("symbolic id not found")

// Resolver maps a numeric element id to its symbolic (package, type,
// entry) triple. Lookups are best effort: any error is treated as a miss
// by capture, never propagated.
type Resolver interface {
	ResolveID(id int32) (pkg, typ, entry string, err error)
}
