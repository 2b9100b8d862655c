// Package capture walks a live element tree and produces an immutable
// model.Snapshot. The walk is a single synchronous pass: it must run on
// the thread that owns the tree, runs to completion without suspension
// points, and shares exactly one scratch buffer across the whole pass.
package capture

import (
	"fmt"

	"github.com/HullComputing/uisnap/internal/model"
	"github.com/HullComputing/uisnap/internal/platform"
)

// Capture builds a snapshot of every window the component currently owns.
// The returned Snapshot is immutable and safe to share across goroutines.
func Capture(p *platform.Provider, component string) (*model.Snapshot, error) {
	if p == nil || p.Reader == nil {
		return nil, platform.ErrUnsupported
	}
	windows, err := p.Reader.Windows(component)
	if err != nil {
		return nil, fmt.Errorf("enumerate windows for %q: %w", component, err)
	}
	c := &capturer{
		resolver: p.Resolver,
		scratch:  model.NewScratch(),
	}
	snap := &model.Snapshot{Component: component}
	for _, w := range windows {
		snap.Windows = append(snap.Windows, c.captureWindow(w))
	}
	return snap, nil
}

// capturer carries the per-pass state: the resolver and the one reusable
// scratch buffer. It is never shared between passes.
type capturer struct {
	resolver platform.Resolver
	scratch  *model.Scratch
}

func (c *capturer) captureWindow(w platform.Window) model.WindowNode {
	x, y, width, height := w.Frame()
	return model.WindowNode{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Title:  w.Title(),
		Root:   c.captureElement(w.Root()),
	}
}

func (c *capturer) captureElement(el platform.Element) model.ElementNode {
	n := model.ElementNode{ID: el.ID()}
	if c.resolver != nil && resolvable(n.ID) {
		// Best effort: a miss leaves the triple empty and the numeric
		// id in place.
		pkg, typ, entry, err := c.resolver.ResolveID(n.ID)
		if err == nil {
			n.IDPackage = pkg
			n.IDType = typ
			n.IDEntry = entry
		}
	}
	n.Geometry = el.Geometry()
	n.Flags = model.PackFlags(el.Visibility(), el.Attributes())
	n.ClassName = el.ClassName()
	n.ContentDescription = el.ContentDescription()

	el.FillTextAndExtras(c.scratch)
	n.Text = c.scratch.DetachText()
	n.Extras = c.scratch.DetachExtras()
	c.scratch.Reset()

	if count := el.ChildCount(); count > 0 {
		n.Children = make([]model.ElementNode, 0, count)
		for i := 0; i < count; i++ {
			n.Children = append(n.Children, c.captureElement(el.ChildAt(i)))
		}
	}
	return n
}

// resolvable reports whether an id encodes a three-part symbolic
// reference: all three byte-aligned segments must be non-zero.
func resolvable(id int32) bool {
	return id > 0 &&
		uint32(id)&0xff000000 != 0 &&
		uint32(id)&0x00ff0000 != 0 &&
		uint32(id)&0x0000ffff != 0
}
