package model

import (
	"fmt"
	"io"
)

// Dump writes a human-readable rendering of the snapshot tree: one header
// line per window, then each element indented under its parent. Lines for
// scroll offsets, descriptions, text, hints and extras appear only when
// the node carries them.
func (s *Snapshot) Dump(w io.Writer) {
	fmt.Fprintf(w, "Component: %s\n", s.Component)
	for i := range s.Windows {
		win := &s.Windows[i]
		fmt.Fprintf(w, "Window #%d [%d,%d %dx%d] %s\n",
			i, win.X, win.Y, win.Width, win.Height, win.Title)
		dumpElement(w, "  ", &win.Root)
	}
}

func dumpElement(w io.Writer, prefix string, n *ElementNode) {
	g := n.Geometry
	fmt.Fprintf(w, "%sView [%d,%d %dx%d] %s\n", prefix, g.X, g.Y, g.Width, g.Height, n.ClassName)
	if n.ID != 0 {
		if n.IDEntry != "" {
			fmt.Fprintf(w, "%s  ID: #%x %s:%s/%s\n", prefix, n.ID, n.IDPackage, n.IDType, n.IDEntry)
		} else {
			fmt.Fprintf(w, "%s  ID: #%x\n", prefix, n.ID)
		}
	}
	if g.ScrollX != 0 || g.ScrollY != 0 {
		fmt.Fprintf(w, "%s  Scroll: %d,%d\n", prefix, g.ScrollX, g.ScrollY)
	}
	if n.ContentDescription != "" {
		fmt.Fprintf(w, "%s  Content description: %s\n", prefix, n.ContentDescription)
	}
	if n.Text != nil {
		fmt.Fprintf(w, "%s  Text (sel %d-%d): %s\n",
			prefix, n.Text.SelectionStart, n.Text.SelectionEnd, n.Text.Text)
		fmt.Fprintf(w, "%s  Text size: %v , style: #%x\n", prefix, n.Text.Size, n.Text.Style)
		fmt.Fprintf(w, "%s  Text color fg: #%x, bg: #%x\n", prefix, n.Text.Color, n.Text.BackgroundColor)
		if n.Text.Hint != "" {
			fmt.Fprintf(w, "%s  Hint: %s\n", prefix, n.Text.Hint)
		}
	}
	if n.Extras != nil {
		fmt.Fprintf(w, "%s  Extras: %v\n", prefix, n.Extras)
	}
	if len(n.Children) > 0 {
		fmt.Fprintf(w, "%s  Children:\n", prefix)
		cprefix := prefix + "    "
		for i := range n.Children {
			dumpElement(w, cprefix, &n.Children[i])
		}
	}
}
