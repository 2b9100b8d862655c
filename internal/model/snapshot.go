// Package model holds the immutable snapshot value types and their binary
// codec. A Snapshot is built once, by capture or by decode, and never
// mutated afterwards.
package model

// Snapshot is a point-in-time copy of everything rendered by one owning
// component: its identity plus the windows in capture order. Window order
// is significant (display stacking).
type Snapshot struct {
	Component string       `yaml:"component,omitempty" json:"component,omitempty"`
	Windows   []WindowNode `yaml:"windows"             json:"windows"`
}

// WindowCount returns the number of captured windows.
func (s *Snapshot) WindowCount() int {
	return len(s.Windows)
}

// ElementCount returns the total number of elements across all windows.
func (s *Snapshot) ElementCount() int {
	total := 0
	for i := range s.Windows {
		total += countElements(&s.Windows[i].Root)
	}
	return total
}

func countElements(n *ElementNode) int {
	total := 1
	for i := range n.Children {
		total += countElements(&n.Children[i])
	}
	return total
}
