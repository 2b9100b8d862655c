package model

// Geometry is an element's layout state: position and scroll offset
// relative to the parent, plus size.
type Geometry struct {
	X       int `yaml:"x"  json:"x"`
	Y       int `yaml:"y"  json:"y"`
	ScrollX int `yaml:"scroll_x,omitempty" json:"scroll_x,omitempty"`
	ScrollY int `yaml:"scroll_y,omitempty" json:"scroll_y,omitempty"`
	Width   int `yaml:"w"  json:"w"`
	Height  int `yaml:"h"  json:"h"`
}

// ElementNode is one captured element of the hierarchy. Nodes are built
// once, by capture or by decode, and are read-only afterwards; a tree of
// them can be shared across goroutines without locking.
//
// IDPackage, IDType and IDEntry are the symbolic form of ID when it could
// be resolved. They are either all empty or all populated. An empty string
// in any optional text field means absent.
type ElementNode struct {
	ID        int32  `yaml:"id,omitempty"         json:"id,omitempty"`
	IDPackage string `yaml:"id_package,omitempty" json:"id_package,omitempty"`
	IDType    string `yaml:"id_type,omitempty"    json:"id_type,omitempty"`
	IDEntry   string `yaml:"id_entry,omitempty"   json:"id_entry,omitempty"`

	Geometry Geometry `yaml:"geometry" json:"geometry"`

	// Flags is the packed visibility and attribute word. Most bits are
	// stored inverted (see PackFlags); use the accessors below rather
	// than testing bits directly.
	Flags int32 `yaml:"flags" json:"flags"`

	ClassName          string `yaml:"class"          json:"class"`
	ContentDescription string `yaml:"desc,omitempty" json:"desc,omitempty"`

	Text   *TextBlock     `yaml:"text,omitempty"     json:"text,omitempty"`
	Extras map[string]any `yaml:"extras,omitempty"   json:"extras,omitempty"`

	Children []ElementNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// Visibility returns the element's tri-state visibility.
func (n *ElementNode) Visibility() Visibility {
	return Visibility(n.Flags & flagVisibilityMask)
}

// Attributes returns the unpacked boolean attributes with the stored
// inversion undone.
func (n *ElementNode) Attributes() Attributes {
	_, a := UnpackFlags(n.Flags)
	return a
}

func (n *ElementNode) Disabled() bool {
	return n.Flags&flagDisabled == 0
}

func (n *ElementNode) Focusable() bool {
	return n.Flags&flagFocusable == 0
}

func (n *ElementNode) Focused() bool {
	return n.Flags&flagFocused == 0
}

func (n *ElementNode) AccessibilityFocused() bool {
	return n.Flags&flagAccessibilityFocused == 0
}

func (n *ElementNode) Selected() bool {
	return n.Flags&flagSelected == 0
}

func (n *ElementNode) Activated() bool {
	return n.Flags&flagActivated == 0
}

func (n *ElementNode) Clickable() bool {
	return n.Flags&flagClickable == 0
}

func (n *ElementNode) LongClickable() bool {
	return n.Flags&flagLongClickable == 0
}

func (n *ElementNode) Checkable() bool {
	return n.Flags&flagCheckable != 0
}

func (n *ElementNode) Checked() bool {
	return n.Flags&flagChecked != 0
}

// TextString returns the text run, or "" when no text block is present.
func (n *ElementNode) TextString() string {
	if n.Text == nil {
		return ""
	}
	return n.Text.Text
}

// TextSelectionStart returns the selection start, or -1 without a text block.
func (n *ElementNode) TextSelectionStart() int {
	if n.Text == nil {
		return -1
	}
	return n.Text.SelectionStart
}

// TextSelectionEnd returns the selection end, or -1 without a text block.
func (n *ElementNode) TextSelectionEnd() int {
	if n.Text == nil {
		return -1
	}
	return n.Text.SelectionEnd
}

// TextColor returns the foreground color, or TextColorUndefined without a
// text block.
func (n *ElementNode) TextColor() int {
	if n.Text == nil {
		return TextColorUndefined
	}
	return n.Text.Color
}

// TextBackgroundColor returns the background color, or TextColorUndefined
// without a text block.
func (n *ElementNode) TextBackgroundColor() int {
	if n.Text == nil {
		return TextColorUndefined
	}
	return n.Text.BackgroundColor
}

// TextSize returns the text size, or 0 without a text block.
func (n *ElementNode) TextSize() float32 {
	if n.Text == nil {
		return 0
	}
	return n.Text.Size
}

// TextStyle returns the style bitmask, or 0 without a text block.
func (n *ElementNode) TextStyle() int {
	if n.Text == nil {
		return 0
	}
	return n.Text.Style
}

// Hint returns the hint string, or "" without a text block.
func (n *ElementNode) Hint() string {
	if n.Text == nil {
		return ""
	}
	return n.Text.Hint
}
