package model

// Visibility is the tri-state visibility of an element. The numeric values
// are the live toolkit's own visibility constants so the packed flags word
// needs no translation table.
type Visibility int32

const (
	VisibilityVisible   Visibility = 0x0
	VisibilityInvisible Visibility = 0x4
	VisibilityGone      Visibility = 0x8
)

func (v Visibility) String() string {
	switch v {
	case VisibilityVisible:
		return "visible"
	case VisibilityInvisible:
		return "invisible"
	case VisibilityGone:
		return "gone"
	default:
		return "unknown"
	}
}

// Flag bit positions. These are wire constants carried by historical
// streams; never reorder or renumber them. Newer decoders must ignore bits
// they do not know about.
const (
	flagDisabled             int32 = 0x00000001
	flagVisibilityMask       int32 = int32(VisibilityVisible | VisibilityInvisible | VisibilityGone)
	flagFocusable            int32 = 0x00000010
	flagFocused              int32 = 0x00000020
	flagSelected             int32 = 0x00000040
	flagCheckable            int32 = 0x00000100
	flagChecked              int32 = 0x00000200
	flagClickable            int32 = 0x00004000
	flagLongClickable        int32 = 0x00200000
	flagAccessibilityFocused int32 = 0x04000000
	flagActivated            int32 = 0x40000000
)

// Attributes is the set of independent boolean attributes read from a live
// element. Field meanings are the plain, uninverted ones; the inversion
// only exists inside the packed flags word.
type Attributes struct {
	Disabled             bool
	Focusable            bool
	Focused              bool
	AccessibilityFocused bool
	Selected             bool
	Activated            bool
	Checkable            bool
	Checked              bool
	Clickable            bool
	LongClickable        bool
}

// PackFlags combines visibility and the boolean attributes into one flags
// word. All bits except CHECKABLE and CHECKED are stored inverted (the bit
// is set when the attribute is false). The inversion is a wire-compat
// artifact of the original format, kept so old streams stay parseable;
// UnpackFlags and the ElementNode accessors undo it.
func PackFlags(vis Visibility, a Attributes) int32 {
	flags := int32(vis) & flagVisibilityMask
	if !a.Disabled {
		flags |= flagDisabled
	}
	if !a.Focusable {
		flags |= flagFocusable
	}
	if !a.Focused {
		flags |= flagFocused
	}
	if !a.AccessibilityFocused {
		flags |= flagAccessibilityFocused
	}
	if !a.Selected {
		flags |= flagSelected
	}
	if !a.Activated {
		flags |= flagActivated
	}
	if !a.Clickable {
		flags |= flagClickable
	}
	if !a.LongClickable {
		flags |= flagLongClickable
	}
	if a.Checkable {
		flags |= flagCheckable
	}
	if a.Checked {
		flags |= flagChecked
	}
	return flags
}

// UnpackFlags is the inverse projection of PackFlags. It masks only the
// known bits; unknown future bits are ignored, not rejected, and invalid
// combinations (checked without checkable) are passed through untouched.
func UnpackFlags(flags int32) (Visibility, Attributes) {
	return Visibility(flags & flagVisibilityMask), Attributes{
		Disabled:             flags&flagDisabled == 0,
		Focusable:            flags&flagFocusable == 0,
		Focused:              flags&flagFocused == 0,
		AccessibilityFocused: flags&flagAccessibilityFocused == 0,
		Selected:             flags&flagSelected == 0,
		Activated:            flags&flagActivated == 0,
		Clickable:            flags&flagClickable == 0,
		LongClickable:        flags&flagLongClickable == 0,
		Checkable:            flags&flagCheckable != 0,
		Checked:              flags&flagChecked != 0,
	}
}
