package model

// TextColorUndefined is the magic value for a text color that was never
// set. Chosen by the original format as a color value no real paint uses.
const TextColorUndefined = 1

// Text style bits.
const (
	TextStyleBold          = 1 << 0
	TextStyleItalic        = 1 << 1
	TextStyleUnderline     = 1 << 2
	TextStyleStrikeThrough = 1 << 3
)

// TextBlock holds the text state of an element that reported text or a
// hint. Absent on elements that reported neither. SelectionStart and
// SelectionEnd are both -1 when there is no selection, otherwise
// 0 <= start <= end <= len(Text).
type TextBlock struct {
	Text            string  `yaml:"text,omitempty"  json:"text,omitempty"`
	SelectionStart  int     `yaml:"sel_start"       json:"sel_start"`
	SelectionEnd    int     `yaml:"sel_end"         json:"sel_end"`
	Color           int     `yaml:"color"           json:"color"`
	BackgroundColor int     `yaml:"bg_color"        json:"bg_color"`
	Size            float32 `yaml:"size"            json:"size"`
	Style           int     `yaml:"style"           json:"style"`
	Hint            string  `yaml:"hint,omitempty"  json:"hint,omitempty"`
}
