package model

// Scratch is the one reusable staging buffer a capture pass hands to each
// live element so it can report text, hint and extras. It is owned
// exclusively by the in-progress capture: the traversal fills it, detaches
// what was written into fresh immutable storage, then resets it in place
// for the next element. It must never escape a capture pass.
type Scratch struct {
	text     string
	hasText  bool
	selStart int
	selEnd   int
	color    int
	bgColor  int
	size     float32
	style    int
	hint     string
	hasHint  bool
	extras   map[string]any
}

// NewScratch returns a scratch buffer in its reset state.
func NewScratch() *Scratch {
	s := &Scratch{extras: make(map[string]any)}
	s.Reset()
	return s
}

// SetText records the element's text and clears any selection.
func (s *Scratch) SetText(text string) {
	s.text = text
	s.hasText = true
	s.selStart = -1
	s.selEnd = -1
}

// SetTextWithSelection records the element's text and selection range.
func (s *Scratch) SetTextWithSelection(text string, start, end int) {
	s.text = text
	s.hasText = true
	s.selStart = start
	s.selEnd = end
}

// SetTextAppearance records colors, size and the style bitmask.
func (s *Scratch) SetTextAppearance(color, bgColor int, size float32, style int) {
	s.color = color
	s.bgColor = bgColor
	s.size = size
	s.style = style
}

// SetHint records the element's hint text.
func (s *Scratch) SetHint(hint string) {
	s.hint = hint
	s.hasHint = true
}

// PutExtra records one extension attribute. Numeric values are normalized
// to float64 so captured extras compare equal to decoded ones.
func (s *Scratch) PutExtra(key string, value any) {
	s.extras[key] = normalizeExtra(value)
}

func normalizeExtra(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case float32:
		return float64(t)
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = normalizeExtra(e)
		}
		return m
	case []any:
		l := make([]any, len(t))
		for i, e := range t {
			l[i] = normalizeExtra(e)
		}
		return l
	default:
		return v
	}
}

// DetachText deep-copies the staged text state into a fresh TextBlock, or
// returns nil if the element set neither text nor hint. The scratch keeps
// no reference to the returned block.
func (s *Scratch) DetachText() *TextBlock {
	if !s.hasText && !s.hasHint {
		return nil
	}
	return &TextBlock{
		Text:            s.text,
		SelectionStart:  s.selStart,
		SelectionEnd:    s.selEnd,
		Color:           s.color,
		BackgroundColor: s.bgColor,
		Size:            s.size,
		Style:           s.style,
		Hint:            s.hint,
	}
}

// DetachExtras deep-copies the staged extras, or returns nil when none
// were written. The returned map shares nothing with the scratch.
func (s *Scratch) DetachExtras() map[string]any {
	if len(s.extras) == 0 {
		return nil
	}
	out := make(map[string]any, len(s.extras))
	for k, v := range s.extras {
		out[k] = copyExtra(v)
	}
	return out
}

func copyExtra(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = copyExtra(e)
		}
		return m
	case []any:
		l := make([]any, len(t))
		for i, e := range t {
			l[i] = copyExtra(e)
		}
		return l
	default:
		return v
	}
}

// Reset clears the scratch in place so it can be reused for the next
// element. The extras map is emptied, not reallocated.
func (s *Scratch) Reset() {
	s.text = ""
	s.hasText = false
	s.selStart = -1
	s.selEnd = -1
	s.color = TextColorUndefined
	s.bgColor = TextColorUndefined
	s.size = 0
	s.style = 0
	s.hint = ""
	s.hasHint = false
	clear(s.extras)
}
