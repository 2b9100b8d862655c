package wire

import "fmt"

// Pooled string markers. These are wire constants; never renumber them.
const (
	markerNull    byte = 0 // absent string
	markerLiteral byte = 1 // first occurrence: index + raw bytes
	markerRef     byte = 2 // repeat occurrence: index only
)

// StringPoolWriter deduplicates strings within a single encode pass. The
// first occurrence of each distinct string is written as a literal with the
// next sequential index; repeats are written as a reference to that index.
// The empty string stands for "absent" and is written as a null marker.
//
// Indices are never stored positionally: the reader reconstructs the same
// table purely from the order literals appear, so writer and reader must
// walk the tree in the identical order.
type StringPoolWriter struct {
	w       *Writer
	indexes map[string]int32
}

// NewStringPoolWriter returns a pool writer scoped to one encode pass.
func NewStringPoolWriter(w *Writer) *StringPoolWriter {
	return &StringPoolWriter{
		w:       w,
		indexes: make(map[string]int32),
	}
}

// WriteString encodes s as a null marker, a reference, or a new literal.
func (p *StringPoolWriter) WriteString(s string) error {
	if s == "" {
		p.w.WriteMarker(markerNull)
		return nil
	}
	if idx, ok := p.indexes[s]; ok {
		p.w.WriteMarker(markerRef)
		p.w.WriteInt32(idx)
		return nil
	}
	idx := int32(len(p.indexes))
	p.indexes[s] = idx
	p.w.WriteMarker(markerLiteral)
	p.w.WriteInt32(idx)
	return p.w.WriteString(s)
}

// StringPoolReader rebuilds the writer's table incrementally while
// decoding. A reference to an index that has not been seen yet means the
// stream is truncated or foreign and fails with ErrCorruptStream.
type StringPoolReader struct {
	r     *Reader
	table []string
}

// NewStringPoolReader returns a pool reader scoped to one decode pass.
func NewStringPoolReader(r *Reader) *StringPoolReader {
	return &StringPoolReader{r: r}
}

// ReadString decodes the next pooled string. Null markers decode to "".
func (p *StringPoolReader) ReadString() (string, error) {
	m, err := p.r.ReadMarker()
	if err != nil {
		return "", err
	}
	switch m {
	case markerNull:
		return "", nil
	case markerLiteral:
		idx, err := p.r.ReadInt32()
		if err != nil {
			return "", err
		}
		if int(idx) != len(p.table) {
			return "", fmt.Errorf("literal index %d, expected %d: %w", idx, len(p.table), ErrCorruptStream)
		}
		s, err := p.r.ReadString()
		if err != nil {
			return "", err
		}
		p.table = append(p.table, s)
		return s, nil
	case markerRef:
		idx, err := p.r.ReadInt32()
		if err != nil {
			return "", err
		}
		if idx < 0 || int(idx) >= len(p.table) {
			return "", fmt.Errorf("pool reference %d with %d entries: %w", idx, len(p.table), ErrCorruptStream)
		}
		return p.table[idx], nil
	default:
		return "", fmt.Errorf("unknown string marker 0x%02x: %w", m, ErrCorruptStream)
	}
}
