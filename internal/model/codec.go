package model

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/HullComputing/uisnap/internal/wire"
)

// Errors surfaced by Encode and DecodeSnapshot. Re-exported from the wire
// package so callers need not import it.
var (
	ErrCorruptStream    = wire.ErrCorruptStream
	ErrEncodingOverflow = wire.ErrEncodingOverflow
)

// extrasJSON must sort map keys: encoding the same tree twice has to yield
// byte-identical streams.
var extrasJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Minimum encoded footprints, used to reject counts that could not
// possibly fit in the remaining bytes. An element is at least its id,
// six geometry ints, flags, two 1-byte pooled strings, hasText, the
// extras length and the child count; a window adds its rectangle and a
// 1-byte pooled title.
const (
	minElementBytes = 4 + 6*4 + 4 + 1 + 1 + 4 + 4 + 4
	minWindowBytes  = 4*4 + 1 + minElementBytes
)

// Encode flattens the snapshot to its binary stream form. One string pool
// spans the whole pass, so every distinct string is written once.
// A Snapshot must not be encoded by two goroutines concurrently with the
// same writer; Encode itself allocates everything per call and is safe to
// invoke from any goroutine.
func (s *Snapshot) Encode() ([]byte, error) {
	w := wire.NewWriter()
	pw := wire.NewStringPoolWriter(w)
	if err := pw.WriteString(s.Component); err != nil {
		return nil, err
	}
	w.WriteInt32(int32(len(s.Windows)))
	for i := range s.Windows {
		if err := encodeWindow(&s.Windows[i], w, pw); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

func encodeWindow(win *WindowNode, w *wire.Writer, pw *wire.StringPoolWriter) error {
	w.WriteInt32(int32(win.X))
	w.WriteInt32(int32(win.Y))
	w.WriteInt32(int32(win.Width))
	w.WriteInt32(int32(win.Height))
	if err := pw.WriteString(win.Title); err != nil {
		return err
	}
	return encodeElement(&win.Root, w, pw)
}

func encodeElement(n *ElementNode, w *wire.Writer, pw *wire.StringPoolWriter) error {
	w.WriteInt32(n.ID)
	if n.ID != 0 {
		if err := pw.WriteString(n.IDEntry); err != nil {
			return err
		}
		// Type and package ride on entry presence: the triple is
		// all-or-nothing.
		if n.IDEntry != "" {
			if err := pw.WriteString(n.IDType); err != nil {
				return err
			}
			if err := pw.WriteString(n.IDPackage); err != nil {
				return err
			}
		}
	}
	w.WriteInt32(int32(n.Geometry.X))
	w.WriteInt32(int32(n.Geometry.Y))
	w.WriteInt32(int32(n.Geometry.ScrollX))
	w.WriteInt32(int32(n.Geometry.ScrollY))
	w.WriteInt32(int32(n.Geometry.Width))
	w.WriteInt32(int32(n.Geometry.Height))
	w.WriteInt32(n.Flags)
	if err := pw.WriteString(n.ClassName); err != nil {
		return err
	}
	if err := pw.WriteString(n.ContentDescription); err != nil {
		return err
	}
	if n.Text != nil {
		w.WriteInt32(1)
		if err := encodeTextBlock(n.Text, w, pw); err != nil {
			return err
		}
	} else {
		w.WriteInt32(0)
	}
	if err := encodeExtras(n.Extras, w); err != nil {
		return err
	}
	w.WriteInt32(int32(len(n.Children)))
	for i := range n.Children {
		if err := encodeElement(&n.Children[i], w, pw); err != nil {
			return err
		}
	}
	return nil
}

func encodeTextBlock(t *TextBlock, w *wire.Writer, pw *wire.StringPoolWriter) error {
	if err := pw.WriteString(t.Text); err != nil {
		return err
	}
	w.WriteInt32(int32(t.SelectionStart))
	w.WriteInt32(int32(t.SelectionEnd))
	w.WriteInt32(int32(t.Color))
	w.WriteInt32(int32(t.BackgroundColor))
	w.WriteFloat32(t.Size)
	w.WriteInt32(int32(t.Style))
	return pw.WriteString(t.Hint)
}

// encodeExtras writes the opaque sub-mapping as a length-prefixed JSON
// document, or -1 when absent.
func encodeExtras(extras map[string]any, w *wire.Writer) error {
	if extras == nil {
		w.WriteInt32(-1)
		return nil
	}
	blob, err := extrasJSON.Marshal(extras)
	if err != nil {
		return fmt.Errorf("marshal extras: %w", err)
	}
	return w.WriteBlob(blob)
}

// DecodeSnapshot reconstructs a snapshot from its stream form. It mirrors
// Encode step for step with one pool reader threaded through the whole
// walk; any deviation from the expected shape fails with ErrCorruptStream
// and no partial snapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	r := wire.NewReader(data)
	pr := wire.NewStringPoolReader(r)
	component, err := pr.ReadString()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 || int(count) > r.Remaining()/minWindowBytes {
		return nil, fmt.Errorf("window count %d with %d bytes left: %w", count, r.Remaining(), ErrCorruptStream)
	}
	s := &Snapshot{Component: component}
	if count > 0 {
		s.Windows = make([]WindowNode, 0, count)
	}
	for i := int32(0); i < count; i++ {
		win, err := decodeWindow(r, pr)
		if err != nil {
			return nil, err
		}
		s.Windows = append(s.Windows, win)
	}
	return s, nil
}

func decodeWindow(r *wire.Reader, pr *wire.StringPoolReader) (WindowNode, error) {
	var win WindowNode
	vals := make([]int32, 4)
	for i := range vals {
		v, err := r.ReadInt32()
		if err != nil {
			return win, err
		}
		vals[i] = v
	}
	win.X, win.Y, win.Width, win.Height = int(vals[0]), int(vals[1]), int(vals[2]), int(vals[3])
	title, err := pr.ReadString()
	if err != nil {
		return win, err
	}
	win.Title = title
	root, err := decodeElement(r, pr)
	if err != nil {
		return win, err
	}
	win.Root = root
	return win, nil
}

func decodeElement(r *wire.Reader, pr *wire.StringPoolReader) (ElementNode, error) {
	var n ElementNode
	id, err := r.ReadInt32()
	if err != nil {
		return n, err
	}
	n.ID = id
	if id != 0 {
		if n.IDEntry, err = pr.ReadString(); err != nil {
			return n, err
		}
		if n.IDEntry != "" {
			if n.IDType, err = pr.ReadString(); err != nil {
				return n, err
			}
			if n.IDPackage, err = pr.ReadString(); err != nil {
				return n, err
			}
		}
	}
	geom := make([]int32, 6)
	for i := range geom {
		v, err := r.ReadInt32()
		if err != nil {
			return n, err
		}
		geom[i] = v
	}
	n.Geometry = Geometry{
		X:       int(geom[0]),
		Y:       int(geom[1]),
		ScrollX: int(geom[2]),
		ScrollY: int(geom[3]),
		Width:   int(geom[4]),
		Height:  int(geom[5]),
	}
	if n.Flags, err = r.ReadInt32(); err != nil {
		return n, err
	}
	if n.ClassName, err = pr.ReadString(); err != nil {
		return n, err
	}
	if n.ContentDescription, err = pr.ReadString(); err != nil {
		return n, err
	}
	hasText, err := r.ReadInt32()
	if err != nil {
		return n, err
	}
	if hasText != 0 {
		t, err := decodeTextBlock(r, pr)
		if err != nil {
			return n, err
		}
		n.Text = t
	}
	if n.Extras, err = decodeExtras(r); err != nil {
		return n, err
	}
	count, err := r.ReadInt32()
	if err != nil {
		return n, err
	}
	if count < 0 || int(count) > r.Remaining()/minElementBytes {
		return n, fmt.Errorf("child count %d with %d bytes left: %w", count, r.Remaining(), ErrCorruptStream)
	}
	if count > 0 {
		n.Children = make([]ElementNode, 0, count)
		for i := int32(0); i < count; i++ {
			child, err := decodeElement(r, pr)
			if err != nil {
				return n, err
			}
			n.Children = append(n.Children, child)
		}
	}
	return n, nil
}

func decodeTextBlock(r *wire.Reader, pr *wire.StringPoolReader) (*TextBlock, error) {
	var t TextBlock
	var err error
	if t.Text, err = pr.ReadString(); err != nil {
		return nil, err
	}
	ints := make([]int32, 4)
	for i := range ints {
		v, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}
		ints[i] = v
	}
	t.SelectionStart = int(ints[0])
	t.SelectionEnd = int(ints[1])
	t.Color = int(ints[2])
	t.BackgroundColor = int(ints[3])
	if t.Size, err = r.ReadFloat32(); err != nil {
		return nil, err
	}
	style, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	t.Style = int(style)
	if t.Hint, err = pr.ReadString(); err != nil {
		return nil, err
	}
	return &t, nil
}

func decodeExtras(r *wire.Reader) (map[string]any, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return nil, nil
	}
	if n < 0 || int(n) > r.Remaining() {
		return nil, fmt.Errorf("extras length %d with %d bytes left: %w", n, r.Remaining(), ErrCorruptStream)
	}
	blob, err := r.ReadBytes(int(n))
	if err != nil {
		return nil, err
	}
	extras := make(map[string]any)
	if err := extrasJSON.Unmarshal(blob, &extras); err != nil {
		return nil, fmt.Errorf("unmarshal extras: %v: %w", err, ErrCorruptStream)
	}
	return extras, nil
}
