package wire

import (
	"bytes"
	"errors"
	"testing"
)

func poolRoundTrip(t *testing.T, values []string) []string {
	t.Helper()
	w := NewWriter()
	pw := NewStringPoolWriter(w)
	for _, v := range values {
		if err := pw.WriteString(v); err != nil {
			t.Fatalf("write %q failed: %v", v, err)
		}
	}
	pr := NewStringPoolReader(NewReader(w.Bytes()))
	out := make([]string, 0, len(values))
	for range values {
		s, err := pr.ReadString()
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		out = append(out, s)
	}
	return out
}

func TestPoolRoundTrip(t *testing.T) {
	values := []string{"Button", "Label", "Button", "", "Button", "Label"}
	got := poolRoundTrip(t, values)
	for i, want := range values {
		if got[i] != want {
			t.Errorf("value %d: expected %q, got %q", i, want, got[i])
		}
	}
}

func TestPoolRepeatWritesSingleLiteral(t *testing.T) {
	w := NewWriter()
	pw := NewStringPoolWriter(w)
	pw.WriteString("Button")
	firstLen := w.Len()
	pw.WriteString("Button")
	refLen := w.Len() - firstLen

	// Literal: marker + index + length prefix + bytes. Reference: marker + index.
	if firstLen != 1+4+4+len("Button") {
		t.Errorf("unexpected literal size %d", firstLen)
	}
	if refLen != 1+4 {
		t.Errorf("unexpected reference size %d", refLen)
	}
	if bytes.Contains(w.Bytes()[firstLen:], []byte("Button")) {
		t.Error("literal bytes re-emitted for repeat occurrence")
	}
}

func TestPoolNullMarkerIsOneByte(t *testing.T) {
	w := NewWriter()
	pw := NewStringPoolWriter(w)
	pw.WriteString("")
	if w.Len() != 1 {
		t.Errorf("expected 1 byte for null marker, got %d", w.Len())
	}
}

func TestPoolIndicesAssignedInFirstSeenOrder(t *testing.T) {
	w := NewWriter()
	pw := NewStringPoolWriter(w)
	for _, v := range []string{"a", "b", "a", "c"} {
		pw.WriteString(v)
	}
	pr := NewStringPoolReader(NewReader(w.Bytes()))
	for _, want := range []string{"a", "b", "a", "c"} {
		got, err := pr.ReadString()
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
	if len(pr.table) != 3 {
		t.Errorf("expected 3 distinct entries, got %d", len(pr.table))
	}
}

func TestPoolDeterministicBytes(t *testing.T) {
	encode := func() []byte {
		w := NewWriter()
		pw := NewStringPoolWriter(w)
		for _, v := range []string{"x", "y", "x", "", "z", "y"} {
			pw.WriteString(v)
		}
		return w.Bytes()
	}
	if !bytes.Equal(encode(), encode()) {
		t.Error("same inputs produced different bytes")
	}
}

func TestPoolForwardReferenceIsCorrupt(t *testing.T) {
	w := NewWriter()
	w.WriteMarker(markerRef)
	w.WriteInt32(0)
	pr := NewStringPoolReader(NewReader(w.Bytes()))
	if _, err := pr.ReadString(); !errors.Is(err, ErrCorruptStream) {
		t.Errorf("expected ErrCorruptStream, got %v", err)
	}
}

func TestPoolNegativeReferenceIsCorrupt(t *testing.T) {
	w := NewWriter()
	pw := NewStringPoolWriter(w)
	pw.WriteString("a")
	w.WriteMarker(markerRef)
	w.WriteInt32(-1)
	pr := NewStringPoolReader(NewReader(w.Bytes()))
	if _, err := pr.ReadString(); err != nil {
		t.Fatalf("literal read failed: %v", err)
	}
	if _, err := pr.ReadString(); !errors.Is(err, ErrCorruptStream) {
		t.Errorf("expected ErrCorruptStream, got %v", err)
	}
}

func TestPoolLiteralIndexMismatchIsCorrupt(t *testing.T) {
	w := NewWriter()
	w.WriteMarker(markerLiteral)
	w.WriteInt32(7) // first literal must carry index 0
	w.WriteString("a")
	pr := NewStringPoolReader(NewReader(w.Bytes()))
	if _, err := pr.ReadString(); !errors.Is(err, ErrCorruptStream) {
		t.Errorf("expected ErrCorruptStream, got %v", err)
	}
}

func TestPoolUnknownMarkerIsCorrupt(t *testing.T) {
	pr := NewStringPoolReader(NewReader([]byte{0xee}))
	if _, err := pr.ReadString(); !errors.Is(err, ErrCorruptStream) {
		t.Errorf("expected ErrCorruptStream, got %v", err)
	}
}

func TestPoolTruncatedLiteralIsCorrupt(t *testing.T) {
	w := NewWriter()
	pw := NewStringPoolWriter(w)
	pw.WriteString("hello world")
	data := w.Bytes()[:len(w.Bytes())-4]
	pr := NewStringPoolReader(NewReader(data))
	if _, err := pr.ReadString(); !errors.Is(err, ErrCorruptStream) {
		t.Errorf("expected ErrCorruptStream, got %v", err)
	}
}
