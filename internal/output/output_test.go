package output

import "testing"

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"tree", "yaml", "json"} {
		f, err := ParseFormat(s)
		if err != nil {
			t.Errorf("%s: unexpected error %v", s, err)
		}
		if string(f) != s {
			t.Errorf("%s parsed as %s", s, f)
		}
	}
}

func TestParseFormatRejectsUnknown(t *testing.T) {
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := ParseFormat(""); err == nil {
		t.Error("expected error for empty format")
	}
}
