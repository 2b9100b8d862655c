package model

import "testing"

func TestPackFlagsVisibility(t *testing.T) {
	for _, vis := range []Visibility{VisibilityVisible, VisibilityInvisible, VisibilityGone} {
		flags := PackFlags(vis, Attributes{})
		got, _ := UnpackFlags(flags)
		if got != vis {
			t.Errorf("visibility %v: unpacked %v", vis, got)
		}
	}
}

func TestPackFlagsInvertedConvention(t *testing.T) {
	// The eight non-checkable bits are set when the attribute is FALSE.
	flags := PackFlags(VisibilityVisible, Attributes{})
	for _, tc := range []struct {
		name string
		bit  int32
	}{
		{"disabled", flagDisabled},
		{"focusable", flagFocusable},
		{"focused", flagFocused},
		{"accessibility-focused", flagAccessibilityFocused},
		{"selected", flagSelected},
		{"activated", flagActivated},
		{"clickable", flagClickable},
		{"long-clickable", flagLongClickable},
	} {
		if flags&tc.bit == 0 {
			t.Errorf("%s: bit not set for false attribute", tc.name)
		}
	}
	// CHECKABLE and CHECKED are direct.
	if flags&flagCheckable != 0 {
		t.Error("checkable bit set for false attribute")
	}
	if flags&flagChecked != 0 {
		t.Error("checked bit set for false attribute")
	}

	flags = PackFlags(VisibilityVisible, Attributes{
		Disabled:             true,
		Focusable:            true,
		Focused:              true,
		AccessibilityFocused: true,
		Selected:             true,
		Activated:            true,
		Clickable:            true,
		LongClickable:        true,
		Checkable:            true,
		Checked:              true,
	})
	if flags&^(flagCheckable|flagChecked) != 0 {
		t.Errorf("inverted bits still set for true attributes: %#x", flags)
	}
	if flags&flagCheckable == 0 || flags&flagChecked == 0 {
		t.Error("checkable/checked bits not set for true attributes")
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []Attributes{
		{},
		{Disabled: true},
		{Focusable: true, Focused: true},
		{Checkable: true},
		{Checkable: true, Checked: true},
		{Clickable: true, LongClickable: true, Selected: true},
		{Disabled: true, Focusable: true, Focused: true, AccessibilityFocused: true,
			Selected: true, Activated: true, Checkable: true, Checked: true,
			Clickable: true, LongClickable: true},
	}
	for i, a := range cases {
		for _, vis := range []Visibility{VisibilityVisible, VisibilityInvisible, VisibilityGone} {
			gotVis, gotAttrs := UnpackFlags(PackFlags(vis, a))
			if gotVis != vis {
				t.Errorf("case %d: visibility %v became %v", i, vis, gotVis)
			}
			if gotAttrs != a {
				t.Errorf("case %d: attributes %+v became %+v", i, a, gotAttrs)
			}
		}
	}
}

func TestUnpackFlagsIgnoresUnknownBits(t *testing.T) {
	known := PackFlags(VisibilityInvisible, Attributes{Checked: true, Checkable: true})
	withUnknown := known | 0x00080000 | 0x2
	vis, attrs := UnpackFlags(withUnknown)
	wantVis, wantAttrs := UnpackFlags(known)
	if vis != wantVis || attrs != wantAttrs {
		t.Errorf("unknown bits changed the projection: %v %+v", vis, attrs)
	}
}

func TestInvalidCombinationPermitted(t *testing.T) {
	// Checked without checkable is the producer's problem, not the codec's.
	_, attrs := UnpackFlags(flagChecked | flagDisabled)
	if !attrs.Checked || attrs.Checkable {
		t.Errorf("expected checked=true checkable=false, got %+v", attrs)
	}
}

func TestVisibilityString(t *testing.T) {
	cases := map[Visibility]string{
		VisibilityVisible:   "visible",
		VisibilityInvisible: "invisible",
		VisibilityGone:      "gone",
		Visibility(99):      "unknown",
	}
	for vis, want := range cases {
		if got := vis.String(); got != want {
			t.Errorf("%d: expected %s, got %s", vis, want, got)
		}
	}
}
