package main

import "testing"

func TestDecodeFragmentsRect(t *testing.T) {
	data := []byte(`[
		{"box": [10, 5, 60, 25], "text": "Part#", "confidence": 0.98},
		{"box": [110, 5, 160, 25], "text": "Value", "confidence": 0.91}
	]`)

	fragments, err := decodeFragments(data)
	if err != nil {
		t.Fatalf("decodeFragments() error = %v", err)
	}
	if len(fragments) != 2 {
		t.Fatalf("got %d fragments, want 2", len(fragments))
	}
	if fragments[0].Text != "Part#" {
		t.Errorf("Text = %q, want %q", fragments[0].Text, "Part#")
	}
	if got := fragments[0].BBox.Width; got != 50 {
		t.Errorf("Width = %v, want 50", got)
	}
	if fragments[1].Confidence != 0.91 {
		t.Errorf("Confidence = %v, want 0.91", fragments[1].Confidence)
	}
}

func TestDecodeFragmentsPolygon(t *testing.T) {
	data := []byte(`[
		{"box": [[10, 5], [60, 5], [60, 25], [10, 25]], "text": "C1001", "confidence": 0.95}
	]`)

	fragments, err := decodeFragments(data)
	if err != nil {
		t.Fatalf("decodeFragments() error = %v", err)
	}
	if len(fragments) != 1 {
		t.Fatalf("got %d fragments, want 1", len(fragments))
	}
	f := fragments[0]
	if f.BBox.X != 10 || f.BBox.Y != 5 || f.BBox.Width != 50 || f.BBox.Height != 20 {
		t.Errorf("BBox = %+v, want {10 5 50 20}", f.BBox)
	}
}

func TestDecodeFragmentsBadBox(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"box is string", `[{"box": "10,5,60,25", "text": "x", "confidence": 1}]`},
		{"too few points", `[{"box": [[10, 5]], "text": "x", "confidence": 1}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decodeFragments([]byte(tc.data)); err == nil {
				t.Error("decodeFragments() error = nil, want non-nil")
			}
		})
	}
}
