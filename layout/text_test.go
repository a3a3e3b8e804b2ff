package layout

import (
	"testing"

	"github.com/snapgrid/snapgrid/model"
)

func TestReconstructTextSpacing(t *testing.T) {
	// One-character fragments of width 8 give an average char width of 8.
	// Gaps of 0, 8, and 20 pixels become 0, 1, and 2 spaces.
	fragments := []model.Fragment{
		frag(t, 0, 0, 8, 10, "a"),
		frag(t, 8, 0, 8, 10, "b"),
		frag(t, 24, 0, 8, 10, "c"),
		frag(t, 52, 0, 8, 10, "d"),
	}

	got := NewTextReconstructor().Reconstruct(fragments)
	if want := "ab c  d"; got != want {
		t.Errorf("Reconstruct = %q, want %q", got, want)
	}
}

func TestReconstructTextRows(t *testing.T) {
	fragments := []model.Fragment{
		frag(t, 0, 0, 40, 10, "first"),
		frag(t, 0, 20, 40, 10, "after"),
	}

	got := NewTextReconstructor().Reconstruct(fragments)
	if want := "first\nafter"; got != want {
		t.Errorf("Reconstruct = %q, want %q", got, want)
	}
}

func TestReconstructTextOverlapJoinsDirectly(t *testing.T) {
	// Overlapping fragments get no separator at all.
	fragments := []model.Fragment{
		frag(t, 0, 0, 40, 10, "over"),
		frag(t, 36, 0, 40, 10, "lap"),
	}

	got := NewTextReconstructor().Reconstruct(fragments)
	if want := "overlap"; got != want {
		t.Errorf("Reconstruct = %q, want %q", got, want)
	}
}

func TestReconstructTextEmpty(t *testing.T) {
	if got := NewTextReconstructor().Reconstruct(nil); got != "" {
		t.Errorf("Reconstruct(nil) = %q, want empty", got)
	}
}

func TestFixupText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comma space", "word1,word2", "word1, word2"},
		{"colon space", "mode:outputs", "mode: outputs"},
		{"semicolon space", "a;b", "a; b"},
		{"url untouched", "http://example", "http://example"},
		{"space before punct", "Hello , world", "Hello, world"},
		{"heading gets space", "###Key", "### Key"},
		{"marker artifact dropped", "# # # Value", "Value"},
		{"decimal untouched", "3.14", "3.14"},
		{"ellipsis kept together", "wait...done", "wait... done"},
		{"fullwidth folded", "ＡＢ：Ｃ", "AB: C"},
		{"genuine heading kept", "# Title", "# Title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixupText(tt.in); got != tt.want {
				t.Errorf("FixupText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReconstructTextListMarkers(t *testing.T) {
	fragments := []model.Fragment{
		frag(t, 0, 0, 40, 10, "Title"),
		frag(t, 30, 20, 40, 10, "Alpha"),
	}

	r := NewTextReconstructor()
	cfg := DefaultTextConfig()
	cfg.ListMarkers = true
	r.Configure(cfg)

	got := r.Reconstruct(fragments)
	if want := "Title\n- Alpha"; got != want {
		t.Errorf("Reconstruct = %q, want %q", got, want)
	}
}
