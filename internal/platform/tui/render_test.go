package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/starfield-pong/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "AB", core.ColorYellow)
	s.SetColored(5, 1, '●', core.ColorDim)
	s.Set(9, 2, 'z')

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, want := range []string{"AB", "●", "z"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output should contain %q", want)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorRed; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
