package desktop

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

func TestFade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}

	if got := fade(c, 1); got != c {
		t.Errorf("fade(1) = %v, expected unchanged", got)
	}
	if got := fade(c, 0.5); got != (color.RGBA{100, 50, 25, 128}) {
		t.Errorf("fade(0.5) = %v", got)
	}
	if got := fade(c, 0); got != (color.RGBA{}) {
		t.Errorf("fade(0) = %v, expected transparent", got)
	}
}

func TestTextAlign(t *testing.T) {
	tests := []struct {
		in       core.Align
		expected text.Align
	}{
		{core.AlignLeft, text.AlignStart},
		{core.AlignCenter, text.AlignCenter},
		{core.AlignRight, text.AlignEnd},
	}
	for _, tt := range tests {
		if got := textAlign(tt.in); got != tt.expected {
			t.Errorf("textAlign(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestBindingsDoNotOverlap(t *testing.T) {
	seen := map[string]core.Action{}
	for _, group := range [][]binding{heldBindings, pressBindings} {
		for _, b := range group {
			for _, k := range b.keys {
				if prev, ok := seen[k.String()]; ok {
					t.Errorf("key %s bound to both %v and %v", k, prev, b.action)
				}
				seen[k.String()] = b.action
			}
		}
	}
}
