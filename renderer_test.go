package imglfw

import (
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
)

func TestClipScissorInside(t *testing.T) {
	x, y, w, h, ok := clipScissor(imgui.Vec4{X: 10, Y: 20, Z: 110, W: 70}, 800, 600)
	if !ok {
		t.Fatal("rectangle inside the framebuffer should be kept")
	}
	if x != 10 || w != 100 || h != 50 {
		t.Errorf("got x=%d w=%d h=%d, want x=10 w=100 h=50", x, w, h)
	}
	// GL scissor origin is bottom-left: y = fbHeight - clip.W.
	if y != 600-70 {
		t.Errorf("got y=%d, want %d", y, 600-70)
	}
}

func TestClipScissorClamped(t *testing.T) {
	// Extends past every edge; must be clamped to the framebuffer.
	x, y, w, h, ok := clipScissor(imgui.Vec4{X: -50, Y: -50, Z: 900, W: 700}, 800, 600)
	if !ok {
		t.Fatal("overlapping rectangle should be kept")
	}
	if x != 0 || y != 0 || w != 800 || h != 600 {
		t.Errorf("got x=%d y=%d w=%d h=%d, want full framebuffer", x, y, w, h)
	}
}

func TestClipScissorOutside(t *testing.T) {
	cases := []struct {
		name string
		clip imgui.Vec4
	}{
		{"right of framebuffer", imgui.Vec4{X: 800, Y: 0, Z: 900, W: 100}},
		{"below framebuffer", imgui.Vec4{X: 0, Y: 600, Z: 100, W: 700}},
		{"zero width", imgui.Vec4{X: 10, Y: 10, Z: 10, W: 50}},
		{"zero height", imgui.Vec4{X: 10, Y: 10, Z: 50, W: 10}},
		{"inverted", imgui.Vec4{X: 50, Y: 50, Z: 10, W: 10}},
		{"entirely negative", imgui.Vec4{X: -100, Y: -100, Z: -10, W: -10}},
	}
	for _, c := range cases {
		if _, _, _, _, ok := clipScissor(c.clip, 800, 600); ok {
			t.Errorf("%s: degenerate rectangle should be skipped", c.name)
		}
	}
}

func TestOrthoProjection(t *testing.T) {
	m := orthoProjection(800, 600)

	// Display (0,0) — ImGui's top-left — must land at clip (-1, +1).
	x := m[0][0]*0 + m[3][0]
	y := m[1][1]*0 + m[3][1]
	if x != -1 || y != 1 {
		t.Errorf("top-left maps to (%v, %v), want (-1, 1)", x, y)
	}

	// Display (800,600) — bottom-right — must land at clip (+1, -1).
	x = m[0][0]*800 + m[3][0]
	y = m[1][1]*600 + m[3][1]
	if x != 1 || y != -1 {
		t.Errorf("bottom-right maps to (%v, %v), want (1, -1)", x, y)
	}
}
