package imglfw

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

func TestCursorShapesCoverAllKinds(t *testing.T) {
	// Every ImGui cursor kind must resolve to some GLFW shape; a zero
	// entry would make CreateStandardCursor fail at init.
	for kind, shape := range cursorShapes {
		if shape == 0 {
			t.Errorf("cursor kind %d has no GLFW shape", kind)
		}
	}
}

func TestCursorShapesExpectedMappings(t *testing.T) {
	cases := []struct {
		kind  imgui.MouseCursorID
		shape glfw.StandardCursor
	}{
		{imgui.MouseCursorArrow, glfw.ArrowCursor},
		{imgui.MouseCursorTextInput, glfw.IBeamCursor},
		{imgui.MouseCursorResizeNS, glfw.VResizeCursor},
		{imgui.MouseCursorResizeEW, glfw.HResizeCursor},
		{imgui.MouseCursorHand, glfw.HandCursor},
	}
	for _, c := range cases {
		if cursorShapes[c.kind] != c.shape {
			t.Errorf("cursor kind %d maps to %d, want %d", c.kind, cursorShapes[c.kind], c.shape)
		}
	}
}
