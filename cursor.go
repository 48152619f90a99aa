package imglfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// cursorShapes maps ImGui cursor kinds to GLFW standard cursor shapes.
// GLFW 3.3 ships no diagonal-resize or all-directions shapes, so those
// fall back to the arrow, as the C backend does.
var cursorShapes = [imgui.MouseCursorCount]glfw.StandardCursor{
	imgui.MouseCursorArrow:      glfw.ArrowCursor,
	imgui.MouseCursorTextInput:  glfw.IBeamCursor,
	imgui.MouseCursorResizeAll:  glfw.ArrowCursor,
	imgui.MouseCursorResizeNS:   glfw.VResizeCursor,
	imgui.MouseCursorResizeEW:   glfw.HResizeCursor,
	imgui.MouseCursorResizeNESW: glfw.ArrowCursor,
	imgui.MouseCursorResizeNWSE: glfw.ArrowCursor,
	imgui.MouseCursorHand:       glfw.HandCursor,
}

// createCursors instantiates one GLFW cursor per ImGui cursor kind.
// Must run after glfw.Init.
func createCursors() [imgui.MouseCursorCount]*glfw.Cursor {
	var cursors [imgui.MouseCursorCount]*glfw.Cursor
	for kind, shape := range cursorShapes {
		cursors[kind] = glfw.CreateStandardCursor(shape)
	}
	return cursors
}

// updateCursor applies the cursor shape ImGui requested for this frame.
func (b *Bridge) updateCursor() {
	if !b.cursorsEnabled {
		return
	}
	kind := imgui.MouseCursor()
	if kind == imgui.MouseCursorNone {
		b.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		return
	}
	if kind < 0 || kind >= imgui.MouseCursorCount {
		kind = imgui.MouseCursorArrow
	}
	b.window.SetCursor(b.cursors[kind])
	b.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

// destroyCursors releases the GLFW cursors created at init.
func destroyCursors(cursors [imgui.MouseCursorCount]*glfw.Cursor) {
	for _, c := range cursors {
		if c != nil {
			c.Destroy()
		}
	}
}
