package imglfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// installCallbacks hooks the bridge into the window's input callbacks.
// Previously installed callbacks keep working: motion events are always
// chained, button/scroll/key/char events only when ImGui did not sink
// them.
func (b *Bridge) installCallbacks() {
	b.prevCursorPos = b.window.SetCursorPosCallback(b.cursorPosChange)
	b.prevMouseButton = b.window.SetMouseButtonCallback(b.mouseButtonChange)
	b.prevScroll = b.window.SetScrollCallback(b.scrollChange)
	b.prevKey = b.window.SetKeyCallback(b.keyChange)
	b.prevChar = b.window.SetCharCallback(b.charChange)
	b.callbacksInstalled = true
	Logger().Debug("imglfw: input callbacks installed")
}

// restoreCallbacks puts the previously installed callbacks back.
func (b *Bridge) restoreCallbacks() {
	if !b.callbacksInstalled {
		return
	}
	b.window.SetCursorPosCallback(b.prevCursorPos)
	b.window.SetMouseButtonCallback(b.prevMouseButton)
	b.window.SetScrollCallback(b.prevScroll)
	b.window.SetKeyCallback(b.prevKey)
	b.window.SetCharCallback(b.prevChar)
	b.callbacksInstalled = false
}

func (b *Bridge) cursorPosChange(w *glfw.Window, x, y float64) {
	b.MouseMotionEvent(float32(x), float32(y))
	if b.prevCursorPos != nil {
		b.prevCursorPos(w, x, y)
	}
}

func (b *Bridge) mouseButtonChange(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b.MouseButtonEvent(button, action)
	if b.prevMouseButton != nil && !b.HasMouseFocus() {
		b.prevMouseButton(w, button, action, mods)
	}
}

func (b *Bridge) scrollChange(w *glfw.Window, x, y float64) {
	b.ScrollEvent(float32(x), float32(y))
	if b.prevScroll != nil && !b.HasMouseFocus() {
		b.prevScroll(w, x, y)
	}
}

func (b *Bridge) keyChange(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	b.KeyEvent(key, action)
	if b.prevKey != nil && !b.HasKeyboardFocus() {
		b.prevKey(w, key, scancode, action, mods)
	}
}

func (b *Bridge) charChange(w *glfw.Window, char rune) {
	b.CharEvent(char)
	if b.prevChar != nil && !b.HasKeyboardFocus() {
		b.prevChar(w, char)
	}
}

// MouseMotionEvent reports a cursor position in window coordinates.
// Only needed with WithoutCallbacks; otherwise the installed callback
// calls it.
func (b *Bridge) MouseMotionEvent(x, y float32) {
	b.io.SetMousePosition(imgui.Vec2{X: x, Y: y})
}

// MouseButtonEvent reports a mouse button press or release. Buttons
// beyond left/right/middle are ignored.
func (b *Bridge) MouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	index, known := mouseButtonIndex(button)
	if !known {
		return
	}
	switch action {
	case glfw.Press:
		b.io.SetMouseButtonDown(index, true)
	case glfw.Release:
		b.io.SetMouseButtonDown(index, false)
	}
}

// ScrollEvent reports scroll wheel movement.
func (b *Bridge) ScrollEvent(x, y float32) {
	b.io.AddMouseWheelDelta(x, y)
}

// KeyEvent reports a key press or release and refreshes the modifier
// state. Repeat actions are delivered as presses.
func (b *Bridge) KeyEvent(key glfw.Key, action glfw.Action) {
	if validKey(key) {
		switch action {
		case glfw.Press, glfw.Repeat:
			b.io.KeyPress(int(key))
		case glfw.Release:
			b.io.KeyRelease(int(key))
		}
	}
	// Modifier flags are derived from key state rather than the callback
	// mods argument, which is stale on some platforms.
	b.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	b.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	b.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	b.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

// CharEvent reports a typed character. Runes in the Unicode private use
// area are dropped; some platforms emit them for function keys.
func (b *Bridge) CharEvent(char rune) {
	if isPrivateUseRune(char) {
		return
	}
	b.io.AddInputCharacters(string(char))
}
