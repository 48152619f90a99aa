package imglfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// keysDownCount is the capacity of ImGui's KeysDown array. GLFW key codes
// (<= glfw.KeyLast) fit well below it, so raw key codes index directly.
const keysDownCount = 512

// namedKeys binds ImGui's named key indices to their GLFW key codes.
// ImGui consults these for text-field navigation and the standard
// clipboard/undo shortcuts; every other key is delivered by raw code only.
var namedKeys = map[int]glfw.Key{
	imgui.KeyTab:         glfw.KeyTab,
	imgui.KeyLeftArrow:   glfw.KeyLeft,
	imgui.KeyRightArrow:  glfw.KeyRight,
	imgui.KeyUpArrow:     glfw.KeyUp,
	imgui.KeyDownArrow:   glfw.KeyDown,
	imgui.KeyPageUp:      glfw.KeyPageUp,
	imgui.KeyPageDown:    glfw.KeyPageDown,
	imgui.KeyHome:        glfw.KeyHome,
	imgui.KeyEnd:         glfw.KeyEnd,
	imgui.KeyInsert:      glfw.KeyInsert,
	imgui.KeyDelete:      glfw.KeyDelete,
	imgui.KeyBackspace:   glfw.KeyBackspace,
	imgui.KeySpace:       glfw.KeySpace,
	imgui.KeyEnter:       glfw.KeyEnter,
	imgui.KeyEscape:      glfw.KeyEscape,
	imgui.KeyKeyPadEnter: glfw.KeyKPEnter,
	imgui.KeyA:           glfw.KeyA,
	imgui.KeyC:           glfw.KeyC,
	imgui.KeyV:           glfw.KeyV,
	imgui.KeyX:           glfw.KeyX,
	imgui.KeyY:           glfw.KeyY,
	imgui.KeyZ:           glfw.KeyZ,
}

// setKeyMapping registers the named-key bindings with ImGui.
func setKeyMapping(io imgui.IO) {
	for imguiKey, nativeKey := range namedKeys {
		io.KeyMap(imguiKey, int(nativeKey))
	}
}

// validKey reports whether a GLFW key code can be tracked in KeysDown.
// GLFW reports KeyUnknown (-1) for keys without a code.
func validKey(key glfw.Key) bool {
	return key >= 0 && int(key) < keysDownCount
}

// mouseButtonIndex translates a GLFW mouse button into an ImGui button
// index. Buttons beyond the three ImGui cares about are ignored, matching
// how unknown buttons are dropped rather than guessed at.
func mouseButtonIndex(button glfw.MouseButton) (int, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return 0, true
	case glfw.MouseButtonRight:
		return 1, true
	case glfw.MouseButtonMiddle:
		return 2, true
	default:
		return 0, false
	}
}

// isPrivateUseRune reports whether r falls in the Unicode private use
// area. Some platforms emit private-use runes for non-character function
// keys; those must not reach ImGui's text input.
func isPrivateUseRune(r rune) bool {
	return r >= 0xE000 && r <= 0xF8FF
}
