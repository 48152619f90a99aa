// Package imglfw integrates Dear ImGui with GLFW and OpenGL.
//
// # Overview
//
// imglfw is a thin bridge between the imgui-go bindings for Dear ImGui and
// a GLFW window with an OpenGL 3.3 core context. It forwards GLFW input
// events (mouse, keyboard, text, scroll) into ImGui and submits ImGui's
// per-frame draw data through the window's OpenGL context. The bridge owns
// no UI state of its own: widgets live in Dear ImGui, the window and
// graphics context live in GLFW/OpenGL.
//
// # Quick Start
//
//	window, _ := glfw.CreateWindow(800, 600, "hello", nil, nil)
//	window.MakeContextCurrent()
//
//	bridge, err := imglfw.New(window)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bridge.Dispose()
//
//	for !window.ShouldClose() {
//	    glfw.PollEvents()
//
//	    bridge.Run(func() {
//	        imgui.Text("hello, world!")
//	    })
//
//	    gl.Clear(gl.COLOR_BUFFER_BIT)
//	    // draw some stuff before the UI?
//	    bridge.Draw()
//	    // ... draw some stuff after the UI!
//	    window.SwapBuffers()
//	}
//
// # Game Input
//
// When ImGui is hovering a widget or editing text, the corresponding input
// should usually not reach the game. Query HasMouseFocus and
// HasKeyboardFocus each frame to decide, or rely on the installed callback
// chain: imglfw only forwards button/key/char events to previously
// installed GLFW callbacks when ImGui did not sink them. Cursor motion is
// always forwarded.
//
// # Compatibility
//
// Each minor release pins the upstream pair it was developed against.
// Other combinations may work but are not covered by the bundled examples.
//
//	imglfw   imgui-go         glfw binding
//	0.3.x    v4.7.0           v3.3 (go-gl/glfw)
//	0.2.x    v4.5.0 - v4.6.x  v3.3 (go-gl/glfw)
//	0.1.x    v4.4.0           v3.3 (go-gl/glfw)
//
// The OpenGL renderer targets a 3.3 core profile context
// (go-gl/gl/v3.3-core).
//
// # Threading
//
// GLFW event processing and OpenGL calls must happen on the main thread.
// Lock it with runtime.LockOSThread before glfw.Init, as the examples do.
// All Bridge methods assume they run on that thread.
package imglfw

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
