package imglfw

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// Bridge connects a Dear ImGui context to a GLFW window and its OpenGL
// context. It forwards input events into ImGui and renders ImGui's draw
// data each frame.
//
// A Bridge is bound to the main thread, like the GLFW window it wraps.
type Bridge struct {
	context  *imgui.Context
	io       imgui.IO
	window   *glfw.Window
	renderer Renderer
	clock    *frameClock

	cursorsEnabled bool
	cursors        [imgui.MouseCursorCount]*glfw.Cursor

	callbacksInstalled bool
	prevCursorPos      glfw.CursorPosCallback
	prevMouseButton    glfw.MouseButtonCallback
	prevScroll         glfw.ScrollCallback
	prevKey            glfw.KeyCallback
	prevChar           glfw.CharCallback

	disposed bool
}

// New creates a Bridge for window. The window's OpenGL context must be
// current on the calling goroutine; New compiles the UI shader pipeline
// and uploads the font atlas into that context.
//
// Unless disabled by options, New also installs GLFW input callbacks
// (chaining any previously installed ones), wires the system clipboard
// and creates the standard mouse cursors.
func New(window *glfw.Window, opts ...Option) (*Bridge, error) {
	if window == nil {
		return nil, ErrNilWindow
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	setKeyMapping(io)

	b := &Bridge{
		context: context,
		io:      io,
		window:  window,
		clock:   newFrameClock(options.now),
	}

	if options.renderer != nil {
		b.renderer = options.renderer
	} else {
		renderer, err := NewOpenGLRenderer(io)
		if err != nil {
			context.Destroy()
			return nil, err
		}
		b.renderer = renderer
	}

	if !options.noClipboard {
		io.SetClipboard(clipboard{provider: window})
	}
	if !options.noCursors {
		b.cursors = createCursors()
		b.cursorsEnabled = true
		io.SetBackendFlags(imgui.BackendFlagsHasMouseCursors)
	}
	if !options.noCallbacks {
		b.installCallbacks()
	}

	Logger().Info("imglfw: bridge ready",
		"imgui", imgui.Version(), "version", Version)
	return b, nil
}

// IO returns the ImGui IO object backing this bridge, for advanced
// configuration (fonts, config flags, ini handling).
func (b *Bridge) IO() imgui.IO {
	return b.io
}

// Start refreshes the IO state (display size, delta time, mouse cursor
// shape) and begins a new UI frame. Widget calls are valid between Start
// and Finish.
func (b *Bridge) Start() {
	width, height := b.window.GetSize()
	b.io.SetDisplaySize(imgui.Vec2{X: float32(width), Y: float32(height)})
	b.io.SetDeltaTime(b.clock.Delta())
	b.updateCursor()
	imgui.NewFrame()
}

// Finish ends the UI frame and prepares its draw data for Draw.
func (b *Bridge) Finish() {
	imgui.Render()
}

// Run wraps a frame's widget code between Start and Finish.
//
//	bridge.Run(func() {
//	    imgui.Text("hello, world!")
//	})
func (b *Bridge) Run(ui func()) {
	b.Start()
	ui()
	b.Finish()
}

// Draw submits the frame's draw data through the renderer. Call it from
// the host's render pass, after Finish (or Run). The host may draw its
// own content before and after.
func (b *Bridge) Draw() error {
	if b.disposed {
		return ErrDisposed
	}
	displayWidth, displayHeight := b.window.GetSize()
	fbWidth, fbHeight := b.window.GetFramebufferSize()
	return b.renderer.Render(
		[2]float32{float32(displayWidth), float32(displayHeight)},
		[2]float32{float32(fbWidth), float32(fbHeight)},
		imgui.RenderedDrawData(),
	)
}

// HasMouseFocus reports whether ImGui wants the mouse: the cursor hovers
// an ImGui window or a widget is being dragged. The game should then skip
// its own mouse handling.
func (b *Bridge) HasMouseFocus() bool {
	return b.io.WantCaptureMouse()
}

// HasKeyboardFocus reports whether ImGui wants the keyboard, typically
// because a text field is active. The game should then skip its own
// keyboard handling.
func (b *Bridge) HasKeyboardFocus() bool {
	return b.io.WantCaptureKeyboard() || b.io.WantTextInput()
}

// HasInputFocus reports whether ImGui wants either the mouse or the
// keyboard.
func (b *Bridge) HasInputFocus() bool {
	return b.HasMouseFocus() || b.HasKeyboardFocus()
}

// CreateTexture registers an application image for use with imgui.Image.
// It returns ErrNoTextureManager if a custom renderer without texture
// support was injected.
func (b *Bridge) CreateTexture(img image.Image) (imgui.TextureID, error) {
	tm, ok := b.renderer.(TextureManager)
	if !ok {
		return 0, ErrNoTextureManager
	}
	return tm.CreateTexture(img)
}

// UpdateTexture replaces the pixels of a texture created by CreateTexture.
func (b *Bridge) UpdateTexture(id imgui.TextureID, img image.Image) error {
	tm, ok := b.renderer.(TextureManager)
	if !ok {
		return ErrNoTextureManager
	}
	return tm.UpdateTexture(id, img)
}

// DeleteTexture releases a texture created by CreateTexture.
func (b *Bridge) DeleteTexture(id imgui.TextureID) error {
	tm, ok := b.renderer.(TextureManager)
	if !ok {
		return ErrNoTextureManager
	}
	return tm.DeleteTexture(id)
}

// Dispose releases everything the bridge owns: managed textures, renderer
// objects, GLFW cursors and the ImGui context. Installed callbacks are
// restored to their previous handlers. The bridge must not be used
// afterwards.
func (b *Bridge) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true

	b.restoreCallbacks()
	if b.cursorsEnabled {
		destroyCursors(b.cursors)
		b.cursorsEnabled = false
	}
	b.renderer.Dispose()
	b.context.Destroy()
}
