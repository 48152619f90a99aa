package imglfw

import "time"

// Option configures a Bridge during creation.
// Use functional options to customize Bridge behavior.
//
// Example:
//
//	// Default: callbacks, cursors and clipboard all wired up
//	bridge, err := imglfw.New(window)
//
//	// Manual event forwarding (call bridge.KeyEvent etc. yourself)
//	bridge, err := imglfw.New(window, imglfw.WithoutCallbacks())
type Option func(*bridgeOptions)

// bridgeOptions holds optional configuration for Bridge creation.
type bridgeOptions struct {
	renderer    Renderer
	noCallbacks bool
	noCursors   bool
	noClipboard bool
	now         func() time.Time
}

// defaultOptions returns the default bridge options.
func defaultOptions() bridgeOptions {
	return bridgeOptions{
		renderer: nil, // Will be set to the OpenGL renderer if nil
		now:      time.Now,
	}
}

// WithRenderer sets a custom renderer for the Bridge.
// Use this for dependency injection of alternative or test renderers.
// A custom renderer is responsible for its own font-atlas texture.
func WithRenderer(r Renderer) Option {
	return func(o *bridgeOptions) {
		o.renderer = r
	}
}

// WithoutCallbacks disables installation of GLFW input callbacks.
// The host application must forward events manually through
// MouseMotionEvent, MouseButtonEvent, ScrollEvent, KeyEvent and CharEvent.
// Useful when the application multiplexes GLFW callbacks itself.
func WithoutCallbacks() Option {
	return func(o *bridgeOptions) {
		o.noCallbacks = true
	}
}

// WithoutCursors disables mouse-cursor shape updates. The bridge will not
// create GLFW standard cursors and will never change the window cursor.
func WithoutCursors() Option {
	return func(o *bridgeOptions) {
		o.noCursors = true
	}
}

// WithoutClipboard disables wiring the GLFW clipboard into ImGui.
// Copy/paste inside ImGui text fields will use an internal buffer only.
func WithoutClipboard() Option {
	return func(o *bridgeOptions) {
		o.noClipboard = true
	}
}

// WithClock overrides the time source used for frame delta computation.
// Intended for tests and deterministic replay.
func WithClock(now func() time.Time) Option {
	return func(o *bridgeOptions) {
		if now != nil {
			o.now = now
		}
	}
}
