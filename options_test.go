package imglfw

import (
	"testing"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
)

// mockRenderer is a test renderer for DI testing.
type mockRenderer struct {
	renderCalled  bool
	disposeCalled bool
}

func (m *mockRenderer) Render(_, _ [2]float32, _ imgui.DrawData) error {
	m.renderCalled = true
	return nil
}

func (m *mockRenderer) Dispose() {
	m.disposeCalled = true
}

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.renderer != nil {
		t.Error("default renderer should be nil (OpenGL chosen at New)")
	}
	if o.noCallbacks || o.noCursors || o.noClipboard {
		t.Error("callbacks, cursors and clipboard should be enabled by default")
	}
	if o.now == nil {
		t.Fatal("default clock missing")
	}
}

func TestWithRenderer(t *testing.T) {
	mock := &mockRenderer{}
	o := defaultOptions()
	WithRenderer(mock)(&o)
	if o.renderer != Renderer(mock) {
		t.Error("WithRenderer did not set the renderer")
	}
}

func TestDisableOptions(t *testing.T) {
	o := defaultOptions()
	WithoutCallbacks()(&o)
	WithoutCursors()(&o)
	WithoutClipboard()(&o)
	if !o.noCallbacks || !o.noCursors || !o.noClipboard {
		t.Error("disable options not applied")
	}
}

func TestWithClock(t *testing.T) {
	fixed := time.Unix(42, 0)
	o := defaultOptions()
	WithClock(func() time.Time { return fixed })(&o)
	if got := o.now(); !got.Equal(fixed) {
		t.Errorf("clock returned %v, want %v", got, fixed)
	}

	// nil keeps the previous source instead of breaking the bridge.
	WithClock(nil)(&o)
	if o.now == nil {
		t.Error("WithClock(nil) must not clear the clock")
	}
}
