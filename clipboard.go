package imglfw

import "github.com/inkyblackness/imgui-go/v4"

// clipboardProvider is the part of *glfw.Window the clipboard adapter
// needs. Kept as an interface so tests can substitute a fake.
type clipboardProvider interface {
	GetClipboardString() string
	SetClipboardString(str string)
}

// clipboard adapts the GLFW clipboard to imgui.Clipboard so that
// Ctrl+C/Ctrl+V in ImGui text fields reach the system clipboard.
type clipboard struct {
	provider clipboardProvider
}

var _ imgui.Clipboard = clipboard{}

func (c clipboard) Text() (string, error) {
	return c.provider.GetClipboardString(), nil
}

func (c clipboard) SetText(value string) {
	c.provider.SetClipboardString(value)
}
