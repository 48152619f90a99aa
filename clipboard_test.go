package imglfw

import "testing"

// fakeClipboardProvider stands in for the GLFW window.
type fakeClipboardProvider struct {
	content string
}

func (f *fakeClipboardProvider) GetClipboardString() string    { return f.content }
func (f *fakeClipboardProvider) SetClipboardString(str string) { f.content = str }

func TestClipboardRoundTrip(t *testing.T) {
	provider := &fakeClipboardProvider{}
	board := clipboard{provider: provider}

	board.SetText("copied from imgui")
	if provider.content != "copied from imgui" {
		t.Errorf("provider holds %q, want the pasted text", provider.content)
	}

	provider.content = "copied from the system"
	got, err := board.Text()
	if err != nil {
		t.Fatalf("Text() returned error: %v", err)
	}
	if got != "copied from the system" {
		t.Errorf("Text() = %q, want provider content", got)
	}
}

func TestClipboardEmpty(t *testing.T) {
	board := clipboard{provider: &fakeClipboardProvider{}}
	got, err := board.Text()
	if err != nil {
		t.Fatalf("Text() returned error: %v", err)
	}
	if got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}
