package imglfw

import "errors"

// Sentinel errors for the bridge.
var (
	// ErrNilWindow is returned by New when no window is provided.
	ErrNilWindow = errors.New("imglfw: window must not be nil")

	// ErrTextureNotFound is returned when updating or deleting a texture
	// that was never registered (or was already deleted).
	ErrTextureNotFound = errors.New("imglfw: texture not registered")

	// ErrNoTextureManager is returned by the Bridge texture methods when
	// the injected renderer does not implement TextureManager.
	ErrNoTextureManager = errors.New("imglfw: renderer does not manage textures")

	// ErrDisposed is returned when a Bridge is used after Dispose.
	ErrDisposed = errors.New("imglfw: bridge already disposed")
)
