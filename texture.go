package imglfw

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
	xdraw "golang.org/x/image/draw"
)

// CreateTexture uploads img as an OpenGL texture and returns the id to
// pass to imgui.Image or imgui.ImageButton. The texture stays registered
// until DeleteTexture or Dispose releases it.
//
// Images larger than the driver's texture limit are scaled down to fit,
// preserving aspect ratio.
func (r *glRenderer) CreateTexture(img image.Image) (imgui.TextureID, error) {
	rgba := fitRGBA(toRGBA(img), int(r.maxTextureSize))

	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	uploadRGBA(rgba)
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))

	id := imgui.TextureID(handle)
	r.textures[id] = handle
	Logger().Debug("imglfw: texture registered",
		"id", uint32(handle),
		"width", rgba.Rect.Dx(), "height", rgba.Rect.Dy())
	return id, nil
}

// UpdateTexture replaces the pixel data of a registered texture. The new
// image may have different dimensions.
func (r *glRenderer) UpdateTexture(id imgui.TextureID, img image.Image) error {
	handle, ok := r.textures[id]
	if !ok {
		return ErrTextureNotFound
	}
	rgba := fitRGBA(toRGBA(img), int(r.maxTextureSize))

	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.BindTexture(gl.TEXTURE_2D, handle)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	uploadRGBA(rgba)
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	return nil
}

// DeleteTexture releases a registered texture.
func (r *glRenderer) DeleteTexture(id imgui.TextureID) error {
	handle, ok := r.textures[id]
	if !ok {
		return ErrTextureNotFound
	}
	gl.DeleteTextures(1, &handle)
	delete(r.textures, id)
	Logger().Debug("imglfw: texture released", "id", uint32(handle))
	return nil
}

func uploadRGBA(rgba *image.RGBA) {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
}

// toRGBA returns img as a tightly packed *image.RGBA with its origin at
// (0, 0), which is what TexImage2D expects. Images already in that form
// are returned as-is.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		b := rgba.Bounds()
		if b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
			return rgba
		}
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// fitRGBA scales src down so neither dimension exceeds max, preserving
// aspect ratio. Images within the limit are returned unchanged.
func fitRGBA(src *image.RGBA, max int) *image.RGBA {
	if max <= 0 {
		return src
	}
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w <= max && h <= max {
		return src
	}
	scale := float64(max) / float64(w)
	if h > w {
		scale = float64(max) / float64(h)
	}
	dw, dh := int(float64(w)*scale), int(float64(h)*scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	Logger().Debug("imglfw: texture scaled to fit",
		"from", [2]int{w, h}, "to", [2]int{dw, dh})
	return dst
}
