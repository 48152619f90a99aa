package imglfw

import (
	"image"
	"image/color"
	"testing"
)

func TestToRGBAPassthrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if got := toRGBA(src); got != src {
		t.Error("tightly packed RGBA should be returned unchanged")
	}
}

func TestToRGBAFromNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})

	got := toRGBA(src)
	if got.Rect != image.Rect(0, 0, 2, 1) {
		t.Fatalf("unexpected bounds %v", got.Rect)
	}
	if c := got.RGBAAt(0, 0); c.R != 255 || c.A != 255 {
		t.Errorf("pixel (0,0) = %v, want opaque red", c)
	}
	if c := got.RGBAAt(1, 0); c.G != 255 || c.A != 255 {
		t.Errorf("pixel (1,0) = %v, want opaque green", c)
	}
}

func TestToRGBANormalizesOrigin(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 8, 8))
	base.SetRGBA(5, 5, color.RGBA{B: 255, A: 255})
	sub := base.SubImage(image.Rect(4, 4, 8, 8)).(*image.RGBA)

	got := toRGBA(sub)
	if got == sub {
		t.Fatal("subimage must be repacked, not returned as-is")
	}
	if got.Rect.Min != (image.Point{}) {
		t.Fatalf("origin not normalized: %v", got.Rect)
	}
	if got.Rect.Dx() != 4 || got.Rect.Dy() != 4 {
		t.Fatalf("unexpected size %v", got.Rect)
	}
	if c := got.RGBAAt(1, 1); c.B != 255 {
		t.Errorf("pixel content lost in repack: %v", c)
	}
}

func TestFitRGBAWithinLimit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 32))
	if got := fitRGBA(src, 64); got != src {
		t.Error("image within the limit should be returned unchanged")
	}
	if got := fitRGBA(src, 0); got != src {
		t.Error("non-positive limit disables fitting")
	}
}

func TestFitRGBADownscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	got := fitRGBA(src, 50)
	if got.Rect.Dx() != 50 {
		t.Errorf("width = %d, want 50", got.Rect.Dx())
	}
	if got.Rect.Dy() != 25 {
		t.Errorf("height = %d, want 25 (aspect preserved)", got.Rect.Dy())
	}

	// Portrait orientation scales by height instead.
	tall := image.NewRGBA(image.Rect(0, 0, 100, 200))
	got = fitRGBA(tall, 50)
	if got.Rect.Dx() != 25 || got.Rect.Dy() != 50 {
		t.Errorf("got %dx%d, want 25x50", got.Rect.Dx(), got.Rect.Dy())
	}
}
