package engine

import (
	"image/color"
	"testing"
)

func TestImage_SetOutOfBoundsIsNoop(t *testing.T) {
	img := NewImage(4, 3)
	before := append([]byte(nil), img.Pix()...)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		img.Set(p[0], p[1], White)
	}
	for i := range before {
		if img.Pix()[i] != before[i] {
			t.Fatalf("byte %d changed by an out of bounds write", i)
		}
	}
}

func TestImage_SetAndRead(t *testing.T) {
	img := NewImage(4, 3)
	c := color.RGBA{1, 2, 3, 4}
	img.Set(3, 2, c)
	if got := img.RGBAAt(3, 2); got != c {
		t.Fatalf("RGBAAt = %v, want %v", got, c)
	}

	img.Set(0, 0, color.Gray{0x80})
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0x80, 0x80, 0x80, 0xff}) {
		t.Fatalf("gray converted to %v", got)
	}
}

func TestImage_DrawImageScaled(t *testing.T) {
	src := NewImage(2, 1)
	red := color.RGBA{0xff, 0, 0, 0xff}
	src.Set(0, 0, red)

	dst := NewImage(8, 8)
	dst.DrawImage(src, &DrawImageOptions{Scale: 3, X: 1, Y: 1})

	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			if got := dst.RGBAAt(x, y); got != red {
				t.Fatalf("(%d, %d) = %v, want %v", x, y, got, red)
			}
		}
	}
	// the second source pixel is fully transparent
	if got := dst.RGBAAt(4, 1); got != (color.RGBA{}) {
		t.Fatalf("transparent source pixel copied: %v", got)
	}
}

func TestImage_FillRectClips(t *testing.T) {
	img := NewImage(4, 4)
	img.FillRect(2, 2, 10, 10, White)
	if got := img.RGBAAt(3, 3); got != White {
		t.Fatalf("(3, 3) = %v", got)
	}
	if got := img.RGBAAt(1, 1); got == White {
		t.Fatal("pixel outside the rectangle filled")
	}
}
