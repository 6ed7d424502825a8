package engine

import (
	"image/color"
	"testing"
)

func TestPlaceBillboard_ClipsAtScreenEdge(t *testing.T) {
	bb := PlaceBillboard(200, 100, 100, 11, 32)

	if bb.OriginX != -45 || bb.OriginY != -95 {
		t.Errorf("origin = (%d, %d), want (-45, -95)", bb.OriginX, bb.OriginY)
	}
	if bb.Size != 290 {
		t.Errorf("Size = %d, want 290", bb.Size)
	}
	if bb.StartX != 0 || bb.StartY != 0 {
		t.Errorf("start = (%d, %d), want (0, 0)", bb.StartX, bb.StartY)
	}
	if bb.EndX != 199 || bb.EndY != 99 {
		t.Errorf("end = (%d, %d), want (199, 99)", bb.EndX, bb.EndY)
	}
}

func TestPlaceBillboard_InsideScreen(t *testing.T) {
	bb := PlaceBillboard(200, 100, 100, 100, 20)
	if bb.StartX != 90 || bb.EndX != 110 || bb.StartY != 40 || bb.EndY != 60 {
		t.Fatalf("bounds = %+v", bb)
	}
	if bb.Empty() {
		t.Fatal("visible billboard reported empty")
	}
}

func TestPlaceBillboard_OddSizeCoversEveryTexel(t *testing.T) {
	bb := PlaceBillboard(100, 100, 50, 100, 5)
	if bb.Size != 5 {
		t.Fatalf("Size = %d, want 5", bb.Size)
	}
	if w, h := bb.EndX-bb.StartX, bb.EndY-bb.StartY; w != 5 || h != 5 {
		t.Fatalf("drawn area = %dx%d, want 5x5", w, h)
	}

	pix := make([]color.RGBA, 5)
	for i := range pix {
		pix[i] = color.RGBA{uint8(10 * (i + 1)), 0, 0, 0xff}
	}
	dst := NewImage(100, 100)
	DrawBillboard(dst, bb, NewTextureFromPixels(5, 1, pix))

	seen := map[color.RGBA]bool{}
	for x := bb.StartX; x < bb.EndX; x++ {
		seen[dst.RGBAAt(x, bb.StartY)] = true
	}
	for i, c := range pix {
		if !seen[c] {
			t.Errorf("texel %d never drawn", i)
		}
	}
}

func TestPlaceBillboard_Degenerate(t *testing.T) {
	for _, d := range []float64{0, -3} {
		if bb := PlaceBillboard(200, 100, 50, d, 32); !bb.Empty() {
			t.Errorf("distance %v: %+v, want empty", d, bb)
		}
	}
	if bb := PlaceBillboard(200, 100, 500, 50, 32); !bb.Empty() {
		t.Errorf("anchor off screen: %+v, want empty", bb)
	}
}

func TestDrawBillboard_SkipsTransparentPixels(t *testing.T) {
	green := color.RGBA{0, 0xff, 0, 0xff}
	sprite := NewKeyedTexture(imageOf(2, 2, []color.RGBA{White, green, green, White}), White)

	dst := NewImage(10, 10)
	gray := color.RGBA{9, 9, 9, 0xff}
	dst.Fill(gray)

	bb := Billboard{OriginX: 2, OriginY: 2, Size: 4, StartX: 2, EndX: 6, StartY: 2, EndY: 6}
	DrawBillboard(dst, bb, sprite)

	if got := dst.RGBAAt(2, 2); got != gray {
		t.Errorf("transparent texel drawn: %v", got)
	}
	if got := dst.RGBAAt(5, 2); got != green {
		t.Errorf("top-right = %v, want %v", got, green)
	}
	if got := dst.RGBAAt(2, 5); got != green {
		t.Errorf("bottom-left = %v, want %v", got, green)
	}
	if got := dst.RGBAAt(6, 6); got != gray {
		t.Errorf("pixel past the exclusive end drawn: %v", got)
	}
}

func TestDrawBillboard_NilSprite(t *testing.T) {
	dst := NewImage(4, 4)
	DrawBillboard(dst, Billboard{Size: 4, EndX: 3, EndY: 3}, nil)
	if got := dst.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Fatalf("nil sprite drew %v", got)
	}
}
