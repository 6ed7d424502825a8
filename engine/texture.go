package engine

import (
	"image"
	"image/color"
	"math"
)

// White is the default transparency key of billboard sprites.
var White = color.RGBA{255, 255, 255, 255}

// Texture is an immutable row-major pixel grid. A keyed texture treats every
// pixel equal to its key color as transparent.
type Texture struct {
	width, height int
	pix           []color.RGBA
	key           color.RGBA
	keyed         bool
}

// NewTexture copies img into an opaque texture.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	t := &Texture{
		width:  b.Dx(),
		height: b.Dy(),
		pix:    make([]color.RGBA, b.Dx()*b.Dy()),
	}
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			t.pix[y*t.width+x] = color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
		}
	}
	return t
}

// NewKeyedTexture copies img into a texture whose pixels equal to key are
// skipped when composited.
func NewKeyedTexture(img image.Image, key color.RGBA) *Texture {
	t := NewTexture(img)
	t.key = key
	t.keyed = true
	return t
}

// NewTextureFromPixels wraps pix, which must hold width*height pixels.
func NewTextureFromPixels(width, height int, pix []color.RGBA) *Texture {
	return &Texture{width: width, height: height, pix: pix}
}

func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

// Key returns the transparency key and whether the texture has one.
func (t *Texture) Key() (color.RGBA, bool) {
	return t.key, t.keyed
}

func (t *Texture) IsTransparent(c color.RGBA) bool {
	return t.keyed && c == t.key
}

// Pixel returns the texel at (x, y) with both indices clamped to the image.
func (t *Texture) Pixel(x, y int) color.RGBA {
	if len(t.pix) == 0 {
		return color.RGBA{}
	}
	x = clampInt(x, 0, t.width-1)
	y = clampInt(y, 0, t.height-1)
	return t.pix[y*t.width+x]
}

// Sample maps normalized coordinates onto the nearest texel.
func (t *Texture) Sample(u, v float64) color.RGBA {
	return t.Pixel(int(math.Floor(u*float64(t.width))), int(math.Floor(v*float64(t.height))))
}

// TextureSet resolves the wall texture for a cell symbol.
type TextureSet struct {
	bySymbol map[Symbol]*Texture
	fallback *Texture
}

func NewTextureSet(fallback *Texture) *TextureSet {
	return &TextureSet{
		bySymbol: make(map[Symbol]*Texture),
		fallback: fallback,
	}
}

// Assign binds a texture to a wall symbol. It is meant for load time only.
func (ts *TextureSet) Assign(s Symbol, t *Texture) {
	ts.bySymbol[s] = t
}

// For returns the texture of s, or the fallback.
func (ts *TextureSet) For(s Symbol) *Texture {
	if t, ok := ts.bySymbol[s]; ok {
		return t
	}
	return ts.fallback
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
