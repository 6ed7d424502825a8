package engine

import (
	"image"
	"image/color"
)

// Surface is the pixel-writing target of the renderer. Set must ignore
// coordinates outside Bounds.
type Surface interface {
	Set(x, y int, c color.Color)
	Bounds() image.Rectangle
}

// Image is a CPU-side RGBA framebuffer. Its pixel layout matches what
// ebiten.Image.WritePixels expects.
type Image struct {
	pixels []byte
	width  int
	height int
}

func NewImage(width, height int) *Image {
	return &Image{
		pixels: make([]byte, width*height*4),
		width:  width,
		height: height,
	}
}

// Set writes c at (x, y). Out of range writes are dropped.
func (img *Image) Set(x, y int, c color.Color) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	index := (y*img.width + x) * 4
	if rgba, ok := c.(color.RGBA); ok {
		img.pixels[index] = rgba.R
		img.pixels[index+1] = rgba.G
		img.pixels[index+2] = rgba.B
		img.pixels[index+3] = rgba.A
		return
	}
	r, g, b, a := c.RGBA()
	img.pixels[index] = byte(r >> 8)
	img.pixels[index+1] = byte(g >> 8)
	img.pixels[index+2] = byte(b >> 8)
	img.pixels[index+3] = byte(a >> 8)
}

// RGBAAt returns the pixel at (x, y), or transparent black out of range.
func (img *Image) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return color.RGBA{}
	}
	index := (y*img.width + x) * 4
	return color.RGBA{img.pixels[index], img.pixels[index+1], img.pixels[index+2], img.pixels[index+3]}
}

func (img *Image) At(x, y int) color.Color {
	return img.RGBAAt(x, y)
}

func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// Pix exposes the backing RGBA bytes for upload to the display.
func (img *Image) Pix() []byte {
	return img.pixels
}

func (img *Image) Fill(c color.Color) {
	r, g, b, a := c.RGBA()
	px := [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)}
	for i := 0; i < len(img.pixels); i += 4 {
		copy(img.pixels[i:i+4], px[:])
	}
}

// DrawImageOptions places a source image on the destination with an integer
// nearest-neighbour scale.
type DrawImageOptions struct {
	Scale int
	X, Y  int
}

// DrawImage copies src onto img. Fully transparent source pixels are skipped,
// everything else overwrites the destination.
func (img *Image) DrawImage(src *Image, op *DrawImageOptions) {
	if op == nil {
		op = &DrawImageOptions{}
	}
	scale := op.Scale
	if scale < 1 {
		scale = 1
	}

	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			srcIndex := (sy*src.width + sx) * 4
			if src.pixels[srcIndex+3] == 0 {
				continue
			}
			c := color.RGBA{src.pixels[srcIndex], src.pixels[srcIndex+1], src.pixels[srcIndex+2], src.pixels[srcIndex+3]}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.Set(op.X+sx*scale+dx, op.Y+sy*scale+dy, c)
				}
			}
		}
	}
}

// FillRect fills the w×h rectangle at (x, y), clipped to the image.
func (img *Image) FillRect(x, y, w, h int, c color.Color) {
	for dy := y; dy < y+h; dy++ {
		for dx := x; dx < x+w; dx++ {
			img.Set(dx, dy, c)
		}
	}
}
