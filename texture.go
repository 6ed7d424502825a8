package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"math"
	"path"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"

	"maze3d/engine"
	"maze3d/logger"
)

const proceduralSize = 64

// TextureStore holds the decoded wall textures and the goal sprite.
type TextureStore struct {
	Walls *engine.TextureSet
	Goal  *engine.Texture
}

// LoadTextures reads the wall and goal images from fsys. Every image that is
// missing or unreadable is replaced by a generated one.
func LoadTextures(fsys fs.FS) *TextureStore {
	fallback := engine.NewTexture(loadOr(fsys, "wall", stripes))
	walls := engine.NewTextureSet(fallback)
	walls.Assign('+', engine.NewTexture(loadOr(fsys, "wall_plus", bricks)))
	walls.Assign('-', engine.NewTexture(loadOr(fsys, "wall_dash", panels)))

	return &TextureStore{
		Walls: walls,
		Goal:  engine.NewKeyedTexture(loadOr(fsys, "goal", goalDisc), engine.White),
	}
}

func loadOr(fsys fs.FS, name string, generate func(size int) image.Image) image.Image {
	if fsys != nil {
		img, err := loadImage(fsys, name)
		if err == nil {
			logger.Log.WithField("texture", name).Debug("texture loaded")
			return img
		}
		logger.Log.WithFields(logrus.Fields{
			"texture": name,
			"error":   err,
		}).Warn("using generated texture")
	}
	return generate(proceduralSize)
}

// loadImage tries name.bmp, then name.png.
func loadImage(fsys fs.FS, name string) (image.Image, error) {
	var firstErr error
	for _, file := range []string{name + ".bmp", name + ".png"} {
		img, err := decodeFile(fsys, file)
		if err == nil {
			return img, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func decodeFile(fsys fs.FS, file string) (image.Image, error) {
	f, err := fsys.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var img image.Image
	switch path.Ext(file) {
	case ".bmp":
		img, err = bmp.Decode(f)
	case ".png":
		img, err = png.Decode(f)
	default:
		err = fmt.Errorf("unsupported image format %q", path.Ext(file))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", file, err)
	}
	return img, nil
}

func bricks(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	mortar := color.RGBA{0xc8, 0xc0, 0xb0, 0xff}
	brick := color.RGBA{0x9a, 0x3b, 0x2a, 0xff}
	rowH := size / 4
	for y := 0; y < size; y++ {
		offset := 0
		if (y/rowH)%2 == 1 {
			offset = size / 4
		}
		for x := 0; x < size; x++ {
			c := brick
			if y%rowH == 0 || (x+offset)%(size/2) == 0 {
				c = mortar
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func panels(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := uint8(0x50 + 0x30*((x/(size/4))%2))
			if x%(size/4) == 0 || y == 0 || y == size-1 {
				v = 0x30
			}
			img.SetRGBA(x, y, color.RGBA{v, v, v + 0x18, 0xff})
		}
	}
	return img
}

func stripes(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{0x3a, 0x5a, 0x40, 0xff}
			if ((x+y)/(size/8))%2 == 0 {
				c = color.RGBA{0x4c, 0x74, 0x52, 0xff}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// goalDisc draws a gold disc on the white transparency key.
func goalDisc(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r)
			switch {
			case d < r*0.55:
				img.SetRGBA(x, y, color.RGBA{0xff, 0xd7, 0x00, 0xff})
			case d < r*0.9:
				img.SetRGBA(x, y, color.RGBA{0xe0, 0x9a, 0x10, 0xff})
			default:
				img.SetRGBA(x, y, engine.White)
			}
		}
	}
	return img
}
