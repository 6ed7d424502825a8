package main

import (
	"testing"

	"maze3d/engine"
)

func TestDrawBlocks(t *testing.T) {
	grid, err := engine.NewGrid([]string{"+-|", " g "}, 8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	dst := engine.NewImage(24, 16)
	drawBlocks(dst, grid, 8)

	tests := []struct {
		name string
		x, y int
		want [4]uint8
	}{
		{"plus wall", 4, 4, [4]uint8{0x6e, 0x2a, 0x1e, 0xff}},
		{"dash wall", 12, 4, [4]uint8{0x32, 0x32, 0x48, 0xff}},
		{"other wall", 20, 4, [4]uint8{0x32, 0x32, 0x32, 0xff}},
		{"open", 4, 12, [4]uint8{0x8c, 0x8c, 0x8c, 0xff}},
		{"goal center", 12, 12, [4]uint8{0xff, 0xd7, 0x00, 0xff}},
		{"goal rim", 8, 8, [4]uint8{0x8c, 0x8c, 0x8c, 0xff}},
	}
	for _, tt := range tests {
		c := dst.RGBAAt(tt.x, tt.y)
		if got := [4]uint8{c.R, c.G, c.B, c.A}; got != tt.want {
			t.Errorf("%s: %v, want %v", tt.name, got, tt.want)
		}
	}
}
