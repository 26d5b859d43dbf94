package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a character grid addressed in sub-pixel coordinates.
// A canvas of Width x Height cells exposes (Width*2) x (Height*4) pixels.
type Canvas struct {
	Width, Height int
	grid          [][]rune
	overlay       map[[2]int]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:   w,
		Height:  h,
		grid:    make([][]rune, h),
		overlay: make(map[[2]int]rune),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	return c
}

// PixelSize returns the canvas dimensions in sub-pixels.
func (c *Canvas) PixelSize() (int, int) {
	return c.Width * 2, c.Height * 4
}

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Unset clears a pixel.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] &^= rune(pixelMap[y%4][x%2])
}

// Label places a text rune at cell coordinates, drawn over any Braille
// content in String. Used for body markers and names.
func (c *Canvas) Label(col, row int, text string) {
	for i, r := range text {
		x := col + i
		if x < 0 || row < 0 || x >= c.Width || row >= c.Height {
			continue
		}
		c.overlay[[2]int{x, row}] = r
	}
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	for k := range c.overlay {
		delete(c.overlay, k)
	}
}

// DrawLine draws a line in sub-pixel space using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the canvas, overlay runes taking precedence over Braille.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			if r, ok := c.overlay[[2]int{col, row}]; ok {
				b.WriteRune(r)
				continue
			}
			b.WriteRune(c.grid[row][col])
		}
		if row < c.Height-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
