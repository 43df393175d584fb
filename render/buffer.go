package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one screen cell in the frame buffer
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the per-frame compositor. Renderers draw into it in priority
// order and a frame ends with a single flush to the terminal. Writes
// outside the bounds are clipped.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Bounds returns the buffer dimensions
func (b *Buffer) Bounds() (width, height int) {
	return b.width, b.height
}

// Resize adjusts the buffer dimensions and clears it
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to a blank with the default style
func (b *Buffer) Clear() {
	blank := Cell{Rune: ' ', Style: tcell.StyleDefault}
	for i := range b.cells {
		b.cells[i] = blank
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell, clipping silently when out of bounds
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetString writes a horizontal run of cells starting at (x, y), clipping
// the parts that fall outside the bounds
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
}

// Get returns the cell at (x, y); the zero Cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// FlushTo writes the buffer to the screen and shows the frame
func (b *Buffer) FlushTo(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
