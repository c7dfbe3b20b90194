package render

import (
	"image/color"
	"math"

	"github.com/lixenwraith/pong/asset"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/vmath"
)

// Canvas is a subpixel grid backing the terminal renderer
// Each terminal cell holds two vertically stacked subpixels
type Canvas struct {
	pix    []color.RGBA
	width  int // subpixel columns == cell columns
	height int // subpixel rows == 2 * cell rows
}

// NewCanvas creates a canvas for a terminal of cols x rows cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	size := cols * rows * 2
	if cap(c.pix) < size {
		c.pix = make([]color.RGBA, size)
	} else {
		c.pix = c.pix[:size]
	}
	c.width = cols
	c.height = rows * 2
}

// Bounds returns subpixel dimensions
func (c *Canvas) Bounds() (width, height int) {
	return c.width, c.height
}

// Fill sets every subpixel using exponential copy
func (c *Canvas) Fill(col color.RGBA) {
	if len(c.pix) == 0 {
		return
	}
	c.pix[0] = col
	for filled := 1; filled < len(c.pix); filled *= 2 {
		copy(c.pix[filled:], c.pix[:filled])
	}
}

// At returns the subpixel at (x, y), zero color when out of range
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return color.RGBA{}
	}
	return c.pix[y*c.width+x]
}

// Cell returns the upper and lower subpixel of terminal cell (x, y)
func (c *Canvas) Cell(x, y int) (top, bottom color.RGBA) {
	return c.At(x, y*2), c.At(x, y*2+1)
}

// Blit paints tex at playfield position pos, scaled by sx, sy subpixels per pixel
// Sampling is nearest-neighbour at subpixel centres, low-alpha texels are skipped
func (c *Canvas) Blit(tex *asset.Texture, pos vmath.Vec2, sx, sy float32) {
	if sx <= 0 || sy <= 0 {
		return
	}
	w := float32(tex.Width())
	h := float32(tex.Height())

	x0 := int(math.Floor(float64(pos.X * sx)))
	y0 := int(math.Floor(float64(pos.Y * sy)))
	x1 := int(math.Ceil(float64((pos.X + w) * sx)))
	y1 := int(math.Ceil(float64((pos.Y + h) * sy)))

	// Small sprites keep at least one subpixel
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = clampSpan(x0, x1, c.width)
	y0, y1 = clampSpan(y0, y1, c.height)

	for py := y0; py < y1; py++ {
		ty := int((float32(py)+0.5)/sy - pos.Y)
		row := py * c.width
		for px := x0; px < x1; px++ {
			tx := int((float32(px)+0.5)/sx - pos.X)
			texel := tex.At(tx, ty)
			if texel.A < constant.AlphaThreshold {
				continue
			}
			c.pix[row+px] = color.RGBA{R: texel.R, G: texel.G, B: texel.B, A: 255}
		}
	}
}

func clampSpan(lo, hi, limit int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
