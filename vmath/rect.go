package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y          float32
	Width, Height float32
}

func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Intersects reports strict overlap, rectangles sharing only an edge do not intersect
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Centre returns the midpoint of the rectangle
func (r Rect) Centre() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Bottom returns the y coordinate of the lower edge
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float32 {
	return r.X + r.Width
}
