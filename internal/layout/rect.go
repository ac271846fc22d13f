package layout

// Rect represents a rectangle with integer coordinates.
// Y and X are the top-left corner; Height and Width are dimensions.
type Rect struct {
	Y, X          int
	Height, Width int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(y, x, height, width int) Rect {
	return Rect{Y: y, X: x, Height: height, Width: width}
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains returns true if the point (y, x) is inside the rectangle.
// Points on the top and left edges are inside; points on the bottom and right edges are outside.
func (r Rect) Contains(y, x int) bool {
	return y >= r.Y && y < r.Bottom() && x >= r.X && x < r.Right()
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.Y >= r.Y && other.X >= r.X &&
		other.Bottom() <= r.Bottom() && other.Right() <= r.Right()
}

// Translate returns a new Rect moved by (dy, dx).
func (r Rect) Translate(dy, dx int) Rect {
	return Rect{Y: r.Y + dy, X: r.X + dx, Height: r.Height, Width: r.Width}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	y := max(r.Y, other.Y)
	x := max(r.X, other.X)
	bottom := min(r.Bottom(), other.Bottom())
	right := min(r.Right(), other.Right())

	if bottom-y <= 0 || right-x <= 0 {
		return Rect{}
	}
	return Rect{Y: y, X: x, Height: bottom - y, Width: right - x}
}

// Inset returns a new Rect shrunk by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{Y: r.Y + n, X: r.X + n, Height: r.Height - 2*n, Width: r.Width - 2*n}
}
