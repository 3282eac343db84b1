package common

import "github.com/jakecoffman/cp"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

func (p Point) Vector() cp.Vector {
	return cp.Vector{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Rect is an axis-aligned rectangle in grid units. X,Y is the minimum corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

func NewRect(min Point, width, height int) Rect {
	return Rect{X: min.X, Y: min.Y, Width: width, Height: height}
}

func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Rect) Max() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Intersects is an open-interval overlap test: rectangles that only share an
// edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// BB converts the rectangle to a chipmunk bounding box.
func (r Rect) BB() cp.BB {
	return cp.BB{
		L: float64(r.X),
		B: float64(r.Y),
		R: float64(r.X + r.Width),
		T: float64(r.Y + r.Height),
	}
}

// Contains reports whether v lies inside r, edges included.
func (r Rect) Contains(v cp.Vector) bool {
	return r.BB().ContainsVect(v)
}

// ContainsPoint is Contains for grid points.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.Vector())
}
