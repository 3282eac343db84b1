package common

// InBounds reports whether p keeps at least dist cells from every edge of a
// sizeX by sizeY level.
func InBounds(p Point, sizeX, sizeY, dist int) bool {
	return p.X >= dist && p.Y >= dist && p.X < sizeX-dist && p.Y < sizeY-dist
}
