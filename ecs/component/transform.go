package component

import "github.com/jakecoffman/cp"

// Transform is a position in grid units.
type Transform struct {
	X float64
	Y float64
}

func (t Transform) Vector() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

var TransformComponent = NewComponent[Transform]()
