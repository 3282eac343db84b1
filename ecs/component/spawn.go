package component

import "github.com/jakecoffman/cp"

type SpawnKind int

const (
	SpawnEntity SpawnKind = iota
	SpawnObject
)

func (k SpawnKind) String() string {
	if k == SpawnObject {
		return "object"
	}
	return "entity"
}

// Spawned marks something created through a spawn callback.
type Spawned struct {
	Kind SpawnKind
	ID   string
}

// Decoration links a level object to its shape in the spatial index.
type Decoration struct {
	Shape *cp.Shape
}

var (
	SpawnedComponent    = NewComponent[Spawned]()
	DecorationComponent = NewComponent[Decoration]()
)
