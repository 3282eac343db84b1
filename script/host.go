package script

import "context"

// LevelParam names one of the reserved level-size variables.
type LevelParam int

const (
	LevelSizeX LevelParam = iota
	LevelSizeY
	LevelBoundsDist
)

var levelParams = map[string]LevelParam{
	"LEVEL_SIZE_X":      LevelSizeX,
	"LEVEL_SIZE_Y":      LevelSizeY,
	"LEVEL_BOUNDS_DIST": LevelBoundsDist,
}

func (p LevelParam) String() string {
	switch p {
	case LevelSizeX:
		return "LEVEL_SIZE_X"
	case LevelSizeY:
		return "LEVEL_SIZE_Y"
	case LevelBoundsDist:
		return "LEVEL_BOUNDS_DIST"
	}
	return "LEVEL_PARAM"
}

// Host receives the side effects of a script run. Errors returned by a Host
// are recoverable: the interpreter logs them and moves on to the next line.
type Host interface {
	SetLevelParam(p LevelParam, value int)
	PlaceTile(tileID string, x, y int)
	SpawnEntity(entityID string, x, y int)
	SpawnObject(objectID string, x, y int)
	SpawnRandomEntity(entityID, spawnTileID string, minBoundsDist int) error
	PlaceStructure(ctx context.Context, structureID string, minBoundsDist int) error
}
