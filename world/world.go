// Package world defines the level collaborator that generated content is
// written to, and an in-memory implementation of it.
package world

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/levelgen/common"
)

//go:generate mockgen -destination=mock/mock_world.go -package=worldmock github.com/milk9111/levelgen/world World

// Handle identifies a spawned entity or level object.
type Handle uint64

// World is the level being generated. Calls are synchronous; failures are
// the implementation's concern.
type World interface {
	// PlaceTile sets the tile at pos, replacing any tile already there.
	PlaceTile(tileID string, pos common.Point)
	SpawnEntity(entityID string, pos cp.Vector) Handle
	// SpawnObject spawns a decorative level object.
	SpawnObject(objectID string, pos cp.Vector) Handle
	// QueryTilesByType returns the positions holding tileID in placement order.
	QueryTilesByType(tileID string) []common.Point
	QueryEntityPositions() []cp.Vector
	// LevelObjectsIn returns the level objects whose position lies inside bb,
	// edges included.
	LevelObjectsIn(bb cp.BB) []Handle
	RemoveLevelObject(h Handle)
}
