package world_test

import (
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/levelgen/common"
	"github.com/milk9111/levelgen/ecs"
	"github.com/milk9111/levelgen/ecs/component"
	"github.com/milk9111/levelgen/world"
)

func TestGridTiles(t *testing.T) {
	g := world.NewGrid()
	g.PlaceTile("ground", common.Point{X: 0, Y: 1})
	g.PlaceTile("ground", common.Point{X: 1, Y: 1})
	g.PlaceTile("water", common.Point{X: 2, Y: 1})

	assert.Equal(t, []common.Point{{X: 0, Y: 1}, {X: 1, Y: 1}}, g.QueryTilesByType("ground"))
	assert.Empty(t, g.QueryTilesByType("lava"))

	g.PlaceTile("water", common.Point{X: 0, Y: 1})
	assert.Equal(t, []common.Point{{X: 1, Y: 1}}, g.QueryTilesByType("ground"))
	assert.Equal(t, []common.Point{{X: 2, Y: 1}, {X: 0, Y: 1}}, g.QueryTilesByType("water"))

	id, ok := g.TileAt(common.Point{X: 0, Y: 1})
	require.True(t, ok)
	assert.Equal(t, "water", id)

	tiles := g.Tiles()
	require.Len(t, tiles, 3)
	assert.Equal(t, common.Point{X: 0, Y: 1}, tiles[0].Pos)
}

func TestGridQueryResultIsCopy(t *testing.T) {
	g := world.NewGrid()
	g.PlaceTile("ground", common.Point{X: 3, Y: 3})

	pts := g.QueryTilesByType("ground")
	pts[0] = common.Point{X: 9, Y: 9}

	assert.Equal(t, []common.Point{{X: 3, Y: 3}}, g.QueryTilesByType("ground"))
}

func TestGridSpawns(t *testing.T) {
	g := world.NewGrid()
	g.SpawnEntity("slime", cp.Vector{X: 1, Y: 2})
	g.SpawnObject("bush", cp.Vector{X: 4, Y: 4})
	g.SpawnEntity("bat", cp.Vector{X: 5, Y: 5})

	assert.Equal(t, []cp.Vector{{X: 1, Y: 2}, {X: 5, Y: 5}}, g.QueryEntityPositions())

	spawns := g.Spawns()
	require.Len(t, spawns, 3)
	assert.Equal(t, component.SpawnObject, spawns[1].Kind)
	assert.Equal(t, "bush", spawns[1].ID)

	tiles, entities, objects := g.Counts()
	assert.Equal(t, 0, tiles)
	assert.Equal(t, 2, entities)
	assert.Equal(t, 1, objects)
}

func TestGridLevelObjectsIn(t *testing.T) {
	g := world.NewGrid()
	inside := g.SpawnObject("bush", cp.Vector{X: 2, Y: 2})
	edge := g.SpawnObject("rock", cp.Vector{X: 4, Y: 3})
	g.SpawnObject("tree", cp.Vector{X: 4.2, Y: 2})
	g.SpawnEntity("slime", cp.Vector{X: 2, Y: 3})

	got := g.LevelObjectsIn(cp.BB{L: 0, B: 0, R: 4, T: 4})
	assert.Equal(t, []world.Handle{inside, edge}, got)

	g.RemoveLevelObject(inside)
	assert.Equal(t, []world.Handle{edge}, g.LevelObjectsIn(cp.BB{L: 0, B: 0, R: 4, T: 4}))

	_, _, objects := g.Counts()
	assert.Equal(t, 2, objects)

	// removing twice is a no-op
	g.RemoveLevelObject(inside)
	_, entities, _ := g.Counts()
	assert.Equal(t, 1, entities)
}

func TestGridRemovedObjectHandleGoesStale(t *testing.T) {
	g := world.NewGrid()
	bb := cp.BB{L: 0, B: 0, R: 4, T: 4}
	old := g.SpawnObject("bush", cp.Vector{X: 1, Y: 1})
	g.RemoveLevelObject(old)

	fresh := g.SpawnObject("rock", cp.Vector{X: 1, Y: 1})
	require.NotEqual(t, old, fresh)
	oldSlot, _, _ := strings.Cut(ecs.Entity(old).String(), ".")
	freshSlot, _, _ := strings.Cut(ecs.Entity(fresh).String(), ".")
	assert.Equal(t, oldSlot, freshSlot, "slot should be reused")

	g.RemoveLevelObject(old)
	assert.Equal(t, []world.Handle{fresh}, g.LevelObjectsIn(bb))
}

func TestGridReset(t *testing.T) {
	g := world.NewGrid()
	g.PlaceTile("ground", common.Point{})
	g.SpawnObject("bush", cp.Vector{})
	g.Reset()

	tiles, entities, objects := g.Counts()
	assert.Zero(t, tiles+entities+objects)
	assert.Empty(t, g.LevelObjectsIn(cp.BB{L: -1, B: -1, R: 1, T: 1}))
}
