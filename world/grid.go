package world

import (
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/levelgen/common"
	"github.com/milk9111/levelgen/ecs"
	"github.com/milk9111/levelgen/ecs/component"
)

// objectRadius is the size of a level object in the spatial index. Queries
// filter on the exact position afterwards.
const objectRadius = 0.25

// Tile is one placed tile.
type Tile struct {
	Pos common.Point
	ID  string
}

// Spawn is one spawned entity or level object.
type Spawn struct {
	Handle Handle
	Kind   component.SpawnKind
	ID     string
	Pos    cp.Vector
}

// Grid is an in-memory World. Entities and objects live in an ECS world;
// objects are also indexed in a chipmunk space for rectangle queries.
type Grid struct {
	tiles  map[common.Point]string
	byType map[string][]common.Point

	entities *ecs.World
	space    *cp.Space
}

var _ World = (*Grid)(nil)

func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

// Reset empties the grid.
func (g *Grid) Reset() {
	g.tiles = make(map[common.Point]string)
	g.byType = make(map[string][]common.Point)
	g.entities = ecs.NewWorld()
	g.space = cp.NewSpace()
}

func (g *Grid) PlaceTile(tileID string, pos common.Point) {
	if prev, ok := g.tiles[pos]; ok {
		if prev == tileID {
			return
		}
		g.byType[prev] = removePoint(g.byType[prev], pos)
	}
	g.tiles[pos] = tileID
	g.byType[tileID] = append(g.byType[tileID], pos)
}

func (g *Grid) TileAt(pos common.Point) (string, bool) {
	id, ok := g.tiles[pos]
	return id, ok
}

func (g *Grid) SpawnEntity(entityID string, pos cp.Vector) Handle {
	e := g.spawn(component.SpawnEntity, entityID, pos)
	return Handle(e)
}

func (g *Grid) SpawnObject(objectID string, pos cp.Vector) Handle {
	e := g.spawn(component.SpawnObject, objectID, pos)

	shape := cp.NewCircle(g.space.StaticBody, objectRadius, pos)
	shape.UserData = Handle(e)
	g.space.AddShape(shape)
	_ = ecs.Add(g.entities, e, component.DecorationComponent.Kind(), component.Decoration{Shape: shape})
	return Handle(e)
}

func (g *Grid) spawn(kind component.SpawnKind, id string, pos cp.Vector) ecs.Entity {
	e := g.entities.CreateEntity()
	_ = ecs.Add(g.entities, e, component.SpawnedComponent.Kind(), component.Spawned{Kind: kind, ID: id})
	_ = ecs.Add(g.entities, e, component.TransformComponent.Kind(), component.Transform{X: pos.X, Y: pos.Y})
	return e
}

func (g *Grid) QueryTilesByType(tileID string) []common.Point {
	src := g.byType[tileID]
	out := make([]common.Point, len(src))
	copy(out, src)
	return out
}

func (g *Grid) QueryEntityPositions() []cp.Vector {
	var out []cp.Vector
	for _, s := range g.Spawns() {
		if s.Kind == component.SpawnEntity {
			out = append(out, s.Pos)
		}
	}
	return out
}

func (g *Grid) LevelObjectsIn(bb cp.BB) []Handle {
	var out []Handle
	g.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		h, ok := shape.UserData.(Handle)
		if !ok {
			return
		}
		tf, ok := ecs.Get(g.entities, ecs.Entity(h), component.TransformComponent.Kind())
		if ok && bb.ContainsVect(tf.Vector()) {
			out = append(out, h)
		}
	}, nil)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (g *Grid) RemoveLevelObject(h Handle) {
	e := ecs.Entity(h)
	deco, ok := ecs.Get(g.entities, e, component.DecorationComponent.Kind())
	if !ok {
		return
	}
	g.space.RemoveShape(deco.Shape)
	g.entities.DestroyEntity(e)
}

// Tiles returns every tile ordered by row, then column.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, 0, len(g.tiles))
	for pos, id := range g.tiles {
		out = append(out, Tile{Pos: pos, ID: id})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos.Y != out[j].Pos.Y {
			return out[i].Pos.Y < out[j].Pos.Y
		}
		return out[i].Pos.X < out[j].Pos.X
	})
	return out
}

// Spawns returns entities and objects ordered by handle.
func (g *Grid) Spawns() []Spawn {
	var out []Spawn
	ecs.ForEach2(g.entities, component.SpawnedComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, s *component.Spawned, tf *component.Transform) {
			out = append(out, Spawn{Handle: Handle(e), Kind: s.Kind, ID: s.ID, Pos: tf.Vector()})
		})
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out
}

// Counts returns the number of tiles, entities and level objects.
func (g *Grid) Counts() (tiles, entities, objects int) {
	for _, s := range g.Spawns() {
		if s.Kind == component.SpawnObject {
			objects++
		} else {
			entities++
		}
	}
	return len(g.tiles), entities, objects
}

func removePoint(pts []common.Point, p common.Point) []common.Point {
	for i, q := range pts {
		if q == p {
			return append(pts[:i], pts[i+1:]...)
		}
	}
	return pts
}
