package level

import (
	"context"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/pkg/errors"

	"github.com/milk9111/levelgen/common"
	"github.com/milk9111/levelgen/script"
	"github.com/milk9111/levelgen/structure"
	"github.com/milk9111/levelgen/world"
)

var (
	ErrNoSpawnTilesFound    = errors.New("level: no spawn tiles found")
	ErrNoValidSpawnPosition = errors.New("level: no valid spawn position")
)

// session is the state of one build. It is the script.Host the
// interpreter reports to.
type session struct {
	builder  *Builder
	name     string
	params   Params
	world    *trackedWorld
	rng      structure.Rand
	registry *structure.Registry
	placer   *structure.Placer
	result   *Result
}

var _ script.Host = (*session)(nil)

func newSession(b *Builder, in *BuildInput, seed int64, w world.World) *session {
	tw := &trackedWorld{World: w}
	rng := newRand(seed)
	registry := structure.NewRegistry()

	// the config is complete, so NewPlacer cannot fail
	placer, _ := structure.NewPlacer(&structure.Config{
		Store:             b.store,
		World:             tw,
		Rand:              rng,
		Registry:          registry,
		DeferDecorRemoval: b.deferDec,
	})

	return &session{
		builder:  b,
		name:     in.Name,
		params:   in.Params,
		world:    tw,
		rng:      rng,
		registry: registry,
		placer:   placer,
		result: &Result{
			Name:  in.Name,
			Seed:  seed,
			World: w,
		},
	}
}

func (s *session) SetLevelParam(p script.LevelParam, value int) {
	switch p {
	case script.LevelSizeX:
		s.params.SizeX = value
	case script.LevelSizeY:
		s.params.SizeY = value
	case script.LevelBoundsDist:
		s.params.BoundsDist = value
	}
}

func (s *session) PlaceTile(tileID string, x, y int) {
	s.world.PlaceTile(tileID, common.Point{X: x, Y: y})
}

func (s *session) SpawnEntity(entityID string, x, y int) {
	s.world.SpawnEntity(entityID, common.Point{X: x, Y: y}.Vector())
}

func (s *session) SpawnObject(objectID string, x, y int) {
	s.world.SpawnObject(objectID, common.Point{X: x, Y: y}.Vector())
}

// SpawnRandomEntity spawns entityID on a random spawnTileID tile that keeps
// minBoundsDist from the level edge, holds no entity and lies outside every
// placed structure.
func (s *session) SpawnRandomEntity(entityID, spawnTileID string, minBoundsDist int) error {
	tiles := s.world.QueryTilesByType(spawnTileID)
	if len(tiles) == 0 {
		return s.warn(errors.Wrapf(ErrNoSpawnTilesFound, "%s on %s", entityID, spawnTileID))
	}

	occupied := make(map[common.Point]bool)
	for _, pos := range s.world.QueryEntityPositions() {
		occupied[common.Point{X: int(math.Floor(pos.X)), Y: int(math.Floor(pos.Y))}] = true
	}
	rects := s.registry.Rects()

	var candidates []common.Point
	for _, p := range tiles {
		if !common.InBounds(p, s.params.SizeX, s.params.SizeY, minBoundsDist) || occupied[p] {
			continue
		}
		if insideAny(p, rects) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return s.warn(errors.Wrapf(ErrNoValidSpawnPosition, "%s on %s with boundary distance %d", entityID, spawnTileID, minBoundsDist))
	}

	p := candidates[s.rng.Intn(len(candidates))]
	s.world.SpawnEntity(entityID, p.Vector())
	return nil
}

// PlaceStructure places structureID within the current level bounds.
func (s *session) PlaceStructure(ctx context.Context, structureID string, minBoundsDist int) error {
	bounds := structure.Bounds{SizeX: s.params.SizeX, SizeY: s.params.SizeY}
	p, err := s.placer.Place(ctx, structureID, bounds, minBoundsDist)
	if err != nil {
		s.result.Skipped = append(s.result.Skipped, structureID)
		return s.warn(errors.Wrapf(err, "structure %s skipped", structureID))
	}
	s.result.Placements = append(s.result.Placements, *p)
	return nil
}

func (s *session) warn(err error) error {
	s.result.Warnings = append(s.result.Warnings, err.Error())
	return err
}

func (s *session) finish(vars *script.Vars) {
	s.result.Params = s.params
	s.result.Vars = vars.Snapshot()
	s.result.Rects = s.registry.Rects()
	s.result.Tiles = s.world.tiles
	s.result.Entities = s.world.entities
	s.result.Objects = s.world.objects - s.world.removed
	s.result.Cleared = s.world.removed
}

func insideAny(p common.Point, rects []common.Rect) bool {
	for _, r := range rects {
		if r.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// trackedWorld counts the writes that reach the wrapped world.
type trackedWorld struct {
	world.World
	tiles    int
	entities int
	objects  int
	removed  int
}

func (w *trackedWorld) PlaceTile(tileID string, pos common.Point) {
	w.tiles++
	w.World.PlaceTile(tileID, pos)
}

func (w *trackedWorld) SpawnEntity(entityID string, pos cp.Vector) world.Handle {
	w.entities++
	return w.World.SpawnEntity(entityID, pos)
}

func (w *trackedWorld) SpawnObject(objectID string, pos cp.Vector) world.Handle {
	w.objects++
	return w.World.SpawnObject(objectID, pos)
}

func (w *trackedWorld) RemoveLevelObject(h world.Handle) {
	w.removed++
	w.World.RemoveLevelObject(h)
}
