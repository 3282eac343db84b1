package structure

import (
	"context"

	"github.com/jakecoffman/cp"
	"github.com/pkg/errors"

	"github.com/milk9111/levelgen/common"
	"github.com/milk9111/levelgen/world"
)

// MaxAttempts is the number of random origins tried per placement.
const MaxAttempts = 100

var ErrPlacementFailed = errors.New("structure: placement failed")

// Rand is the random source of a Placer. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Bounds is the level size in grid units.
type Bounds struct {
	SizeX int
	SizeY int
}

// Config contains the dependencies of a Placer.
type Config struct {
	Store    Store
	World    world.World
	Rand     Rand
	Registry *Registry
	// DeferDecorRemoval clears level objects under a candidate only once the
	// candidate is accepted. When false, objects under any candidate that
	// passed the entity check are removed even if the registry check then
	// rejects it.
	DeferDecorRemoval bool
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.New("structure: config cannot be nil")
	}
	if cfg.World == nil {
		return errors.New("structure: world cannot be nil")
	}
	if cfg.Rand == nil {
		return errors.New("structure: rand cannot be nil")
	}
	if cfg.Registry == nil {
		return errors.New("structure: registry cannot be nil")
	}
	return nil
}

// Placer is the structure placement engine.
type Placer struct {
	store    Store
	world    world.World
	rng      Rand
	registry *Registry
	deferDec bool
}

func NewPlacer(cfg *Config) (*Placer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Placer{
		store:    cfg.Store,
		world:    cfg.World,
		rng:      cfg.Rand,
		registry: cfg.Registry,
		deferDec: cfg.DeferDecorRemoval,
	}, nil
}

// Placement describes a placed structure.
type Placement struct {
	TemplateID string
	Origin     common.Point
	Rect       common.Rect
	Attempts   int
	Entities   int
	Objects    int
	Cleared    int
}

// Place loads the template id from the store and places it.
func (p *Placer) Place(ctx context.Context, id string, level Bounds, minBoundsDist int) (*Placement, error) {
	if p.store == nil {
		return nil, errors.Wrapf(ErrTemplateNotFound, "%s: no template store", id)
	}
	t, err := p.store.Template(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.PlaceTemplate(t, level, minBoundsDist)
}

// PlaceTemplate samples up to MaxAttempts origins in the valid-origin
// rectangle. A candidate is rejected when an entity lies inside its world
// rectangle or the rectangle overlaps a registered structure. The first
// accepted candidate spawns the template's children and is registered.
// ErrPlacementFailed is returned when no candidate is accepted.
func (p *Placer) PlaceTemplate(t *Template, level Bounds, minBoundsDist int) (*Placement, error) {
	minX := minBoundsDist + t.Center.X
	maxX := level.SizeX - minBoundsDist - t.Width + t.Center.X
	minY := minBoundsDist + t.Center.Y
	maxY := level.SizeY - minBoundsDist - t.Height + t.Center.Y
	if maxX < minX || maxY < minY {
		return nil, errors.Wrapf(ErrPlacementFailed, "%s: %dx%d does not fit a %dx%d level with boundary distance %d",
			t.ID, t.Width, t.Height, level.SizeX, level.SizeY, minBoundsDist)
	}

	entities := p.world.QueryEntityPositions()
	cleared := 0
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		origin := common.Point{
			X: minX + p.rng.Intn(maxX-minX+1),
			Y: minY + p.rng.Intn(maxY-minY+1),
		}
		rect := common.NewRect(origin.Sub(t.Center), t.Width, t.Height)

		if containsAny(rect, entities) {
			continue
		}

		decor := p.world.LevelObjectsIn(rect.BB())
		if !p.deferDec {
			cleared += p.clear(decor)
		}

		if p.registry.Overlaps(rect) {
			continue
		}

		if p.deferDec {
			cleared += p.clear(decor)
		}

		placement := &Placement{
			TemplateID: t.ID,
			Origin:     origin,
			Rect:       rect,
			Attempts:   attempt,
			Cleared:    cleared,
		}
		placement.Entities = p.spawnChildren(t, t.Entities, origin, p.world.SpawnEntity)
		placement.Objects = p.spawnChildren(t, t.LevelObjects, origin, p.world.SpawnObject)
		p.registry.Add(rect)
		return placement, nil
	}

	return nil, errors.Wrapf(ErrPlacementFailed, "%s: no valid position after %d attempts", t.ID, MaxAttempts)
}

func (p *Placer) clear(objects []world.Handle) int {
	for _, h := range objects {
		p.world.RemoveLevelObject(h)
	}
	return len(objects)
}

// spawnChildren spawns each child at relative + origin - center + bounds/2,
// skipping gated children whose roll exceeds their chance.
func (p *Placer) spawnChildren(t *Template, children []Child, origin common.Point, spawn func(string, cp.Vector) world.Handle) int {
	n := 0
	for _, c := range children {
		if c.SpawnChance != nil && p.rng.Float64() > *c.SpawnChance {
			continue
		}
		pos := cp.Vector{
			X: float64(c.Position.X+origin.X-t.Center.X) + float64(t.Width)/2,
			Y: float64(c.Position.Y+origin.Y-t.Center.Y) + float64(t.Height)/2,
		}
		spawn(c.ID, pos)
		n++
	}
	return n
}

func containsAny(r common.Rect, positions []cp.Vector) bool {
	for _, pos := range positions {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}
