// Package level builds levels: it seeds the random source, runs the
// level-description script against a world, places the requested
// structures and finally runs the optional hook script.
package level

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/milk9111/levelgen/common"
	"github.com/milk9111/levelgen/levels"
	"github.com/milk9111/levelgen/script"
	"github.com/milk9111/levelgen/structure"
	"github.com/milk9111/levelgen/world"
)

// Params are the level-wide settings a script can override with VAR.
type Params struct {
	SizeX      int
	SizeY      int
	BoundsDist int
}

// Config contains the dependencies of a Builder.
type Config struct {
	// Store resolves structure templates. Without one every structure
	// placement is skipped.
	Store structure.Store
	// World receives the generated content. When nil every build writes to
	// a fresh world.Grid; otherwise the world is reset before a build if it
	// has a Reset method.
	World  world.World
	Logger *log.Logger
	// DeferDecorRemoval only clears level objects under accepted structures.
	DeferDecorRemoval bool
}

// Builder runs level builds. Builds share no state besides the configured
// world, so one Builder can serve many levels.
type Builder struct {
	store    structure.Store
	world    world.World
	logger   *log.Logger
	deferDec bool
}

func NewBuilder(cfg *Config) *Builder {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{
		store:    cfg.Store,
		world:    cfg.World,
		logger:   logger,
		deferDec: cfg.DeferDecorRemoval,
	}
}

// BuildInput describes one build.
type BuildInput struct {
	Name   string
	Script []string
	Params Params
	// Seed fixes the random source. Zero draws a fresh seed.
	Seed       int64
	Structures []levels.StructureSpec
	Hook       []byte
}

// Result summarises a build.
type Result struct {
	Name   string
	Seed   int64
	Params Params
	Vars   map[string]int

	World world.World
	// Grid is set when the build wrote to a world.Grid.
	Grid *world.Grid

	Placements []structure.Placement
	Skipped    []string
	Rects      []common.Rect

	// Tiles, Entities and Objects count writes to the world. Objects
	// excludes the Cleared ones removed by structure placement.
	Tiles    int
	Entities int
	Objects  int
	Cleared  int

	Warnings []string
}

// Build runs in. A fatal script error stops the build; it is logged with
// its line and returned together with the partial result, whose side
// effects are kept. Recoverable failures become warnings.
func (b *Builder) Build(ctx context.Context, in *BuildInput) (*Result, error) {
	if in == nil {
		return nil, errors.New("level: build input cannot be nil")
	}

	seed := in.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, grid := b.prepareWorld()
	s := newSession(b, in, seed, w)
	s.result.Grid = grid

	b.logger.Printf("level: %s: building with seed %d", in.Name, seed)

	interp := script.New(s, b.logger)
	interp.Preset("LEVEL_SIZE_X", in.Params.SizeX)
	interp.Preset("LEVEL_SIZE_Y", in.Params.SizeY)
	interp.Preset("LEVEL_BOUNDS_DIST", in.Params.BoundsDist)

	if err := interp.Run(ctx, in.Script); err != nil {
		s.finish(interp.Vars())
		var serr *script.Error
		if errors.As(err, &serr) {
			b.logger.Printf("level: %s: script failed at line %d %q: %v", in.Name, serr.Line, serr.Text, err)
		} else {
			b.logger.Printf("level: %s: script failed: %v", in.Name, err)
		}
		return s.result, errors.Wrapf(err, "level: %s", in.Name)
	}

	for _, spec := range in.Structures {
		for i := 0; i < spec.Count; i++ {
			if err := s.PlaceStructure(ctx, spec.ID, spec.MinBoundsDist); err != nil {
				b.logger.Printf("level: %s: warning: %v", in.Name, err)
			}
		}
	}

	if len(in.Hook) > 0 {
		if err := s.runHook(ctx, in.Hook, interp.Vars()); err != nil {
			s.warn(err)
			b.logger.Printf("level: %s: warning: %v", in.Name, err)
		}
	}

	s.finish(interp.Vars())
	b.logger.Printf("level: %s: %d tiles, %d entities, %d objects, %d structures (%d skipped)",
		in.Name, s.result.Tiles, s.result.Entities, s.result.Objects, len(s.result.Placements), len(s.result.Skipped))
	return s.result, nil
}

// BuildManifest loads the script and hook m names from dir and builds it.
// A non-zero seed overrides the manifest seed.
func (b *Builder) BuildManifest(ctx context.Context, m *levels.Manifest, dir string, seed int64) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	src, err := m.LoadScript(dir)
	if err != nil {
		return nil, err
	}
	hook, err := m.LoadHook(dir)
	if err != nil {
		return nil, err
	}
	lines, err := script.Parse(src)
	if err != nil {
		return nil, errors.Wrapf(err, "level: %s", m.Name)
	}
	if seed == 0 {
		seed = m.Seed
	}
	return b.Build(ctx, &BuildInput{
		Name:       m.Name,
		Script:     lines,
		Params:     Params{SizeX: m.SizeX, SizeY: m.SizeY, BoundsDist: m.BoundsDist},
		Seed:       seed,
		Structures: m.Structures,
		Hook:       hook,
	})
}

type resetter interface {
	Reset()
}

func (b *Builder) prepareWorld() (world.World, *world.Grid) {
	if b.world == nil {
		g := world.NewGrid()
		return g, g
	}
	if r, ok := b.world.(resetter); ok {
		r.Reset()
	}
	g, _ := b.world.(*world.Grid)
	return b.world, g
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
