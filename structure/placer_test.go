package structure_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/milk9111/levelgen/common"
	"github.com/milk9111/levelgen/structure"
	"github.com/milk9111/levelgen/world"
	worldmock "github.com/milk9111/levelgen/world/mock"
)

// scriptedRand replays fixed values; Intn results are reduced modulo n.
type scriptedRand struct {
	ints    []int
	floats  []float64
	intCall int
	fltCall int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[r.intCall%len(r.ints)]
	r.intCall++
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[r.fltCall%len(r.floats)]
	r.fltCall++
	return v
}

type mapStore map[string]*structure.Template

func (s mapStore) Template(_ context.Context, id string) (*structure.Template, error) {
	t, ok := s[id]
	if !ok {
		return nil, errors.Wrap(structure.ErrTemplateNotFound, id)
	}
	return t, nil
}

func square(id string, size int) *structure.Template {
	return &structure.Template{ID: id, Width: size, Height: size}
}

func chance(v float64) *float64 {
	return &v
}

func TestPlaceFailsWhenOnlyCandidateHoldsEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := worldmock.NewMockWorld(ctrl)
	w.EXPECT().QueryEntityPositions().Return([]cp.Vector{{X: 5, Y: 5}}).Times(1)

	rng := &scriptedRand{ints: []int{0}}
	placer, err := structure.NewPlacer(&structure.Config{
		Store:    mapStore{"hut": square("hut", 4)},
		World:    w,
		Rand:     rng,
		Registry: structure.NewRegistry(),
	})
	require.NoError(t, err)

	// an 8x8 level with boundary distance 2 leaves exactly one origin: (2,2)
	_, err = placer.Place(context.Background(), "hut", structure.Bounds{SizeX: 8, SizeY: 8}, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, structure.ErrPlacementFailed), "got %v", err)
	assert.Equal(t, 2*structure.MaxAttempts, rng.intCall)
}

func TestPlaceSpawnsChildren(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := worldmock.NewMockWorld(ctrl)

	tpl := &structure.Template{
		ID:     "camp",
		Width:  4,
		Height: 2,
		Center: common.Point{X: 1, Y: 1},
		Entities: []structure.Child{
			{ID: "guard", Position: common.Point{X: 0, Y: 0}},
			{ID: "dog", Position: common.Point{X: 1, Y: 0}, SpawnChance: chance(0.5)},
			{ID: "cat", Position: common.Point{X: -1, Y: 0}, SpawnChance: chance(0.5)},
		},
		LevelObjects: []structure.Child{
			{ID: "tent", Position: common.Point{X: 1, Y: -1}},
		},
	}

	// level 10x10, distance 0: origin x in [1,7], y in [1,9]
	rng := &scriptedRand{ints: []int{2, 3}, floats: []float64{0.7, 0.3}}
	reg := structure.NewRegistry()

	gomock.InOrder(
		w.EXPECT().QueryEntityPositions().Return(nil),
		w.EXPECT().LevelObjectsIn(cp.BB{L: 2, B: 3, R: 6, T: 5}).Return([]world.Handle{42}),
		w.EXPECT().RemoveLevelObject(world.Handle(42)),
		w.EXPECT().SpawnEntity("guard", cp.Vector{X: 4, Y: 4}),
		w.EXPECT().SpawnEntity("cat", cp.Vector{X: 3, Y: 4}),
		w.EXPECT().SpawnObject("tent", cp.Vector{X: 5, Y: 3}),
	)

	placer, err := structure.NewPlacer(&structure.Config{World: w, Rand: rng, Registry: reg})
	require.NoError(t, err)

	p, err := placer.PlaceTemplate(tpl, structure.Bounds{SizeX: 10, SizeY: 10}, 0)
	require.NoError(t, err)

	assert.Equal(t, common.Point{X: 3, Y: 4}, p.Origin)
	assert.Equal(t, common.Rect{X: 2, Y: 3, Width: 4, Height: 2}, p.Rect)
	assert.Equal(t, 1, p.Attempts)
	assert.Equal(t, 2, p.Entities)
	assert.Equal(t, 1, p.Objects)
	assert.Equal(t, 1, p.Cleared)
	assert.Equal(t, []common.Rect{p.Rect}, reg.Rects())
}

func TestPlaceTemplateTooLarge(t *testing.T) {
	placer, err := structure.NewPlacer(&structure.Config{
		World:    world.NewGrid(),
		Rand:     rand.New(rand.NewSource(1)),
		Registry: structure.NewRegistry(),
	})
	require.NoError(t, err)

	_, err = placer.PlaceTemplate(square("big", 9), structure.Bounds{SizeX: 10, SizeY: 10}, 1)
	assert.True(t, errors.Is(err, structure.ErrPlacementFailed))
}

func TestPlaceUnknownTemplate(t *testing.T) {
	placer, err := structure.NewPlacer(&structure.Config{
		Store:    mapStore{},
		World:    world.NewGrid(),
		Rand:     rand.New(rand.NewSource(1)),
		Registry: structure.NewRegistry(),
	})
	require.NoError(t, err)

	_, err = placer.Place(context.Background(), "nope", structure.Bounds{SizeX: 10, SizeY: 10}, 0)
	assert.True(t, errors.Is(err, structure.ErrTemplateNotFound))
}

func TestPlacedStructuresNeverOverlap(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		grid := world.NewGrid()
		reg := structure.NewRegistry()
		placer, err := structure.NewPlacer(&structure.Config{
			World:    grid,
			Rand:     rand.New(rand.NewSource(seed)),
			Registry: reg,
		})
		require.NoError(t, err)

		tpl := &structure.Template{
			ID: "hut", Width: 5, Height: 3, Center: common.Point{X: 2, Y: 1},
			LevelObjects: []structure.Child{{ID: "lamp"}},
		}
		for i := 0; i < 30; i++ {
			_, err := placer.PlaceTemplate(tpl, structure.Bounds{SizeX: 40, SizeY: 30}, 1)
			if err != nil {
				require.True(t, errors.Is(err, structure.ErrPlacementFailed), "got %v", err)
			}
		}

		rects := reg.Rects()
		require.NotEmpty(t, rects)
		for i := range rects {
			assert.True(t, rects[i].X >= 1 && rects[i].Y >= 1, "rect %v crosses the boundary", rects[i])
			assert.True(t, rects[i].X+rects[i].Width <= 39 && rects[i].Y+rects[i].Height <= 29, "rect %v crosses the boundary", rects[i])
			for j := i + 1; j < len(rects); j++ {
				assert.False(t, rects[i].Intersects(rects[j]), "seed %d: %v overlaps %v", seed, rects[i], rects[j])
			}
		}
	}
}

func TestDecorRemovalOnRejectedCandidate(t *testing.T) {
	setup := func(deferRemoval bool) (*world.Grid, *structure.Placer, error) {
		grid := world.NewGrid()
		grid.SpawnObject("bush", cp.Vector{X: 3, Y: 3})

		reg := structure.NewRegistry()
		reg.Add(common.Rect{X: 2, Y: 2, Width: 4, Height: 4})

		placer, err := structure.NewPlacer(&structure.Config{
			World:             grid,
			Rand:              &scriptedRand{ints: []int{0}},
			Registry:          reg,
			DeferDecorRemoval: deferRemoval,
		})
		if err != nil {
			return nil, nil, err
		}
		// the only origin is (2,2), which overlaps the registered rectangle
		_, err = placer.PlaceTemplate(square("hut", 4), structure.Bounds{SizeX: 8, SizeY: 8}, 2)
		return grid, placer, err
	}

	grid, _, err := setup(false)
	assert.True(t, errors.Is(err, structure.ErrPlacementFailed))
	_, _, objects := grid.Counts()
	assert.Equal(t, 0, objects, "decoration is cleared even though the candidate was rejected")

	grid, _, err = setup(true)
	assert.True(t, errors.Is(err, structure.ErrPlacementFailed))
	_, _, objects = grid.Counts()
	assert.Equal(t, 1, objects)
}

func TestNewPlacerValidates(t *testing.T) {
	testCases := []struct {
		name   string
		config *structure.Config
		errMsg string
	}{
		{"nil config", nil, "config cannot be nil"},
		{"nil world", &structure.Config{Rand: rand.New(rand.NewSource(1)), Registry: structure.NewRegistry()}, "world cannot be nil"},
		{"nil rand", &structure.Config{World: world.NewGrid(), Registry: structure.NewRegistry()}, "rand cannot be nil"},
		{"nil registry", &structure.Config{World: world.NewGrid(), Rand: rand.New(rand.NewSource(1))}, "registry cannot be nil"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := structure.NewPlacer(tc.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
			assert.Nil(t, p)
		})
	}
}
