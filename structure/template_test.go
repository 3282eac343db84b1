package structure_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/levelgen/common"
	"github.com/milk9111/levelgen/structure"
)

const campJSON = `{
  "structureBounds": { "center": { "x": 1, "y": 2 }, "boundsX": 6, "boundsY": 4 },
  "entities": [
    { "guard": { "position": { "x": 0, "y": 0 } } },
    { "dog": { "position": { "x": 1, "y": -1 }, "generateChance": 0.25 } }
  ],
  "level_objects": [
    { "tent": { "position": { "x": -2, "y": 0 } } }
  ]
}`

func TestDecodeJSON(t *testing.T) {
	tpl, err := structure.Decode("camp", []byte(campJSON))
	require.NoError(t, err)

	assert.Equal(t, "camp", tpl.ID)
	assert.Equal(t, 6, tpl.Width)
	assert.Equal(t, 4, tpl.Height)
	assert.Equal(t, common.Point{X: 1, Y: 2}, tpl.Center)

	require.Len(t, tpl.Entities, 2)
	assert.Equal(t, "guard", tpl.Entities[0].ID)
	assert.Nil(t, tpl.Entities[0].SpawnChance)
	assert.Equal(t, "dog", tpl.Entities[1].ID)
	require.NotNil(t, tpl.Entities[1].SpawnChance)
	assert.InDelta(t, 0.25, *tpl.Entities[1].SpawnChance, 1e-9)

	require.Len(t, tpl.LevelObjects, 1)
	assert.Equal(t, common.Point{X: -2, Y: 0}, tpl.LevelObjects[0].Position)
}

func TestDecodeYAML(t *testing.T) {
	src := `
structureBounds:
  center: {x: 0, y: 0}
  boundsX: 3
  boundsY: 3
entities:
  - chest: {position: {x: 0, y: 0}}
`
	tpl, err := structure.Decode("vault", []byte(src))
	require.NoError(t, err)
	require.Len(t, tpl.Entities, 1)
	assert.Empty(t, tpl.LevelObjects)
}

func TestDecodeRejects(t *testing.T) {
	for name, src := range map[string]string{
		"zero_bounds":  `{"structureBounds": {"boundsX": 0, "boundsY": 2}}`,
		"chance_range": `{"structureBounds": {"boundsX": 2, "boundsY": 2}, "entities": [{"a": {"generateChance": 1.5}}]}`,
		"not_a_record": `[1, 2, 3]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := structure.Decode(name, []byte(src))
			assert.True(t, errors.Is(err, structure.ErrTemplateInvalid), "got %v", err)
		})
	}
}

func TestRegistry(t *testing.T) {
	reg := structure.NewRegistry()
	reg.Add(common.Rect{X: 0, Y: 0, Width: 4, Height: 4})

	assert.True(t, reg.Overlaps(common.Rect{X: 3, Y: 3, Width: 2, Height: 2}))
	assert.False(t, reg.Overlaps(common.Rect{X: 4, Y: 0, Width: 2, Height: 2}), "shared edge is not an overlap")
	assert.False(t, reg.Overlaps(common.Rect{X: 0, Y: 4, Width: 4, Height: 1}))

	rects := reg.Rects()
	rects[0].X = 99
	assert.Equal(t, 0, reg.Rects()[0].X)

	reg.Reset()
	assert.Zero(t, reg.Len())
	assert.False(t, reg.Overlaps(common.Rect{X: 1, Y: 1, Width: 1, Height: 1}))
}
