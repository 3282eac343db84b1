package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/levelgen/common"
	"github.com/milk9111/levelgen/world"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		levelName, redisAddr, seed, templateID = "caves", "", 0, ""
		dumpResult, printASCII = false, false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	out, err := execute(t, "build", "--level", "meadow", "--seed", "99", "--ascii")
	require.NoError(t, err)

	assert.Contains(t, out, "level meadow (seed 99, 48x24, boundary 1)")
	assert.Contains(t, out, "structure shrine at")
	assert.Contains(t, out, "P", "player marker in the ascii grid")
}

func TestBuildCommandDump(t *testing.T) {
	out, err := execute(t, "build", "--level", "meadow", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "Placements:")
	assert.Contains(t, out, "Seed: (int64) 7")
}

func TestBuildCommandUnknownLevel(t *testing.T) {
	_, err := execute(t, "build", "--level", "atlantis")
	assert.Error(t, err)
}

func TestPushAndListTemplates(t *testing.T) {
	mr := miniredis.RunT(t)

	file := filepath.Join(t.TempDir(), "well.yaml")
	require.NoError(t, os.WriteFile(file, []byte("structureBounds: {boundsX: 2, boundsY: 2}\nlevel_objects:\n  - well: {}\n"), 0o644))

	out, err := execute(t, "push-template", "--redis", mr.Addr(), file)
	require.NoError(t, err)
	assert.Contains(t, out, "pushed well (2x2, 0 entities, 1 level objects)")
	assert.True(t, mr.Exists("structure:well"))

	out, err = execute(t, "list", "--redis", mr.Addr())
	require.NoError(t, err)
	assert.Contains(t, out, "structures:\n  well\n")
	assert.Contains(t, out, "  caves\n")
}

func TestPushNeedsRedis(t *testing.T) {
	_, err := execute(t, "push-template", "camp.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs --redis")
}

func TestListEmbeddedTemplates(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "  camp\n  ruin\n  shrine\n")
}

func TestRenderASCII(t *testing.T) {
	g := world.NewGrid()
	for x := 0; x < 4; x++ {
		g.PlaceTile("ground", common.Point{X: x, Y: 2})
	}
	g.SpawnEntity("bat", cp.Vector{X: 1, Y: 0})
	g.SpawnObject("bush", cp.Vector{X: 3, Y: 1})

	assert.Equal(t, " B\n   *\ngggg\n", renderASCII(g))
	assert.Empty(t, renderASCII(world.NewGrid()))
}

func TestShapeMasks(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}

	sq := squareMask(4, red)
	assert.Equal(t, red, sq.RGBAAt(0, 0))
	assert.Equal(t, red, sq.RGBAAt(3, 3))

	tri := triangleMask(8, red)
	assert.Equal(t, red, tri.RGBAAt(4, 7), "base is filled")
	assert.Equal(t, red, tri.RGBAAt(0, 7))
	assert.Zero(t, tri.RGBAAt(0, 0).A, "top corner is empty")

	dia := diamondMask(8, red)
	assert.Equal(t, red, dia.RGBAAt(4, 4))
	assert.Zero(t, dia.RGBAAt(0, 0).A)
	assert.Zero(t, dia.RGBAAt(7, 7).A)
}
