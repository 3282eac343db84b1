package main

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"github.com/milk9111/levelgen/ecs/component"
	"github.com/milk9111/levelgen/level"
	"github.com/milk9111/levelgen/levels"
	"github.com/milk9111/levelgen/prefabs"
)

const TileSize = 16

var showRects bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open a window showing the generated level",
	Long: `Open a window showing the generated level. R rebuilds with a fresh seed,
Space rebuilds with the same seed and B toggles structure bounds.`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&showRects, "bounds", true, "outline placed structures")
}

func runView(cmd *cobra.Command, args []string) error {
	store, files, err := templateStore()
	if err != nil {
		return err
	}
	palette, err := prefabs.LoadPaletteSpec(templatesDir)
	if err != nil {
		return err
	}

	v := &viewer{
		builder: newBuilder(store),
		files:   files,
		palette: palette,
		images:  map[string]*ebiten.Image{},
		seed:    seed,
	}
	if err := v.rebuild(); err != nil {
		return err
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := v.Layout(0, 0)
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("levelgen: " + levelName)
	return ebiten.RunGame(v)
}

type viewer struct {
	builder *level.Builder
	files   *prefabs.Store
	palette *prefabs.PaletteSpec

	manifest *levels.Manifest
	result   *level.Result
	seed     int64

	images map[string]*ebiten.Image
}

func (v *viewer) rebuild() error {
	if v.files != nil {
		v.files.Reset()
	}
	m, err := levels.LoadManifest(levelsDir, levelName)
	if err != nil {
		return err
	}
	res, err := v.builder.BuildManifest(context.Background(), m, levelsDir, v.seed)
	if res == nil {
		return err
	}
	if err != nil {
		log.Printf("levelgen: %v", err)
	}
	v.manifest = m
	v.result = res
	v.palette.MergeTiles(m.Palette)
	v.images = map[string]*ebiten.Image{}
	return nil
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.seed = 0
		return v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.seed = v.result.Seed
		return v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		showRects = !showRects
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.palette.Background.Color != nil {
		screen.Fill(v.palette.Background.Color)
	}
	if v.result == nil || v.result.Grid == nil {
		return
	}

	for _, t := range v.result.Grid.Tiles() {
		img := v.image("tile:"+t.ID, func() *ebiten.Image {
			return ebiten.NewImageFromImage(squareMask(TileSize, v.palette.Color(v.palette.Tiles, t.ID)))
		})
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(t.Pos.X*TileSize), float64(t.Pos.Y*TileSize))
		screen.DrawImage(img, op)
	}

	for _, s := range v.result.Grid.Spawns() {
		var img *ebiten.Image
		if s.Kind == component.SpawnObject {
			img = v.image("object:"+s.ID, func() *ebiten.Image {
				return ebiten.NewImageFromImage(diamondMask(TileSize, v.palette.Color(v.palette.Objects, s.ID)))
			})
		} else {
			img = v.image("entity:"+s.ID, func() *ebiten.Image {
				return ebiten.NewImageFromImage(triangleMask(TileSize, v.palette.Color(v.palette.Entities, s.ID)))
			})
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(s.Pos.X*TileSize, s.Pos.Y*TileSize)
		screen.DrawImage(img, op)
	}

	if showRects {
		for _, r := range v.result.Rects {
			vector.StrokeRect(screen,
				float32(r.X*TileSize), float32(r.Y*TileSize),
				float32(r.Width*TileSize), float32(r.Height*TileSize),
				1, color.Color(colornames.Yellow), false)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s seed %d  structures %d/%d  [R] reseed [Space] rebuild [B] bounds",
		v.result.Name, v.result.Seed, len(v.result.Placements), len(v.result.Placements)+len(v.result.Skipped)))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if v.result == nil {
		return 320, 240
	}
	return max(v.result.Params.SizeX*TileSize, 320), max(v.result.Params.SizeY*TileSize, 240)
}

func (v *viewer) image(key string, build func() *ebiten.Image) *ebiten.Image {
	if img, ok := v.images[key]; ok {
		return img
	}
	img := build()
	v.images[key] = img
	return img
}
