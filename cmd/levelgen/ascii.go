package main

import (
	"strings"

	"github.com/milk9111/levelgen/ecs/component"
	"github.com/milk9111/levelgen/world"
)

// renderASCII draws the grid one character per cell: the first letter of
// the tile id, upper-cased for entities and '*' for level objects. Cells
// outside every placed tile and spawn are blank.
func renderASCII(g *world.Grid) string {
	tiles := g.Tiles()
	spawns := g.Spawns()
	if len(tiles) == 0 && len(spawns) == 0 {
		return ""
	}

	maxX, maxY := 0, 0
	for _, t := range tiles {
		maxX = max(maxX, t.Pos.X)
		maxY = max(maxY, t.Pos.Y)
	}
	for _, s := range spawns {
		maxX = max(maxX, int(s.Pos.X))
		maxY = max(maxY, int(s.Pos.Y))
	}

	rows := make([][]byte, maxY+1)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(" ", maxX+1))
	}
	for _, t := range tiles {
		if t.Pos.X < 0 || t.Pos.Y < 0 || t.ID == "" {
			continue
		}
		rows[t.Pos.Y][t.Pos.X] = strings.ToLower(t.ID)[0]
	}
	for _, s := range spawns {
		x, y := int(s.Pos.X), int(s.Pos.Y)
		if x < 0 || y < 0 || s.ID == "" {
			continue
		}
		if s.Kind == component.SpawnObject {
			rows[y][x] = '*'
		} else {
			rows[y][x] = strings.ToUpper(s.ID)[0]
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
