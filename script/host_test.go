package script_test

import (
	"context"
	"fmt"

	"github.com/milk9111/levelgen/script"
)

type call struct {
	op string
	id string
	x  int
	y  int
}

type recordingHost struct {
	calls     []call
	params    map[script.LevelParam]int
	randomErr error
	structErr error
}

func newRecordingHost() *recordingHost {
	return &recordingHost{params: map[script.LevelParam]int{}}
}

func (h *recordingHost) SetLevelParam(p script.LevelParam, value int) {
	h.params[p] = value
}

func (h *recordingHost) PlaceTile(id string, x, y int) {
	h.calls = append(h.calls, call{op: "tile", id: id, x: x, y: y})
}

func (h *recordingHost) SpawnEntity(id string, x, y int) {
	h.calls = append(h.calls, call{op: "entity", id: id, x: x, y: y})
}

func (h *recordingHost) SpawnObject(id string, x, y int) {
	h.calls = append(h.calls, call{op: "object", id: id, x: x, y: y})
}

func (h *recordingHost) SpawnRandomEntity(id, spawnTile string, dist int) error {
	h.calls = append(h.calls, call{op: "random", id: id + "@" + spawnTile, x: dist})
	return h.randomErr
}

func (h *recordingHost) PlaceStructure(_ context.Context, id string, dist int) error {
	h.calls = append(h.calls, call{op: "structure", id: id, x: dist})
	return h.structErr
}

func (h *recordingHost) ops(op string) []call {
	var out []call
	for _, c := range h.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (c call) String() string {
	return fmt.Sprintf("%s(%s,%d,%d)", c.op, c.id, c.x, c.y)
}
