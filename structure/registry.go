package structure

import "github.com/milk9111/levelgen/common"

// Registry holds the world rectangles of the structures placed in the
// current level.
type Registry struct {
	rects []common.Rect
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Overlaps reports whether r overlaps any registered rectangle. Touching
// edges do not count.
func (reg *Registry) Overlaps(r common.Rect) bool {
	for _, placed := range reg.rects {
		if placed.Intersects(r) {
			return true
		}
	}
	return false
}

func (reg *Registry) Add(r common.Rect) {
	reg.rects = append(reg.rects, r)
}

// Rects returns a copy of the registered rectangles in placement order.
func (reg *Registry) Rects() []common.Rect {
	out := make([]common.Rect, len(reg.rects))
	copy(out, reg.rects)
	return out
}

func (reg *Registry) Len() int {
	return len(reg.rects)
}

func (reg *Registry) Reset() {
	reg.rects = reg.rects[:0]
}
