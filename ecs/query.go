package ecs

import "github.com/milk9111/levelgen/ecs/component"

// ForEach2 visits entities holding both kinds, iterating the smaller store.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := store(w, ka, false)
	sb := store(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	if sa.Len() <= sb.Len() {
		for i, e := range sa.denseEntities {
			if b := sb.Get(e); b != nil {
				fn(e, &sa.denseValues[i], b)
			}
		}
		return
	}
	for i, e := range sb.denseEntities {
		if a := sa.Get(e); a != nil {
			fn(e, a, &sb.denseValues[i])
		}
	}
}
