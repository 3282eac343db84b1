package ecs

import "github.com/milk9111/levelgen/ecs/component"

func store[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if s, ok := w.stores[kind.ID()]; ok {
		return s.(*SparseSet[T])
	}
	if !create {
		return nil
	}
	s := &SparseSet[T]{}
	w.stores[kind.ID()] = s
	return s
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	store(w, kind, true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return store(w, kind, false).Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return store(w, kind, false).Has(e)
}

// Get returns a pointer into the store; it stays valid until the next Add or
// Remove of the same component kind.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	v := store(w, kind, false).Get(e)
	return v, v != nil
}

// ForEach visits every entity holding kind. fn must not add or remove
// components of that kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := store(w, kind, false)
	if s == nil {
		return
	}
	for i, e := range s.denseEntities {
		fn(e, &s.denseValues[i])
	}
}

func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return store(w, kind, false).Len()
}
