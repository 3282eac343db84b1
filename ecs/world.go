package ecs

import "github.com/milk9111/levelgen/ecs/component"

type componentStore interface {
	remove(e Entity)
	Len() int
}

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It returns
// false when e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all live entities in slot order.
func (w *World) Entities() []Entity {
	return w.entities.entities()
}

// Len is the number of live entities.
func (w *World) Len() int {
	return w.entities.count
}

// Clear destroys every entity.
func (w *World) Clear() {
	w.entities = entityStore{}
	w.stores = make(map[component.ComponentID]componentStore)
}
