package ecs

import "strconv"

// Entity identifies one spawned entity or level object in a level being
// generated. world.Handle is an Entity under another name, so a handle
// returned from a spawn stays comparable and sortable by spawn order.
//
// The low 32 bits hold the slot and the high 32 bits the slot's generation.
// Removing a level object during structure placement frees its slot; the
// next spawn reuses it with a bumped generation, so the removed object's
// handle no longer resolves.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String renders the handle as slot.generation for dumps and log lines.
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "." + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e was issued by a World. Slot 0 is never handed out,
// so the zero Entity means "no spawn".
func (e Entity) Valid() bool {
	return e.id() > 0
}
