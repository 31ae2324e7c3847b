// Package world holds the simulation world: a tick counter driven by
// the game loop, and a registry of sample entities at every zoom
// level. The sample content is a stand-in for procedural generation;
// the read contract (EntityName, EntityCount) is what a future
// generator will implement.
package world

import (
	"fmt"
	"time"

	"econogenesis/zoom"
)

// ContentProvider is the read contract the renderer consumes. The
// sample-entity World satisfies it today; a procedural generator can
// replace it later without touching the game loop or renderer.
type ContentProvider interface {
	EntityName(level zoom.Level) string
	EntityCount() int
}

var _ ContentProvider = (*World)(nil)

// Entity is a placeholder content record at some zoom level.
type Entity struct {
	ID   zoom.EntityID
	Name string
	Kind string // terrain type, room type, star class...
	// Count is the scale-appropriate magnitude: stars for a galaxy,
	// planets for a system, population for a planet, buildings for a
	// local area.
	Count uint64
}

// World owns all entity registries and the tick counter. It is
// mutated only by Update, called from the game loop while unpaused.
type World struct {
	tickCount uint64
	nextID    zoom.EntityID

	entities        [zoom.LevelCount]map[zoom.EntityID]Entity
	representatives [zoom.LevelCount]zoom.EntityID
}

// New creates a world seeded with one sample entity per zoom level.
func New() *World {
	w := &World{nextID: 1}
	for i := range w.entities {
		w.entities[i] = make(map[zoom.EntityID]Entity)
	}

	w.add(zoom.Galaxy, "Andromeda Prime", "Spiral", 1_000_000_000)
	w.add(zoom.SolarSystem, "Sol System", "G-type", 8)
	w.add(zoom.Planet, "Terra", "Terrestrial", 7_800_000_000)
	w.add(zoom.Region, "Northern Highlands", "Mountains", 0)
	w.add(zoom.LocalArea, "Market District", "Urban", 47)
	w.add(zoom.Room, "Trading Hall", "Commercial", 0)

	return w
}

// add registers an entity at level and makes it the level's
// representative if it is the first one.
func (w *World) add(level zoom.Level, name, kind string, count uint64) zoom.EntityID {
	id := w.nextID
	w.nextID++

	w.entities[level][id] = Entity{ID: id, Name: name, Kind: kind, Count: count}
	if w.representatives[level] == 0 {
		w.representatives[level] = id
	}
	return id
}

// Update advances the world by one tick. Tick counting is frame based:
// the counter moves by exactly one per call regardless of delta. The
// delta is what future content systems will consume.
func (w *World) Update(delta time.Duration) {
	w.tickCount++
}

// TickCount returns the number of unpaused updates applied.
func (w *World) TickCount() uint64 {
	return w.tickCount
}

// Entity looks up a specific entity at a level.
func (w *World) Entity(level zoom.Level, id zoom.EntityID) (Entity, bool) {
	e, ok := w.entities[level][id]
	return e, ok
}

// EntityName returns the name of the level's representative sample
// entity. With no specific occupied entity tracked yet, the single
// sample per level stands in for "where the player is".
func (w *World) EntityName(level zoom.Level) string {
	if e, ok := w.entities[level][w.representatives[level]]; ok {
		return e.Name
	}
	return fmt.Sprintf("Unknown %s", level)
}

// EntityCount returns the total number of entities across all levels.
func (w *World) EntityCount() int {
	total := 0
	for _, m := range w.entities {
		total += len(m)
	}
	return total
}
