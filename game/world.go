package game

import "time"

// World holds the entity collections of a round.
// Collections are replaced by filtered copies each tick, never edited while iterated.
type World struct {
	Buildings  []*Building
	Enemies    []*Enemy
	Bullets    []*Bullet
	Explosions []*Explosion

	// Right edge of the screen, used to cull bullets
	screenWidth float64
}

// NewWorld creates an empty world
func NewWorld(config Config) *World {
	return &World{
		Buildings:   make([]*Building, 0, 8),
		Enemies:     make([]*Enemy, 0, 8),
		Bullets:     make([]*Bullet, 0, 16),
		Explosions:  make([]*Explosion, 0, 4),
		screenWidth: float64(config.ScreenWidth),
	}
}

// AddSpawned registers the entities produced by the spawner
func (w *World) AddSpawned(s Spawned) {
	if s.Building != nil {
		w.Buildings = append(w.Buildings, s.Building)
	}
	if s.Enemy != nil {
		w.Enemies = append(w.Enemies, s.Enemy)
	}
}

// AddBullet registers a bullet
func (w *World) AddBullet(b *Bullet) {
	w.Bullets = append(w.Bullets, b)
}

// AddExplosion registers an explosion
func (w *World) AddExplosion(e *Explosion) {
	w.Explosions = append(w.Explosions, e)
}

// UpdateEntities moves buildings, enemies and bullets, dropping the ones that left the screen
func (w *World) UpdateEntities() {
	w.Buildings = filter(w.Buildings, func(b *Building) bool {
		b.Update()
		return b.Right() >= 0
	})
	w.Enemies = filter(w.Enemies, func(e *Enemy) bool {
		e.Update()
		return e.Right() >= 0
	})
	w.Bullets = filter(w.Bullets, func(b *Bullet) bool {
		b.Update()
		return b.Left() <= w.screenWidth
	})
}

// UpdateExplosions advances explosion frames and drops finished animations
func (w *World) UpdateExplosions(now time.Duration) {
	w.Explosions = filter(w.Explosions, func(e *Explosion) bool {
		return e.Update(now)
	})
}

// filter builds a new slice of the items for which keep returns true.
// keep sees every item exactly once, in order.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
