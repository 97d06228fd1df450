package game

import "time"

// Points awarded by the collision system
const (
	PointsBuildingPassed = 1
	PointsEnemyDestroyed = 2
)

// CollisionResult summarizes one tick of collision handling
type CollisionResult struct {
	// Points earned this tick
	Points int

	// Fatal is set when the round must end
	Fatal bool

	// Kills counts bullet/enemy pairs removed this tick
	Kills int
}

// CollisionSystem handles collision detection and scoring for a round
type CollisionSystem struct {
	world *World

	groundLine      float64
	explosionFrames int
	frameDuration   time.Duration
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *World, config Config) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		groundLine:      config.GroundLine(),
		explosionFrames: config.ExplosionFrames,
		frameDuration:   config.ExplosionFrameDuration,
	}
}

// Resolve runs every check of a tick in order: building passes, building hits,
// enemy hits, bullet hits, then screen bounds. Any number of fatal conditions
// produce a single explosion at the plane's center.
func (c *CollisionSystem) Resolve(plane *Plane, now time.Duration) CollisionResult {
	var res CollisionResult

	res.Points += c.scorePassedBuildings(plane)

	if c.hitsBuilding(plane) {
		res.Fatal = true
	}
	if c.hitsEnemy(plane) {
		res.Fatal = true
	}

	kills := c.resolveBulletHits(now)
	res.Kills = kills
	res.Points += kills * PointsEnemyDestroyed

	if c.outOfBounds(plane) {
		res.Fatal = true
	}

	if res.Fatal {
		c.explode(plane.CenterX(), plane.CenterY(), now)
	}
	return res
}

// scorePassedBuildings marks buildings whose trailing edge is behind the plane's leading edge
func (c *CollisionSystem) scorePassedBuildings(plane *Plane) int {
	points := 0
	for _, b := range c.world.Buildings {
		if !b.Passed && b.Right() < plane.Left() {
			b.Passed = true
			points += PointsBuildingPassed
		}
	}
	return points
}

func (c *CollisionSystem) hitsBuilding(plane *Plane) bool {
	for _, b := range c.world.Buildings {
		if b.Intersects(plane.Rect) {
			return true
		}
	}
	return false
}

func (c *CollisionSystem) hitsEnemy(plane *Plane) bool {
	for _, e := range c.world.Enemies {
		if e.Intersects(plane.Rect) {
			return true
		}
	}
	return false
}

// resolveBulletHits lets each bullet destroy at most the first enemy it overlaps.
// Both are removed and an explosion replaces the enemy.
func (c *CollisionSystem) resolveBulletHits(now time.Duration) int {
	w := c.world
	kills := 0
	w.Bullets = filter(w.Bullets, func(b *Bullet) bool {
		hit := -1
		for i, e := range w.Enemies {
			if b.Intersects(e.Rect) {
				hit = i
				break
			}
		}
		if hit < 0 {
			return true
		}

		enemy := w.Enemies[hit]
		w.Enemies = removeAt(w.Enemies, hit)
		c.explode(enemy.CenterX(), enemy.CenterY(), now)
		kills++
		return false
	})
	return kills
}

// outOfBounds reports a plane touching the top of the screen or the ground
func (c *CollisionSystem) outOfBounds(plane *Plane) bool {
	return plane.Top() <= 0 || plane.Bottom() >= c.groundLine
}

func (c *CollisionSystem) explode(x, y float64, now time.Duration) {
	c.world.AddExplosion(NewExplosion(x, y, c.explosionFrames, c.frameDuration, now))
}

// removeAt returns a new slice without the element at i
func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
