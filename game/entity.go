package game

// Rect is an axis-aligned box in screen coordinates (Y grows downward)
type Rect struct {
	X, Y float64 // top-left corner
	W, H float64
}

// RectFromCenter builds a rect of the given size centered on (cx, cy)
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether two rects overlap. Rects that only share an edge do not.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether the point lies inside the rect
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Plane is the player-controlled entity
type Plane struct {
	Rect

	// Vertical velocity in pixels per tick
	VY float64
}

// NewPlane creates a plane centered on (cx, cy)
func NewPlane(cx, cy, w, h float64) *Plane {
	return &Plane{Rect: RectFromCenter(cx, cy, w, h)}
}

// ApplyGravity accumulates gravity into the vertical velocity
func (p *Plane) ApplyGravity(gravity float64) {
	p.VY += gravity
}

// Jump replaces the vertical velocity with the impulse
func (p *Plane) Jump(impulse float64) {
	p.VY = impulse
}

// Update integrates the vertical velocity
func (p *Plane) Update() {
	p.Y += p.VY
}

// Building is a scrolling obstacle standing on the ground
type Building struct {
	Rect

	// Passed is set once the plane has cleared the building and it has scored
	Passed bool

	// Leftward speed in pixels per tick
	Speed float64
}

// Update moves the building left
func (b *Building) Update() {
	b.X -= b.Speed
}

// Enemy flies left at a constant speed
type Enemy struct {
	Rect
	Speed float64
}

// Update moves the enemy left
func (e *Enemy) Update() {
	e.X -= e.Speed
}

// Bullet is a projectile fired by the plane
type Bullet struct {
	Rect
	Speed float64
}

// Update moves the bullet right
func (b *Bullet) Update() {
	b.X += b.Speed
}
