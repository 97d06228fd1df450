package game

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"shared right edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"shared bottom edge", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(100, 300, 50, 35)
	if r.Left() != 75 || r.Right() != 125 {
		t.Errorf("Expected x range [75, 125], got [%v, %v]", r.Left(), r.Right())
	}
	if r.Top() != 282.5 || r.Bottom() != 317.5 {
		t.Errorf("Expected y range [282.5, 317.5], got [%v, %v]", r.Top(), r.Bottom())
	}
	if r.CenterX() != 100 || r.CenterY() != 300 {
		t.Errorf("Expected center (100, 300), got (%v, %v)", r.CenterX(), r.CenterY())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 380, Y: 20, W: 40, H: 40}
	if !r.Contains(380, 20) {
		t.Error("Top-left corner should be inside")
	}
	if r.Contains(420, 40) {
		t.Error("Right edge should be outside")
	}
}

func TestPlaneKinematics(t *testing.T) {
	p := NewPlane(100, 300, 50, 35)

	p.ApplyGravity(0.5)
	p.Update()
	if p.VY != 0.5 || p.Y != 283 {
		t.Errorf("After one tick of gravity expected vy=0.5 y=283, got vy=%v y=%v", p.VY, p.Y)
	}

	// a jump replaces the velocity instead of adding to it
	p.Jump(-10)
	if p.VY != -10 {
		t.Errorf("Expected vy=-10 after jump, got %v", p.VY)
	}
	p.ApplyGravity(0.5)
	p.Update()
	if p.VY != -9.5 || p.Y != 273.5 {
		t.Errorf("Expected vy=-9.5 y=273.5, got vy=%v y=%v", p.VY, p.Y)
	}
	if p.X != 75 {
		t.Errorf("Plane must not move horizontally, x=%v", p.X)
	}
}

func TestEntityMovement(t *testing.T) {
	b := &Building{Rect: Rect{X: 500, W: 80}, Speed: 3}
	e := &Enemy{Rect: Rect{X: 500, W: 50}, Speed: 4}
	bl := &Bullet{Rect: Rect{X: 125, W: 10}, Speed: 10}

	b.Update()
	e.Update()
	bl.Update()

	if b.X != 497 {
		t.Errorf("Building x = %v, want 497", b.X)
	}
	if e.X != 496 {
		t.Errorf("Enemy x = %v, want 496", e.X)
	}
	if bl.X != 135 {
		t.Errorf("Bullet x = %v, want 135", bl.X)
	}
}
