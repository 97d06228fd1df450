package game

import "time"

// Explosion is a frame-timed animation anchored at a point.
// The frame images live with the renderer; the simulation only tracks the index.
type Explosion struct {
	// Center of the animation in screen coordinates
	X, Y float64

	// Number of frames in the animation
	Frames int

	// Index of the frame currently shown
	Index int

	// Clock time of the last frame switch
	LastUpdate time.Duration

	// Minimum time a frame stays on screen
	FrameDuration time.Duration
}

// NewExplosion starts an explosion at (x, y) on the given clock time
func NewExplosion(x, y float64, frames int, frameDuration time.Duration, now time.Duration) *Explosion {
	return &Explosion{
		X:             x,
		Y:             y,
		Frames:        frames,
		LastUpdate:    now,
		FrameDuration: frameDuration,
	}
}

// Update advances the frame once more than FrameDuration has elapsed.
// It returns false when the frames are exhausted and the explosion must be dropped.
func (e *Explosion) Update(now time.Duration) bool {
	if now-e.LastUpdate > e.FrameDuration {
		e.LastUpdate = now
		e.Index++
		if e.Index >= e.Frames {
			return false
		}
	}
	return true
}
