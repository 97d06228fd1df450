package game

// DebugState holds developer toggles that persist across rounds
type DebugState struct {
	ShowHitboxes bool // Outline collision rects (F1)
	ShowTPS      bool // Print the measured tick rate (F2)
}

// Toggle flips the flag bound to the given function key number
func (d *DebugState) Toggle(key int) {
	switch key {
	case 1:
		d.ShowHitboxes = !d.ShowHitboxes
	case 2:
		d.ShowTPS = !d.ShowTPS
	}
}
