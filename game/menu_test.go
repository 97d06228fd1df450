package game

import "testing"

func TestMenuButtonsLayout(t *testing.T) {
	cfg := DefaultConfig()
	screen := Rect{W: float64(cfg.ScreenWidth), H: float64(cfg.ScreenHeight)}
	buttons := MenuButtons()

	for i, a := range buttons {
		if a.Rect.Left() < 0 || a.Rect.Right() > screen.W || a.Rect.Bottom() > screen.H {
			t.Errorf("%s button is off screen: %+v", a.Label, a.Rect)
		}
		for _, b := range buttons[i+1:] {
			if a.Rect.Intersects(b.Rect) {
				t.Errorf("%s and %s buttons overlap", a.Label, b.Label)
			}
		}
		for _, playing := range []bool{false, true} {
			if a.Rect.Intersects(MuteButton(cfg, playing)) {
				t.Errorf("%s button overlaps the mute button", a.Label)
			}
		}
	}

	seen := map[Difficulty]bool{}
	instructions := 0
	for _, b := range buttons {
		if b.Instructions {
			instructions++
			continue
		}
		seen[b.Difficulty] = true
	}
	if len(seen) != int(DifficultyCount) || instructions != 1 {
		t.Errorf("Expected one button per preset and one help button, got %d/%d", len(seen), instructions)
	}
}

func TestMuteButton(t *testing.T) {
	cfg := DefaultConfig()
	menu := MuteButton(cfg, false)
	play := MuteButton(cfg, true)
	if menu.X != 380 || menu.Y != 20 || play.Y != 10 {
		t.Errorf("Unexpected mute rects %+v %+v", menu, play)
	}
	if MuteLabel(false) != "M to Mute" || MuteLabel(true) != "M to Unmute" {
		t.Error("Unexpected mute labels")
	}
}
