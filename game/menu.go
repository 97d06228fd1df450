package game

import "image/color"

// Menu colors
var (
	colorWhite  = color.RGBA{255, 255, 255, 255}
	colorBlack  = color.RGBA{0, 0, 0, 255}
	colorRed    = color.RGBA{255, 0, 0, 255}
	colorGreen  = color.RGBA{0, 255, 0, 255}
	colorBlue   = color.RGBA{0, 0, 255, 255}
	colorBrown  = color.RGBA{139, 69, 19, 255}
	colorBullet = colorRed
)

// Button is a clickable menu entry
type Button struct {
	Label string
	Rect  Rect
	Color color.RGBA

	// Instructions buttons open the help screen instead of starting a round
	Instructions bool
	Difficulty   Difficulty
}

// MenuButtons returns the start menu entries
func MenuButtons() []Button {
	return []Button{
		{Label: "Easy", Rect: Rect{X: 70, Y: 250, W: 100, H: 50}, Color: colorGreen, Difficulty: DifficultyEasy},
		{Label: "Medium", Rect: Rect{X: 200, Y: 250, W: 100, H: 50}, Color: colorBlue, Difficulty: DifficultyMedium},
		{Label: "Hard", Rect: Rect{X: 330, Y: 250, W: 100, H: 50}, Color: colorRed, Difficulty: DifficultyHard},
		{Label: "How to play", Rect: Rect{X: 150, Y: 330, W: 200, H: 50}, Color: colorBrown, Instructions: true},
	}
}

// MuteButton returns the clickable mute area. It sits higher during play.
func MuteButton(config Config, playing bool) Rect {
	y := 20.0
	if playing {
		y = 10
	}
	return Rect{X: float64(config.ScreenWidth) - 120, Y: y, W: 40, H: 40}
}

// MuteLabel returns the hint shown next to the mute button
func MuteLabel(muted bool) string {
	if muted {
		return "M to Unmute"
	}
	return "M to Mute"
}

// InstructionLines is the help screen text
var InstructionLines = []string{
	"Instructions:",
	"Press SPACE to fly up",
	"Press S to shoot",
	"Avoid buildings/enemies",
	"Press any key to return",
	"M to mute/unmute song",
}

const (
	titleText    = "SKYLINE RUN"
	gameOverText = "Game Over"
	retryText    = "Press R to Retry or Q to Quit"
	menuHintText = "ESC for menu"
)
