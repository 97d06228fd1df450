package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Game adapts a Session to ebiten's Update/Draw/Layout loop
type Game struct {
	config  Config
	session *Session
	input   InputSource
	sprites *Sprites
	face    text.Face
	debug   *DebugState

	// Performance profiling, nil when disabled
	profiler      *Profiler
	lastTPSSample time.Time
}

// GameOptions carries the optional collaborators of NewGame
type GameOptions struct {
	Audio    AudioPlayer
	Input    InputSource
	Profiler *Profiler
	Seed     int64
}

// NewGame creates a game showing the start menu
func NewGame(config Config, profiles ProfileTable, sprites *Sprites, opts GameOptions) (*Game, error) {
	if sprites == nil {
		return nil, errors.New("game: sprites are required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	input := opts.Input
	if input == nil {
		input = NewKeyboardInput()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		config:        config,
		session:       NewSession(config, profiles, opts.Audio, rand.New(rand.NewSource(seed))),
		input:         input,
		sprites:       sprites,
		face:          NewFace(),
		debug:         &DebugState{},
		profiler:      opts.Profiler,
		lastTPSSample: time.Now(),
	}, nil
}

// Update advances the session by one tick
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.Toggle(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.debug.Toggle(2)
	}

	if err := g.session.Update(g.input.Poll()); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}

	// Sample the tick rate twice a second
	if now := time.Now(); now.Sub(g.lastTPSSample) >= 500*time.Millisecond {
		g.lastTPSSample = now
		g.profiler.Observe(ebiten.ActualTPS(), now)
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(NewScreenSurface(screen, g.sprites, g.face, g.debug))
	if g.debug.ShowTPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS()), 10, g.config.ScreenHeight-20)
	}
}

// Layout keeps the logical screen size fixed
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

// Session exposes the underlying session
func (g *Game) Session() *Session { return g.session }
