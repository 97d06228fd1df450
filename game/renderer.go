package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Align positions text relative to its anchor
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle controls how DrawText renders a string
type TextStyle struct {
	Size  float64 // scale of the base 7x13 face
	Color color.Color
	Align Align
}

var (
	hudStyle   = TextStyle{Size: 2, Color: colorBlack}
	muteStyle  = TextStyle{Size: 1.5, Color: colorBlack, Align: AlignCenter}
	titleStyle = TextStyle{Size: 3, Color: colorRed, Align: AlignCenter}
	bodyStyle  = TextStyle{Size: 2, Color: colorBlack, Align: AlignCenter}
	helpStyle  = TextStyle{Size: 2, Color: colorBlack}
)

// Surface receives the draw calls of a frame
type Surface interface {
	DrawBackground()
	DrawPlane(r Rect)
	DrawBuilding(r Rect)
	DrawEnemy(r Rect)
	DrawBullet(r Rect)
	DrawExplosion(e *Explosion)
	DrawGroundTile(x, y float64)
	DrawText(s string, x, y float64, style TextStyle)
	DrawButton(b Button)
	GroundTileWidth() float64
}

// Render draws the round: background, plane, buildings, enemies, bullets,
// explosions, ground, then the HUD
func (r *Round) Render(s Surface) {
	s.DrawBackground()
	s.DrawPlane(r.plane.Rect)
	for _, b := range r.world.Buildings {
		s.DrawBuilding(b.Rect)
	}
	for _, e := range r.world.Enemies {
		s.DrawEnemy(e.Rect)
	}
	for _, b := range r.world.Bullets {
		s.DrawBullet(b.Rect)
	}
	for _, e := range r.world.Explosions {
		s.DrawExplosion(e)
	}
	drawGround(s, r.config)

	s.DrawText(fmt.Sprintf("Score: %d", r.score), 10, 10, hudStyle)
	s.DrawText(fmt.Sprintf("Top Score: %d", r.session.TopScore), 10, 40, hudStyle)
	mute := MuteButton(r.config, true)
	s.DrawText(MuteLabel(r.session.Muted), mute.CenterX(), mute.CenterY(), muteStyle)

	if r.state != RoundRunning {
		r.finalFrameRendered = true
	}
}

// drawGround tiles the ground texture across the screen
func drawGround(s Surface, config Config) {
	tile := s.GroundTileWidth()
	if tile <= 0 {
		tile = float64(config.ScreenWidth)
	}
	for x := 0.0; x < float64(config.ScreenWidth); x += tile {
		s.DrawGroundTile(x, config.GroundLine())
	}
}

// NopSurface discards draw calls; headless runs use it to complete frames
type NopSurface struct{}

func (NopSurface) DrawBackground() {}
func (NopSurface) DrawPlane(Rect) {}
func (NopSurface) DrawBuilding(Rect) {}
func (NopSurface) DrawEnemy(Rect) {}
func (NopSurface) DrawBullet(Rect) {}
func (NopSurface) DrawExplosion(*Explosion) {}
func (NopSurface) DrawGroundTile(float64, float64) {}
func (NopSurface) DrawText(string, float64, float64, TextStyle) {}
func (NopSurface) DrawButton(Button) {}
func (NopSurface) GroundTileWidth() float64 { return 0 }

// ScreenSurface draws onto an ebiten image using the loaded sprites
type ScreenSurface struct {
	screen  *ebiten.Image
	sprites *Sprites
	face    text.Face
	debug   *DebugState
}

// NewFace returns the bitmap face used for all text
func NewFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// NewScreenSurface wraps a frame's target image
func NewScreenSurface(screen *ebiten.Image, sprites *Sprites, face text.Face, debug *DebugState) *ScreenSurface {
	return &ScreenSurface{screen: screen, sprites: sprites, face: face, debug: debug}
}

func (s *ScreenSurface) DrawBackground() {
	s.screen.Fill(colorWhite)
	s.screen.DrawImage(s.sprites.Background, nil)
}

func (s *ScreenSurface) DrawPlane(r Rect) {
	s.drawSprite(s.sprites.Plane, r)
}

func (s *ScreenSurface) DrawBuilding(r Rect) {
	s.drawSprite(s.sprites.Building, r)
}

func (s *ScreenSurface) DrawEnemy(r Rect) {
	s.drawSprite(s.sprites.Enemy, r)
}

func (s *ScreenSurface) DrawBullet(r Rect) {
	vector.DrawFilledRect(s.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorBullet, false)
	s.drawHitbox(r)
}

func (s *ScreenSurface) DrawExplosion(e *Explosion) {
	frame := s.sprites.ExplosionFrame(e.Index)
	if frame == nil {
		return
	}
	w := float64(frame.Bounds().Dx())
	h := float64(frame.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(e.X-w/2, e.Y-h/2)
	s.screen.DrawImage(frame, op)
}

func (s *ScreenSurface) DrawGroundTile(x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.screen.DrawImage(s.sprites.Ground, op)
}

func (s *ScreenSurface) GroundTileWidth() float64 {
	return float64(s.sprites.Ground.Bounds().Dx())
}

func (s *ScreenSurface) DrawText(str string, x, y float64, style TextStyle) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(style.Size, style.Size)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(style.Color)
	if style.Align == AlignCenter {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(s.screen, str, s.face, op)
}

func (s *ScreenSurface) DrawButton(b Button) {
	r := b.Rect
	vector.DrawFilledRect(s.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), b.Color, false)
	s.DrawText(b.Label, r.CenterX(), r.CenterY(), TextStyle{Size: 2, Color: colorWhite, Align: AlignCenter})
}

// drawSprite stretches img over r
func (s *ScreenSurface) drawSprite(img *ebiten.Image, r Rect) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	s.screen.DrawImage(img, op)
	s.drawHitbox(r)
}

func (s *ScreenSurface) drawHitbox(r Rect) {
	if s.debug == nil || !s.debug.ShowHitboxes {
		return
	}
	vector.StrokeRect(s.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, colorGreen, false)
}
