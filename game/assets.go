package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	_ "image/png" // Register PNG format
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	xdraw "golang.org/x/image/draw"
)

// Sprites holds every image the renderer needs
type Sprites struct {
	Background *ebiten.Image
	Plane      *ebiten.Image
	Building   *ebiten.Image
	Enemy      *ebiten.Image
	Ground     *ebiten.Image
	Explosion  []*ebiten.Image
}

// LoadSprites reads images from config.AssetsDir, generating any that are missing
func LoadSprites(config Config) *Sprites {
	w, h := config.ScreenWidth, config.ScreenHeight
	ground := int(config.GroundHeight)
	size := int(config.ExplosionSize)

	s := &Sprites{
		Background: loadOr(config.AssetsDir, "background.png", w, h, func() *ebiten.Image { return genBackground(w, h) }),
		Plane: loadOr(config.AssetsDir, "plane.png", int(config.PlaneWidth), int(config.PlaneHeight),
			func() *ebiten.Image { return genPlane(int(config.PlaneWidth), int(config.PlaneHeight)) }),
		// buildings are stretched per draw, keep the source resolution
		Building: loadOr(config.AssetsDir, "skyscraper.png", 0, 0, func() *ebiten.Image { return genBuilding(80, 400) }),
		Enemy: loadOr(config.AssetsDir, "enemy.png", int(config.EnemySize), int(config.EnemySize),
			func() *ebiten.Image { return genEnemy(int(config.EnemySize)) }),
		Ground: loadOr(config.AssetsDir, "ground.png", w, ground, func() *ebiten.Image { return genGround(w, ground) }),
	}

	frames, err := loadGIFFrames(filepath.Join(config.AssetsDir, "explosion.gif"), size)
	if err != nil {
		log.Printf("[Assets] %v, generating %d explosion frames", err, config.ExplosionFrames)
		s.Explosion = genExplosion(size, config.ExplosionFrames)
	} else {
		s.Explosion = make([]*ebiten.Image, len(frames))
		for i, f := range frames {
			s.Explosion[i] = ebiten.NewImageFromImage(f)
		}
	}
	return s
}

// ExplosionFrame returns frame i, or nil when out of range
func (s *Sprites) ExplosionFrame(i int) *ebiten.Image {
	if i < 0 || i >= len(s.Explosion) {
		return nil
	}
	return s.Explosion[i]
}

// loadOr decodes dir/name scaled to w x h (0 keeps the source size), or calls gen
func loadOr(dir, name string, w, h int, gen func() *ebiten.Image) *ebiten.Image {
	img, err := loadImage(filepath.Join(dir, name))
	if err != nil {
		log.Printf("[Assets] %v, using generated %s", err, name)
		return gen()
	}
	if w > 0 && h > 0 {
		img = scaleImage(img, w, h)
	}
	return ebiten.NewImageFromImage(img)
}

func loadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// scaleImage resamples src to w x h
func scaleImage(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

func loadGIFFrames(path string, size int) ([]image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation %s: %w", path, err)
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode animation %s: %w", path, err)
	}
	frames := gifFrames(g)
	if len(frames) == 0 {
		return nil, fmt.Errorf("animation %s has no frames", path)
	}
	for i, f := range frames {
		frames[i] = scaleImage(f, size, size)
	}
	return frames, nil
}

// gifFrames composites the GIF's partial frames into full images
func gifFrames(g *gif.GIF) []image.Image {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() && len(g.Image) > 0 {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)
	frames := make([]image.Image, 0, len(g.Image))
	for i, frame := range g.Image {
		xdraw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, xdraw.Over)
		snapshot := image.NewRGBA(bounds)
		xdraw.Draw(snapshot, bounds, canvas, bounds.Min, xdraw.Src)
		frames = append(frames, snapshot)

		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalBackground {
			xdraw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
		}
	}
	return frames
}

func genBackground(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	top := color.RGBA{120, 180, 235, 255}
	bottom := color.RGBA{230, 240, 250, 255}
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		vector.DrawFilledRect(img, 0, float32(y), float32(w), 1, lerpColor(top, bottom, t), false)
	}
	return img
}

func genPlane(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	body := color.RGBA{200, 200, 210, 255}
	// fuselage, tail fin and wing
	vector.DrawFilledRect(img, 0, fh*0.35, fw*0.85, fh*0.3, body, true)
	vector.DrawFilledCircle(img, fw*0.85, fh*0.5, fh*0.15, body, true)
	vector.DrawFilledRect(img, 0, fh*0.05, fw*0.15, fh*0.35, colorRed, true)
	vector.DrawFilledRect(img, fw*0.35, fh*0.5, fw*0.2, fh*0.45, color.RGBA{150, 150, 160, 255}, true)
	return img
}

func genBuilding(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(color.RGBA{70, 80, 95, 255})
	window := color.RGBA{250, 230, 140, 255}
	for y := 10; y+12 < h; y += 22 {
		for x := 10; x+12 < w; x += 22 {
			vector.DrawFilledRect(img, float32(x), float32(y), 12, 12, window, false)
		}
	}
	return img
}

func genEnemy(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, color.RGBA{60, 60, 60, 255}, true)
	vector.DrawFilledCircle(img, r*0.7, r*0.8, r*0.2, colorRed, true)
	vector.DrawFilledCircle(img, r*1.3, r*0.8, r*0.2, colorRed, true)
	return img
}

func genGround(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(colorBrown)
	vector.DrawFilledRect(img, 0, 0, float32(w), float32(h)/5, color.RGBA{60, 160, 60, 255}, false)
	return img
}

// genExplosion renders an expanding, fading fireball
func genExplosion(size, frames int) []*ebiten.Image {
	out := make([]*ebiten.Image, frames)
	c := float32(size) / 2
	for i := range out {
		t := float64(i+1) / float64(frames)
		img := ebiten.NewImage(size, size)
		alpha := uint8(255 * (1 - t*0.8))
		outer := float32(math.Sqrt(t)) * c
		vector.DrawFilledCircle(img, c, c, outer, color.NRGBA{255, 120, 0, alpha}, true)
		vector.DrawFilledCircle(img, c, c, outer*0.6, color.NRGBA{255, 230, 80, alpha}, true)
		out[i] = img
	}
	return out
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
