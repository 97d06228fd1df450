package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"skyline/game"
)

// shape paints a placeholder into img
type shape func(img *image.RGBA, clr color.RGBA)

func createPlaceholderImage(filename string, width, height int, clr color.RGBA, paint shape) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	paint(img, clr)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func fill(img *image.RGBA, clr color.RGBA) {
	xdraw.Draw(img, img.Bounds(), image.NewUniform(clr), image.Point{}, xdraw.Src)
}

// plane draws a right-facing wedge with a dark outline
func plane(img *image.RGBA, clr color.RGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	dark := color.RGBA{0, 0, 0, 255}
	for y := 0; y < h; y++ {
		rel := abs(float64(y)-float64(h)/2) / (float64(h) / 2)
		edge := int(float64(w) * (1 - rel))
		for x := 0; x < edge; x++ {
			img.Set(x, y, clr)
		}
		if edge > 0 && edge <= w {
			img.Set(edge-1, y, dark)
		}
	}
}

// building fills the face and cuts a grid of windows
func building(img *image.RGBA, clr color.RGBA) {
	fill(img, clr)
	window := image.NewUniform(color.RGBA{250, 230, 140, 255})
	b := img.Bounds()
	for y := 10; y+12 < b.Dy(); y += 22 {
		for x := 10; x+12 < b.Dx(); x += 22 {
			xdraw.Draw(img, image.Rect(x, y, x+12, y+12), window, image.Point{}, xdraw.Src)
		}
	}
}

// disc draws a filled circle touching the image edges
func disc(img *image.RGBA, clr color.RGBA) {
	b := img.Bounds()
	r := float64(b.Dx()) / 2
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, clr)
			}
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default settings")
	out := flag.String("out", "", "Output directory (defaults to the configured assets dir)")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	dir := *out
	if dir == "" {
		dir = config.AssetsDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}

	images := []struct {
		name  string
		w, h  int
		clr   color.RGBA
		paint shape
	}{
		{"background.png", config.ScreenWidth, config.ScreenHeight, color.RGBA{150, 200, 240, 255}, fill},
		{"plane.png", int(config.PlaneWidth), int(config.PlaneHeight), color.RGBA{200, 200, 210, 255}, plane},
		{"skyscraper.png", int(config.BuildingWidth), 400, color.RGBA{70, 80, 95, 255}, building},
		{"enemy.png", int(config.EnemySize), int(config.EnemySize), color.RGBA{60, 60, 60, 255}, disc},
		{"ground.png", config.ScreenWidth, int(config.GroundHeight), color.RGBA{139, 69, 19, 255}, fill},
	}
	for _, img := range images {
		path := filepath.Join(dir, img.name)
		if err := createPlaceholderImage(path, img.w, img.h, img.clr, img.paint); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		fmt.Println("wrote", path)
	}
}
