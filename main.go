package main

import (
	"flag"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"skyline/game"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default settings")
	verbose := flag.Bool("v", false, "Enable log output")
	profileDir := flag.String("profile-dir", "", "Capture CPU profiles here when the tick rate drops")
	seed := flag.Int64("seed", 0, "Random seed for spawning (0 uses the clock)")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	profiles, err := game.ProfilesFromConfig(config)
	if err != nil {
		log.Fatal(err)
	}

	sound, err := game.NewSoundBoard(audio.NewContext(game.SampleRate), config.AssetsDir)
	if err != nil {
		log.Fatal(err)
	}
	sprites := game.LoadSprites(config)
	// the animation decides how long an explosion lasts
	config.ExplosionFrames = len(sprites.Explosion)

	profiler, err := game.NewProfiler(*profileDir, config.TPS)
	if err != nil {
		log.Fatal(err)
	}

	g, err := game.NewGame(config, profiles, sprites, game.GameOptions{
		Audio:    sound,
		Profiler: profiler,
		Seed:     *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Skyline Run")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
