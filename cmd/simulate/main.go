package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"skyline/game"
)

func main() {
	difficulty := flag.String("difficulty", "easy", "Preset to simulate: easy, medium or hard")
	rounds := flag.Int("rounds", 10, "Number of rounds to run")
	ticks := flag.Int("ticks", 60*60*5, "Tick limit per round")
	seed := flag.Int64("seed", 1, "Seed of the first round; round i uses seed+i")
	configPath := flag.String("config", "", "YAML file overriding the default settings")
	idle := flag.Bool("idle", false, "Never jump or shoot")
	verbose := flag.Bool("v", false, "Enable log output")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	profiles, err := game.ProfilesFromConfig(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	d, ok := game.ParseDifficulty(*difficulty)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown difficulty %q\n", *difficulty)
		os.Exit(2)
	}

	policy := game.Autopilot
	if *idle {
		policy = game.Idle
	}

	profile := profiles.Lookup(d)
	fmt.Printf("Simulating %d %s rounds (gravity %.1f, building speed %.0f, enemy speed %.0f)\n",
		*rounds, profile.Name, profile.Gravity, profile.BuildingSpeed, profile.EnemySpeed)

	start := time.Now()
	total, best := 0, 0
	for i := 0; i < *rounds; i++ {
		res, err := game.Simulate(config, profile, *seed+int64(i), *ticks, policy)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Printf("[Simulate] round %d: %+v", i, res)
		fmt.Printf("round %3d  score %4d  kills %3d  shots %4d  ticks %6d  defeat %t\n",
			i, res.Score, res.Kills, res.Bullets, res.Ticks, res.Defeat)
		total += res.Score
		best = max(best, res.Score)
	}

	if *rounds > 0 {
		fmt.Printf("mean score %.1f, best %d, %v elapsed\n",
			float64(total)/float64(*rounds), best, time.Since(start).Round(time.Millisecond))
	}
}
