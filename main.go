package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/doomerang-gimmicks/config"
	"github.com/automoto/doomerang-gimmicks/scenes"
)

const appName = "doomerang-gimmicks"

func main() {
	levelPath := flag.String("level", "assets/levels/gimmicks.tmx", "TMX room to simulate")
	configPath := flag.String("config", "", "YAML tuning file (empty = saved tuning or defaults)")
	ticks := flag.Int("ticks", 600, "Number of ticks to simulate (0 = until interrupted, realtime only)")
	realtime := flag.Bool("realtime", false, "Tick at the configured rate instead of as fast as possible")
	walk := flag.Float64("walk", 0, "Scripted player direction: -1, 0 or 1")
	grab := flag.Bool("grab", false, "Let hooks carry the player")
	saveTuning := flag.Bool("save-tuning", false, "Persist the loaded tuning as the user default")
	clearTuning := flag.Bool("clear-tuning", false, "Forget the saved tuning before loading")
	flag.Parse()

	store, err := config.OpenStore(appName)
	if err != nil {
		log.Printf("Warning: Could not open tuning store: %v", err)
	}

	if *clearTuning && store.Saved() {
		if err := store.Clear(); err == nil {
			log.Printf("Cleared saved tuning for %s", appName)
		}
	}

	cfg, err := store.Select(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *saveTuning && store != nil {
		if err := store.Save(cfg); err == nil {
			log.Printf("Saved tuning for %s", appName)
		}
	}

	dir, file := filepath.Split(*levelPath)
	if dir == "" {
		dir = "."
	}
	room, err := scenes.LoadRoom(os.DirFS(dir), file, cfg)
	if err != nil {
		log.Fatalf("Failed to load room: %v", err)
	}
	room.SetPlayerInput(*walk, *grab)

	if !*realtime && *ticks <= 0 {
		log.Fatalf("-ticks must be positive unless -realtime is set")
	}
	loop := scenes.NewGameLoop(room, cfg.Room.TickRate, *ticks)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down simulation...")
		loop.Stop()
	}()

	if *realtime {
		loop.Run()
	} else {
		loop.RunFast()
	}

	stats := room.Stats()
	log.Printf("Room %s: %d ticks, %d bodies left, %d crushed, %d truncated resolutions",
		stats.Name, stats.Tick, stats.Bodies, len(stats.Crushes), stats.Truncations)
	for _, c := range stats.Crushes {
		log.Printf("  tick %d: %s %d crushed", c.Tick, c.Kind, c.ID)
	}
	for name, n := range stats.Triggers {
		log.Printf("  trigger %q entered %d times", name, n)
	}
}
