package main

import (
	"flag"
	"fmt"
	"log"

	"spacewaves/game"
)

func main() {
	configPath := flag.String("config", "", "config file (yaml, toml or json)")
	seed := flag.Int64("seed", 0, "random seed (0 = config or clock)")
	frames := flag.Int("frames", 60*180, "frames to simulate")
	dt := flag.Float64("dt", 1.0/60, "seconds per frame")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	anims := game.HeadlessAnimations()
	if err := game.ValidateAnimations(anims, game.RequiredAnimations()); err != nil {
		log.Fatal(err)
	}

	world := game.NewWorld(config, anims)
	pilot := &autopilot{}
	wave := world.Waves.Number()

	for frame := 0; frame < *frames; frame++ {
		world.Step(pilot.next(world, *dt), *dt)
		world.TakeShake()

		if n := world.Waves.Number(); n != wave {
			logStats(world, frame, *dt)
			wave = n
		}
		if world.State == game.GameOver {
			break
		}
	}
	logStats(world, -1, *dt)
}

func logStats(w *game.World, frame int, dt float64) {
	s := w.Stats
	when := "end"
	if frame >= 0 {
		when = fmt.Sprintf("t=%.1fs", float64(frame)*dt)
	}
	health := 0
	if p := w.Player(); p != nil {
		health = p.Health
	}
	log.Printf("[%s] %s wave %d: score %d, asteroids %d, ufos %d, shots %d, damage %d, health %d, live enemies %d",
		w.RunID, when, w.Waves.Number(), s.Score, s.AsteroidsDestroyed, s.UFOsDestroyed, s.ShotsFired,
		s.DamageTaken, health, w.Count(game.KindAsteroid)+w.Count(game.KindUFO))
}
