package main

import (
	"flag"
	"log"

	"spacewaves/game"
)

func main() {
	configPath := flag.String("config", "", "config file (yaml, toml or json)")
	debug := flag.Bool("debug", false, "start with collider outlines visible")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		config.Debug = true
	}

	anims := game.PlaceholderAnimations()
	if err := game.ValidateAnimations(anims, game.RequiredAnimations()); err != nil {
		log.Fatal(err)
	}

	if err := game.RunGame(config, anims); err != nil {
		log.Fatal(err)
	}
}
