package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"econogenesis/audio"
	"econogenesis/config"
	"econogenesis/engine"
)

func main() {
	cfg := config.Load()

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash, otherwise the
	// stack trace lands on a raw-mode screen.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "ECONOGENESIS CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sound := audio.NewPlayer(cfg.Audio)
	defer sound.Close()
	if !sound.Ready() {
		log.Println("audio unavailable, continuing without sound")
	}

	game := engine.NewGame(cfg, screen, sound)
	log.Printf("starting game loop at %d FPS", cfg.TargetFPS)

	runErr := game.Run(context.Background())
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "econogenesis: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Println("Econogenesis exited successfully!")
}
