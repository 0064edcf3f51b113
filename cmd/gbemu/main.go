// Command gbemu runs a DMG ROM in a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/arlojohansen/dmgcore/internal/emu"
	"github.com/arlojohansen/dmgcore/internal/ui"
)

func main() {
	romPath := flag.String("rom", "", "path to a .gb ROM image")
	scale := flag.Int("scale", 3, "window scale factor")
	title := flag.String("title", "gbemu", "window title")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "gbemu: -rom is required")
		os.Exit(2)
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("gbemu: read rom: %v", err)
	}

	machine, err := emu.New(rom)
	if err != nil {
		log.Fatalf("gbemu: %v", err)
	}

	app := ui.NewApp(ui.Config{Title: *title, Scale: *scale}, machine)
	if err := app.Run(); err != nil {
		log.Fatalf("gbemu: %v", err)
	}
}
