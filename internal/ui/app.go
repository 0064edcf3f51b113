// Package ui provides the windowed ebiten front-end for the emulator
// core: keyboard input, framebuffer presentation, and frame pacing.
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/arlojohansen/dmgcore/internal/emu"
	"github.com/arlojohansen/dmgcore/internal/joypad"
)

const (
	screenWidth  = 160
	screenHeight = 144
)

var keymap = map[ebiten.Key]joypad.Input{
	ebiten.KeyArrowRight: joypad.Right,
	ebiten.KeyArrowLeft:  joypad.Left,
	ebiten.KeyArrowUp:    joypad.Up,
	ebiten.KeyArrowDown:  joypad.Down,
	ebiten.KeyZ:          joypad.A,
	ebiten.KeyX:          joypad.B,
	ebiten.KeyBackspace:  joypad.Select,
	ebiten.KeyEnter:      joypad.Start,
}

// App adapts a Machine to the ebiten.Game interface.
type App struct {
	Config Config

	machine *emu.Machine
	pixels  []byte
	image   *ebiten.Image
	paused  bool
}

// NewApp returns an App ready to run machine under ebiten.RunGame.
func NewApp(cfg Config, machine *emu.Machine) *App {
	cfg.Defaults()
	return &App{
		Config:  cfg,
		machine: machine,
		pixels:  make([]byte, screenWidth*screenHeight*4),
		image:   ebiten.NewImage(screenWidth, screenHeight),
	}
}

// Update steps one frame. A panic from the CPU's unknown-opcode
// diagnostic is recovered here and returned as an error, so
// ebiten.RunGame unwinds cleanly instead of crashing the process.
func (a *App) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ui: %v", r)
		}
	}()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}
	for key, input := range keymap {
		switch {
		case inpututil.IsKeyJustPressed(key):
			a.machine.Press(input)
		case inpututil.IsKeyJustReleased(key):
			a.machine.Release(input)
		}
	}
	if !a.paused {
		a.machine.RunFrame()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.machine.Framebuffer().RGBA(a.pixels)
	a.image.WritePixels(a.pixels)

	op := &ebiten.DrawImageOptions{}
	scale := float64(a.Config.Scale)
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(a.image, op)

	if a.paused {
		ebitenutil.DebugPrint(screen, "paused")
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth * a.Config.Scale, screenHeight * a.Config.Scale
}

// Run starts the ebiten loop. It blocks until the window is closed.
func (a *App) Run() error {
	ebiten.SetWindowSize(screenWidth*a.Config.Scale, screenHeight*a.Config.Scale)
	ebiten.SetWindowTitle(a.Config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("ui: run game: %w", err)
	}
	return nil
}
