// Command cpurunner drives the emulator core headlessly for a fixed
// number of frames, for use in automated opcode/PPU conformance tests.
package main

import (
	"flag"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/arlojohansen/dmgcore/internal/emu"
)

func main() {
	romPath := flag.String("rom", "", "path to a .gb ROM image")
	frames := flag.Int("frames", 60, "number of frames to run before stopping")
	pngOut := flag.String("png", "", "optional path to write the final frame as a PNG")
	expect := flag.String("expect", "", "optional expected framebuffer CRC32, as 8 hex digits")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "cpurunner: -rom is required")
		os.Exit(2)
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("cpurunner: read rom: %v", err)
	}

	machine, err := emu.New(rom)
	if err != nil {
		log.Fatalf("cpurunner: %v", err)
	}

	runFrames(machine, *frames)

	pixels := make([]byte, 160*144*4)
	machine.Framebuffer().RGBA(pixels)
	sum := crc32.ChecksumIEEE(pixels)

	if *pngOut != "" {
		if err := writePNG(*pngOut, pixels); err != nil {
			log.Fatalf("cpurunner: %v", err)
		}
	}

	fmt.Printf("crc32=%08x frames=%d\n", sum, *frames)

	if *expect != "" {
		if fmt.Sprintf("%08x", sum) != *expect {
			fmt.Fprintf(os.Stderr, "cpurunner: checksum mismatch: got %08x, want %s\n", sum, *expect)
			os.Exit(1)
		}
	}
}

// runFrames drives the machine and turns the CPU's unknown-opcode panic
// into a fatal diagnostic, rather than an unhandled crash, per the
// interpreter's panic-with-diagnostic contract.
func runFrames(machine *emu.Machine, frames int) {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("cpurunner: %v", r)
		}
	}()
	for i := 0; i < frames; i++ {
		machine.RunFrame()
	}
}

func writePNG(path string, pixels []byte) error {
	img := &image.RGBA{
		Pix:    pixels,
		Stride: 160 * 4,
		Rect:   image.Rect(0, 0, 160, 144),
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
