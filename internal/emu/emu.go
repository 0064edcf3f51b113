// Package emu wires the cartridge, bus, and CPU into a runnable
// machine and drives the fixed-cycle-budget frame loop from spec §5.
package emu

import (
	"fmt"
	"sync"

	"github.com/arlojohansen/dmgcore/internal/bus"
	"github.com/arlojohansen/dmgcore/internal/cart"
	"github.com/arlojohansen/dmgcore/internal/cpu"
	"github.com/arlojohansen/dmgcore/internal/joypad"
	"github.com/arlojohansen/dmgcore/internal/ppu"
)

// CyclesPerFrame is the nominal CPU cycle budget for one 60 Hz DMG
// frame, per spec §6.
const CyclesPerFrame = 69905

// Machine is the composition root: cartridge + bus + CPU, plus the
// frame-cycle accumulator and a mutex guarding joypad input injected
// from outside the emulation loop, per spec §5.
type Machine struct {
	Cart cart.Cartridge
	Bus  *bus.Bus
	CPU  *cpu.CPU

	frameCycles int

	mu sync.Mutex
}

// New loads rom and returns a freshly reset Machine.
func New(rom []byte) (*Machine, error) {
	c, err := cart.New(rom)
	if err != nil {
		return nil, fmt.Errorf("emu: load cartridge: %w", err)
	}

	return &Machine{
		Cart: c,
		Bus:  bus.New(c),
		CPU:  cpu.New(),
	}, nil
}

// RunFrame executes CPU instructions, advancing peripherals and
// servicing interrupts, until one frame's cycle budget is spent, per
// the loop in spec §5.
func (m *Machine) RunFrame() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for m.frameCycles < CyclesPerFrame {
		cycles := m.CPU.RunCycle(m.Bus)
		m.Bus.Update(cycles)
		m.CPU.CheckInterrupts(m.Bus)
		m.frameCycles += cycles
	}
	m.frameCycles -= CyclesPerFrame
}

// Framebuffer returns the PPU's current 160x144 rendered frame.
func (m *Machine) Framebuffer() *ppu.Framebuffer {
	return &m.Bus.PPU.Screen
}

// Press and Release forward joypad edge events; both are safe to call
// from outside the emulation loop between frames, per spec §5.
func (m *Machine) Press(input joypad.Input) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Bus.Joypad.Press(input)
}

func (m *Machine) Release(input joypad.Input) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Bus.Joypad.Release(input)
}
