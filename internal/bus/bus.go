// Package bus implements the memory-mapped address space tying the
// cartridge, PPU, timer, and joypad together, plus interrupt-flag
// aggregation and OAM DMA, per spec §4.6.
package bus

import (
	"github.com/arlojohansen/dmgcore/internal/cart"
	"github.com/arlojohansen/dmgcore/internal/joypad"
	"github.com/arlojohansen/dmgcore/internal/ppu"
	"github.com/arlojohansen/dmgcore/internal/timer"
)

const (
	ifAddr = 0xFF0F
	ieAddr = 0xFFFF

	IntVBlank = 1 << 0
	IntSTAT   = 1 << 1
	IntTimer  = 1 << 2
	IntJoypad = 1 << 4
)

// Bus owns the whole 64 KiB address space and every memory-mapped
// peripheral. It is the only component that drains peripheral
// IntRequest fields into IF, per spec §9's acyclic-ownership design.
type Bus struct {
	Cart   cart.Cartridge
	PPU    *ppu.PPU
	Timer  *timer.Timer
	Joypad *joypad.Joypad

	mem [0x10000]byte
}

func New(cartridge cart.Cartridge) *Bus {
	b := &Bus{
		Cart:   cartridge,
		PPU:    ppu.New(),
		Timer:  timer.New(),
		Joypad: joypad.New(),
	}
	return b
}

func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr <= 0x7FFF:
		return b.Cart.Read(addr)
	case addr >= 0x8000 && addr <= 0x9FFF:
		return b.PPU.CPURead(addr)
	case addr >= 0xA000 && addr <= 0xBFFF:
		return b.Cart.Read(addr)
	case addr >= 0xE000 && addr <= 0xFDFF:
		return b.Read(addr - 0x2000)
	case addr >= 0xFE00 && addr <= 0xFE9F:
		return b.PPU.CPURead(addr)
	case addr >= 0xFEA0 && addr <= 0xFEFF:
		return 0xFF
	case addr == 0xFF00:
		return b.Joypad.Read(addr)
	case addr >= 0xFF04 && addr <= 0xFF07:
		return b.Timer.Read(addr)
	case addr >= 0xFF40 && addr <= 0xFF4B:
		return b.PPU.CPURead(addr)
	default:
		return b.mem[addr]
	}
}

func (b *Bus) Write(addr uint16, value byte) {
	switch {
	case addr <= 0x7FFF:
		b.Cart.Write(addr, value)
	case addr >= 0x8000 && addr <= 0x9FFF:
		b.PPU.CPUWrite(addr, value)
	case addr >= 0xA000 && addr <= 0xBFFF:
		b.Cart.Write(addr, value)
	case addr >= 0xE000 && addr <= 0xFDFF:
		b.mem[addr] = value
		b.Write(addr-0x2000, value)
	case addr >= 0xFE00 && addr <= 0xFE9F:
		b.PPU.CPUWrite(addr, value)
	case addr >= 0xFEA0 && addr <= 0xFEFF:
		// Restricted: discarded.
	case addr == 0xFF00:
		b.Joypad.Write(addr, value)
	case addr == 0xFF04:
		b.Timer.Write(addr, value)
	case addr >= 0xFF05 && addr <= 0xFF07:
		b.Timer.Write(addr, value)
	case addr == 0xFF46:
		b.dmaTransfer(value)
	case addr >= 0xFF40 && addr <= 0xFF4B:
		b.PPU.CPUWrite(addr, value)
	default:
		b.mem[addr] = value
	}
}

func (b *Bus) Read16(addr uint16) uint16 {
	return uint16(b.Read(addr)) | uint16(b.Read(addr+1))<<8
}

func (b *Bus) Write16(addr uint16, value uint16) {
	b.Write(addr, byte(value))
	b.Write(addr+1, byte(value>>8))
}

// dmaTransfer copies 160 bytes from (value<<8) into OAM (0xFE00-0xFE9F),
// per spec §4.6. Implemented through Read/Write, matching real hardware
// bus contention semantics closely enough for this core's purposes.
func (b *Bus) dmaTransfer(value byte) {
	src := uint16(value) << 8
	for i := uint16(0); i < 0xA0; i++ {
		b.Write(0xFE00+i, b.Read(src+i))
	}
}

func (b *Bus) IE() byte    { return b.mem[ieAddr] }
func (b *Bus) IF() byte    { return b.mem[ifAddr] }
func (b *Bus) SetIF(v byte) { b.mem[ifAddr] = v }

func (b *Bus) RequestInterrupt(bit byte) {
	b.mem[ifAddr] |= bit
}

// Update advances every peripheral by cycles CPU cycles and drains
// their edge-triggered interrupt requests into IF, per spec §4.6.
func (b *Bus) Update(cycles int) {
	b.Timer.Update(cycles)
	b.mem[ifAddr] |= b.Timer.IntRequest
	b.Timer.IntRequest = 0

	b.PPU.Update(cycles)
	b.mem[ifAddr] |= b.PPU.IntRequest
	b.PPU.IntRequest = 0

	b.mem[ifAddr] |= b.Joypad.IntRequest
	b.Joypad.IntRequest = 0
}
