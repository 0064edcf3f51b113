// Package cpu implements the SM83 fetch-decode-execute loop: the full
// primary and CB-prefixed opcode tables, ALU flag semantics, and
// interrupt servicing, per spec §4.7.
package cpu

import (
	"fmt"

	"github.com/arlojohansen/dmgcore/internal/bus"
	"github.com/arlojohansen/dmgcore/internal/registers"
)

// Interrupt vector addresses, indexed by bit position in IF/IE.
var vectors = [5]uint16{0x40, 0x48, 0x50, 0x58, 0x60}

// CPU holds the register file and the two CPU-local flags that don't
// belong to any peripheral: the interrupt master enable and halted.
type CPU struct {
	Reg    registers.File
	IME    bool
	Halted bool
}

// New returns a CPU at its post-boot power-on state, per spec §4.7.
func New() *CPU {
	c := &CPU{IME: true, Halted: false}
	c.Reg.Reset()
	return c
}

// RunCycle executes exactly one instruction (or 4 idle cycles while
// halted) and returns its cycle cost, per the algorithm in spec §4.7.
func (c *CPU) RunCycle(b *bus.Bus) int {
	if c.Halted {
		return 4
	}

	opcode := c.fetch8(b)
	if opcode == 0xCB {
		return c.execCB(b, c.fetch8(b))
	}
	return c.exec(b, opcode)
}

func (c *CPU) fetch8(b *bus.Bus) byte {
	v := b.Read(c.Reg.PC)
	c.Reg.PC++
	return v
}

func (c *CPU) fetch16(b *bus.Bus) uint16 {
	v := b.Read16(c.Reg.PC)
	c.Reg.PC += 2
	return v
}

// CheckInterrupts services every pending, enabled interrupt, per spec
// §4.7. Consumes no CPU cycles of its own.
func (c *CPU) CheckInterrupts(b *bus.Bus) {
	if !c.IME && !c.Halted {
		return
	}

	requested := b.IF()
	enabled := b.IE()
	triggered := requested & enabled
	if triggered == 0 {
		return
	}

	c.IME = false
	c.Halted = false

	for i := byte(0); i < 5; i++ {
		if requested&(1<<i) != 0 && enabled&(1<<i) != 0 {
			b.SetIF(b.IF() &^ (1 << i))
			c.call(b, vectors[i])
		}
	}
}

func unknownOpcode(opcode byte, pc uint16) error {
	return fmt.Errorf("cpu: unknown opcode %#02x at pc %#04x: %w", opcode, pc, ErrUnknownOpcode)
}
