package cpu

import "github.com/arlojohansen/dmgcore/internal/bus"

func (c *CPU) push(b *bus.Bus, value uint16) {
	c.Reg.SP--
	b.Write(c.Reg.SP, byte(value>>8))
	c.Reg.SP--
	b.Write(c.Reg.SP, byte(value))
}

func (c *CPU) pop(b *bus.Bus) uint16 {
	lo := b.Read(c.Reg.SP)
	c.Reg.SP++
	hi := b.Read(c.Reg.SP)
	c.Reg.SP++
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) call(b *bus.Bus, addr uint16) {
	c.push(b, c.Reg.PC)
	c.Reg.PC = addr
}
