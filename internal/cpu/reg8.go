package cpu

import "github.com/arlojohansen/dmgcore/internal/bus"

// The standard SM83 3-bit register encoding: 0-5 are B,C,D,E,H,L; 6 is
// (HL); 7 is A. Shared by the LD r,r' block and every CB-prefixed op.
func (c *CPU) readR8(b *bus.Bus, code byte) byte {
	switch code & 0x07 {
	case 0:
		return c.Reg.B
	case 1:
		return c.Reg.C
	case 2:
		return c.Reg.D
	case 3:
		return c.Reg.E
	case 4:
		return c.Reg.H
	case 5:
		return c.Reg.L
	case 6:
		return b.Read(c.Reg.HL())
	default:
		return c.Reg.A
	}
}

func (c *CPU) writeR8(b *bus.Bus, code byte, value byte) {
	switch code & 0x07 {
	case 0:
		c.Reg.B = value
	case 1:
		c.Reg.C = value
	case 2:
		c.Reg.D = value
	case 3:
		c.Reg.E = value
	case 4:
		c.Reg.H = value
	case 5:
		c.Reg.L = value
	case 6:
		b.Write(c.Reg.HL(), value)
	default:
		c.Reg.A = value
	}
}
