package cpu

import "github.com/arlojohansen/dmgcore/internal/bus"

// exec dispatches a primary-table opcode and returns its cycle cost,
// per spec §4.7. Opcode coverage and cycle counts follow the official
// instruction table.
func (c *CPU) exec(b *bus.Bus, opcode byte) int {
	switch {
	case opcode >= 0x40 && opcode <= 0x7F && opcode != 0x76:
		return c.execLoadR8(b, opcode)
	case opcode >= 0x80 && opcode <= 0xBF:
		return c.execALU(b, opcode)
	}

	switch opcode {
	case 0x00:
		return 4 // NOP
	case 0x01:
		c.Reg.SetBC(c.fetch16(b))
		return 12
	case 0x02:
		b.Write(c.Reg.BC(), c.Reg.A)
		return 8
	case 0x03:
		c.Reg.SetBC(c.Reg.BC() + 1)
		return 8
	case 0x04:
		c.Reg.B = c.inc(c.Reg.B)
		return 4
	case 0x05:
		c.Reg.B = c.dec(c.Reg.B)
		return 4
	case 0x06:
		c.Reg.B = c.fetch8(b)
		return 8
	case 0x07:
		c.Reg.A = c.rlc(c.Reg.A)
		c.Reg.SetZ(false)
		return 4
	case 0x08:
		addr := c.fetch16(b)
		b.Write16(addr, c.Reg.SP)
		return 20
	case 0x09:
		c.add16(c.Reg.BC())
		return 8
	case 0x0A:
		c.Reg.A = b.Read(c.Reg.BC())
		return 8
	case 0x0B:
		c.Reg.SetBC(c.Reg.BC() - 1)
		return 8
	case 0x0C:
		c.Reg.C = c.inc(c.Reg.C)
		return 4
	case 0x0D:
		c.Reg.C = c.dec(c.Reg.C)
		return 4
	case 0x0E:
		c.Reg.C = c.fetch8(b)
		return 8
	case 0x0F:
		c.Reg.A = c.rrc(c.Reg.A)
		c.Reg.SetZ(false)
		return 4
	case 0x10:
		return 4 // STOP: no speed-switch modelled.
	case 0x11:
		c.Reg.SetDE(c.fetch16(b))
		return 12
	case 0x12:
		b.Write(c.Reg.DE(), c.Reg.A)
		return 8
	case 0x13:
		c.Reg.SetDE(c.Reg.DE() + 1)
		return 8
	case 0x14:
		c.Reg.D = c.inc(c.Reg.D)
		return 4
	case 0x15:
		c.Reg.D = c.dec(c.Reg.D)
		return 4
	case 0x16:
		c.Reg.D = c.fetch8(b)
		return 8
	case 0x17:
		c.Reg.A = c.rl(c.Reg.A)
		c.Reg.SetZ(false)
		return 4
	case 0x18:
		delta := int8(c.fetch8(b))
		c.jr(delta)
		return 12
	case 0x19:
		c.add16(c.Reg.DE())
		return 8
	case 0x1A:
		c.Reg.A = b.Read(c.Reg.DE())
		return 8
	case 0x1B:
		c.Reg.SetDE(c.Reg.DE() - 1)
		return 8
	case 0x1C:
		c.Reg.E = c.inc(c.Reg.E)
		return 4
	case 0x1D:
		c.Reg.E = c.dec(c.Reg.E)
		return 4
	case 0x1E:
		c.Reg.E = c.fetch8(b)
		return 8
	case 0x1F:
		c.Reg.A = c.rr(c.Reg.A)
		c.Reg.SetZ(false)
		return 4
	case 0x20:
		delta := int8(c.fetch8(b))
		if c.Reg.GetZ() {
			return 8
		}
		c.jr(delta)
		return 12
	case 0x21:
		c.Reg.SetHL(c.fetch16(b))
		return 12
	case 0x22:
		b.Write(c.Reg.HL(), c.Reg.A)
		c.Reg.SetHL(c.Reg.HL() + 1)
		return 8
	case 0x23:
		c.Reg.SetHL(c.Reg.HL() + 1)
		return 8
	case 0x24:
		c.Reg.H = c.inc(c.Reg.H)
		return 4
	case 0x25:
		c.Reg.H = c.dec(c.Reg.H)
		return 4
	case 0x26:
		c.Reg.H = c.fetch8(b)
		return 8
	case 0x27:
		c.daa()
		return 4
	case 0x28:
		delta := int8(c.fetch8(b))
		if c.Reg.GetZ() {
			c.jr(delta)
			return 12
		}
		return 8
	case 0x29:
		c.add16(c.Reg.HL())
		return 8
	case 0x2A:
		c.Reg.A = b.Read(c.Reg.HL())
		c.Reg.SetHL(c.Reg.HL() + 1)
		return 8
	case 0x2B:
		c.Reg.SetHL(c.Reg.HL() - 1)
		return 8
	case 0x2C:
		c.Reg.L = c.inc(c.Reg.L)
		return 4
	case 0x2D:
		c.Reg.L = c.dec(c.Reg.L)
		return 4
	case 0x2E:
		c.Reg.L = c.fetch8(b)
		return 8
	case 0x2F:
		c.cpl()
		return 4
	case 0x30:
		delta := int8(c.fetch8(b))
		if c.Reg.GetC() {
			return 8
		}
		c.jr(delta)
		return 12
	case 0x31:
		c.Reg.SP = c.fetch16(b)
		return 12
	case 0x32:
		b.Write(c.Reg.HL(), c.Reg.A)
		c.Reg.SetHL(c.Reg.HL() - 1)
		return 8
	case 0x33:
		c.Reg.SP++
		return 8
	case 0x34:
		addr := c.Reg.HL()
		b.Write(addr, c.inc(b.Read(addr)))
		return 12
	case 0x35:
		addr := c.Reg.HL()
		b.Write(addr, c.dec(b.Read(addr)))
		return 12
	case 0x36:
		b.Write(c.Reg.HL(), c.fetch8(b))
		return 12
	case 0x37:
		c.scf()
		return 4
	case 0x38:
		delta := int8(c.fetch8(b))
		if c.Reg.GetC() {
			c.jr(delta)
			return 12
		}
		return 8
	case 0x39:
		c.add16(c.Reg.SP)
		return 8
	case 0x3A:
		c.Reg.A = b.Read(c.Reg.HL())
		c.Reg.SetHL(c.Reg.HL() - 1)
		return 8
	case 0x3B:
		c.Reg.SP--
		return 8
	case 0x3C:
		c.Reg.A = c.inc(c.Reg.A)
		return 4
	case 0x3D:
		c.Reg.A = c.dec(c.Reg.A)
		return 4
	case 0x3E:
		c.Reg.A = c.fetch8(b)
		return 8
	case 0x3F:
		c.ccf()
		return 4
	case 0x76:
		c.Halted = true
		return 4

	case 0xC0:
		if c.Reg.GetZ() {
			return 8
		}
		c.Reg.PC = c.pop(b)
		return 20
	case 0xC1:
		c.Reg.SetBC(c.pop(b))
		return 12
	case 0xC2:
		addr := c.fetch16(b)
		if c.Reg.GetZ() {
			return 12
		}
		c.Reg.PC = addr
		return 16
	case 0xC3:
		c.Reg.PC = c.fetch16(b)
		return 16
	case 0xC4:
		addr := c.fetch16(b)
		if c.Reg.GetZ() {
			return 12
		}
		c.call(b, addr)
		return 24
	case 0xC5:
		c.push(b, c.Reg.BC())
		return 16
	case 0xC6:
		c.add(c.fetch8(b), false)
		return 8
	case 0xC7:
		c.call(b, 0x00)
		return 16
	case 0xC8:
		if c.Reg.GetZ() {
			c.Reg.PC = c.pop(b)
			return 20
		}
		return 8
	case 0xC9:
		c.Reg.PC = c.pop(b)
		return 16
	case 0xCA:
		addr := c.fetch16(b)
		if c.Reg.GetZ() {
			c.Reg.PC = addr
			return 16
		}
		return 12
	case 0xCC:
		addr := c.fetch16(b)
		if c.Reg.GetZ() {
			c.call(b, addr)
			return 24
		}
		return 12
	case 0xCD:
		addr := c.fetch16(b)
		c.call(b, addr)
		return 24
	case 0xCE:
		c.add(c.fetch8(b), true)
		return 8
	case 0xCF:
		c.call(b, 0x08)
		return 16

	case 0xD0:
		if c.Reg.GetC() {
			return 8
		}
		c.Reg.PC = c.pop(b)
		return 20
	case 0xD1:
		c.Reg.SetDE(c.pop(b))
		return 12
	case 0xD2:
		addr := c.fetch16(b)
		if c.Reg.GetC() {
			return 12
		}
		c.Reg.PC = addr
		return 16
	case 0xD4:
		addr := c.fetch16(b)
		if c.Reg.GetC() {
			return 12
		}
		c.call(b, addr)
		return 24
	case 0xD5:
		c.push(b, c.Reg.DE())
		return 16
	case 0xD6:
		c.sub(c.fetch8(b), false)
		return 8
	case 0xD7:
		c.call(b, 0x10)
		return 16
	case 0xD8:
		if c.Reg.GetC() {
			c.Reg.PC = c.pop(b)
			return 20
		}
		return 8
	case 0xD9:
		c.Reg.PC = c.pop(b)
		c.IME = true
		return 16
	case 0xDA:
		addr := c.fetch16(b)
		if c.Reg.GetC() {
			c.Reg.PC = addr
			return 16
		}
		return 12
	case 0xDC:
		addr := c.fetch16(b)
		if c.Reg.GetC() {
			c.call(b, addr)
			return 24
		}
		return 12
	case 0xDE:
		c.sub(c.fetch8(b), true)
		return 8
	case 0xDF:
		c.call(b, 0x18)
		return 16

	case 0xE0:
		addr := 0xFF00 | uint16(c.fetch8(b))
		b.Write(addr, c.Reg.A)
		return 12
	case 0xE1:
		c.Reg.SetHL(c.pop(b))
		return 12
	case 0xE2:
		b.Write(0xFF00|uint16(c.Reg.C), c.Reg.A)
		return 8
	case 0xE5:
		c.push(b, c.Reg.HL())
		return 16
	case 0xE6:
		c.and(c.fetch8(b))
		return 8
	case 0xE7:
		c.call(b, 0x20)
		return 16
	case 0xE8:
		c.Reg.SP = c.addSP(c.fetch8(b))
		return 16
	case 0xE9:
		c.Reg.PC = c.Reg.HL()
		return 4
	case 0xEA:
		b.Write(c.fetch16(b), c.Reg.A)
		return 16
	case 0xEE:
		c.xor(c.fetch8(b))
		return 8
	case 0xEF:
		c.call(b, 0x28)
		return 16

	case 0xF0:
		addr := 0xFF00 | uint16(c.fetch8(b))
		c.Reg.A = b.Read(addr)
		return 12
	case 0xF1:
		c.Reg.SetAF(c.pop(b))
		return 12
	case 0xF2:
		c.Reg.A = b.Read(0xFF00 | uint16(c.Reg.C))
		return 8
	case 0xF3:
		c.IME = false
		return 4
	case 0xF5:
		c.push(b, c.Reg.AF())
		return 16
	case 0xF6:
		c.or(c.fetch8(b))
		return 8
	case 0xF7:
		c.call(b, 0x30)
		return 16
	case 0xF8:
		c.Reg.SetHL(c.addSP(c.fetch8(b)))
		return 12
	case 0xF9:
		c.Reg.SP = c.Reg.HL()
		return 8
	case 0xFA:
		c.Reg.A = b.Read(c.fetch16(b))
		return 16
	case 0xFB:
		c.IME = true
		return 4
	case 0xFE:
		c.cp(c.fetch8(b))
		return 8
	case 0xFF:
		c.call(b, 0x38)
		return 16

	default:
		panic(unknownOpcode(opcode, c.Reg.PC-1))
	}
}

// execLoadR8 handles the 0x40-0x7F LD r,r' block (HALT at 0x76 is
// special-cased by the caller).
func (c *CPU) execLoadR8(b *bus.Bus, opcode byte) int {
	dest := (opcode - 0x40) / 8
	src := opcode & 0x07
	c.writeR8(b, dest, c.readR8(b, src))
	if dest == 6 || src == 6 {
		return 8
	}
	return 4
}

// execALU handles the 0x80-0xBF ALU-over-r8 block: ADD/ADC/SUB/SBC/
// AND/XOR/OR/CP, each row sharing the same 8-register operand table.
func (c *CPU) execALU(b *bus.Bus, opcode byte) int {
	row := (opcode - 0x80) / 8
	src := opcode & 0x07
	value := c.readR8(b, src)

	switch row {
	case 0:
		c.add(value, false)
	case 1:
		c.add(value, true)
	case 2:
		c.sub(value, false)
	case 3:
		c.sub(value, true)
	case 4:
		c.and(value)
	case 5:
		c.xor(value)
	case 6:
		c.or(value)
	case 7:
		c.cp(value)
	}

	if src == 6 {
		return 8
	}
	return 4
}
