package cpu

import "github.com/arlojohansen/dmgcore/internal/bus"

// execCB dispatches a CB-prefixed opcode and returns its cycle cost.
// RLC/RRC/RL/RR/SLA/SRA/SWAP/SRL occupy 0x00-0x3F (8 registers each);
// BIT/RES/SET occupy 0x40-0xFF via the index formulas from spec §4.7.
func (c *CPU) execCB(b *bus.Bus, opcode byte) int {
	reg := opcode & 0x07
	cycles := 8
	if reg == 6 {
		cycles = 16
	}

	switch {
	case opcode <= 0x07:
		c.writeR8(b, reg, c.rlc(c.readR8(b, reg)))
		return cycles
	case opcode <= 0x0F:
		c.writeR8(b, reg, c.rrc(c.readR8(b, reg)))
		return cycles
	case opcode <= 0x17:
		c.writeR8(b, reg, c.rl(c.readR8(b, reg)))
		return cycles
	case opcode <= 0x1F:
		c.writeR8(b, reg, c.rr(c.readR8(b, reg)))
		return cycles
	case opcode <= 0x27:
		c.writeR8(b, reg, c.sla(c.readR8(b, reg)))
		return cycles
	case opcode <= 0x2F:
		c.writeR8(b, reg, c.sra(c.readR8(b, reg)))
		return cycles
	case opcode <= 0x37:
		c.writeR8(b, reg, c.swap(c.readR8(b, reg)))
		return cycles
	case opcode <= 0x3F:
		c.writeR8(b, reg, c.srl(c.readR8(b, reg)))
		return cycles
	case opcode <= 0x7F:
		index := (opcode - 0x40) / 8
		c.bit(c.readR8(b, reg), index)
		if reg == 6 {
			return 12
		}
		return 8
	case opcode <= 0xBF:
		index := (opcode - 0x80) / 8
		c.writeR8(b, reg, c.readR8(b, reg)&^(1<<index))
		return cycles
	default:
		index := (opcode - 0xC0) / 8
		c.writeR8(b, reg, c.readR8(b, reg)|(1<<index))
		return cycles
	}
}
