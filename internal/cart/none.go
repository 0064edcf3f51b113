package cart

// None is the ROM-only cartridge: no banking, no external RAM.
type None struct {
	rom []byte
}

func NewNone(rom []byte) *None { return &None{rom: rom} }

func (c *None) Read(addr uint16) byte {
	switch {
	case addr <= 0x7FFF:
		if int(addr) < len(c.rom) {
			return c.rom[addr]
		}
		return 0xFF
	default: // 0xA000-0xBFFF: no external RAM
		return 0xFF
	}
}

// Write is a no-op: ROM-only carts have no banking registers or RAM.
func (c *None) Write(addr uint16, value byte) {}
