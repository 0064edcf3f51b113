// Package cart implements the cartridge contract and its MBC variants:
// a uniform Read/Write interface over ROM (0x0000-0x7FFF) and external
// RAM (0xA000-0xBFFF), dispatched on the header's cartridge-type byte.
package cart

import "fmt"

// ErrUnsupportedMBC is returned by New when the header's cartridge-type
// byte (0x147) names a controller this package does not implement.
var ErrUnsupportedMBC = fmt.Errorf("unsupported MBC type")

// Cartridge is the minimal contract the bus needs for ROM/RAM banking.
// Implementations are ROM-only or one of the MBC variants; addresses are
// CPU addresses and only ever fall in [0x0000,0x7FFF] or [0xA000,0xBFFF].
type Cartridge interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// New picks an implementation based on the ROM header's cartridge-type
// byte (0x147), per spec §6. Unknown types return ErrUnsupportedMBC
// naming the offending byte.
func New(rom []byte) (Cartridge, error) {
	h, err := ParseHeader(rom)
	if err != nil {
		return nil, fmt.Errorf("cart: parse header: %w", err)
	}
	ramSize := h.RAMSizeBytes
	switch h.CartType {
	case 0x00:
		return NewNone(rom), nil
	case 0x01, 0x02, 0x03:
		return NewMBC1(rom, fallbackRAM(ramSize, 32*1024)), nil
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		return NewMBC3(rom, fallbackRAM(ramSize, 64*1024)), nil
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		return NewMBC5(rom, fallbackRAM(ramSize, 128*1024)), nil
	default:
		return nil, fmt.Errorf("cart: type %#02x: %w", h.CartType, ErrUnsupportedMBC)
	}
}

// fallbackRAM returns a conservative fixed backing size when the header
// declares no RAM, per spec §6's "conservative fixed-size backing is
// acceptable" allowance.
func fallbackRAM(declared, conservative int) int {
	if declared > 0 {
		return declared
	}
	return conservative
}
