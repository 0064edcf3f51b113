package cart

// bankingMode selects what the two shared bits at 0x4000-0x5FFF mean.
type bankingMode byte

const (
	modeROM bankingMode = 0
	modeRAM bankingMode = 1
)

// MBC1 implements ROM banking up to 2 MiB and RAM banking up to 32 KiB,
// per spec §4.2. The forbidden low-5-bit values {0x00,0x20,0x40,0x60}
// are remapped to {0x01,0x21,0x41,0x61} on write.
type MBC1 struct {
	rom []byte
	ram []byte

	ramEnabled bool
	romBank    byte // low 5 bits, or the raw written value when those 5 bits are 0; never 0
	ramBank    byte // either RAM bank (mode RAM) or ROM-bank high 2 bits (mode ROM)
	mode       bankingMode
}

func NewMBC1(rom []byte, ramSize int) *MBC1 {
	m := &MBC1{rom: rom, romBank: 1}
	if ramSize > 0 {
		m.ram = make([]byte, ramSize)
	}
	return m
}

func (m *MBC1) effectiveROMBank() int {
	bank := int(m.romBank)
	if m.mode == modeROM {
		bank |= int(m.ramBank&0x03) << 5
	}
	return bank
}

func (m *MBC1) effectiveRAMBank() int {
	if m.mode == modeRAM {
		return int(m.ramBank & 0x03)
	}
	return 0
}

func (m *MBC1) Read(addr uint16) byte {
	switch {
	case addr < 0x4000:
		bank := 0
		if m.mode == modeRAM {
			bank = int(m.ramBank&0x03) << 5
		}
		off := bank*0x4000 + int(addr)
		if off < len(m.rom) {
			return m.rom[off]
		}
		return 0xFF
	case addr < 0x8000:
		off := m.effectiveROMBank()*0x4000 + int(addr-0x4000)
		if off < len(m.rom) {
			return m.rom[off]
		}
		return 0xFF
	default: // 0xA000-0xBFFF
		if !m.ramEnabled || len(m.ram) == 0 {
			return 0xFF
		}
		off := m.effectiveRAMBank()*0x2000 + int(addr-0xA000)
		if off < len(m.ram) {
			return m.ram[off]
		}
		return 0xFF
	}
}

func (m *MBC1) Write(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case addr < 0x4000:
		bank := value & 0x1F
		if bank == 0 {
			// The forbidden {0x00,0x20,0x40,0x60} values remap to
			// {0x01,0x21,0x41,0x61}: bit 0 is forced on the raw
			// written value, not just its low 5 bits, per spec.
			bank = value | 0x01
		}
		m.romBank = bank
	case addr < 0x6000:
		m.ramBank = value & 0x03
	case addr < 0x8000:
		if value&0x01 != 0 {
			m.mode = modeRAM
		} else {
			m.mode = modeROM
			m.ramBank = 0
		}
	default: // 0xA000-0xBFFF
		if !m.ramEnabled || len(m.ram) == 0 {
			return
		}
		off := m.effectiveRAMBank()*0x2000 + int(addr-0xA000)
		if off < len(m.ram) {
			m.ram[off] = value
		}
	}
}
