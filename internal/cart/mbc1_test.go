package cart

import "testing"

func newMBC1ROM(banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for b := 0; b < banks; b++ {
		rom[b*0x4000] = byte(b) // tag each bank's first byte with its index
	}
	return rom
}

func TestMBC1_BankSwitch(t *testing.T) {
	rom := newMBC1ROM(128)
	m := NewMBC1(rom, 0)

	m.Write(0x2000, 0x05)
	if got := m.Read(0x4000); got != 0x05 {
		t.Fatalf("bank 5 read got %#02x want 0x05", got)
	}

	m.Write(0x2000, 0x20) // forbidden bank 0x20 remaps to 0x21
	if got := m.Read(0x4000); got != 0x21 {
		t.Fatalf("bank 0x20 remap got %#02x want 0x21", got)
	}
}

func TestMBC1_ForbiddenBanksNeverSelected(t *testing.T) {
	rom := newMBC1ROM(128)
	m := NewMBC1(rom, 0)
	for _, v := range []byte{0x00, 0x20, 0x40, 0x60} {
		m.Write(0x2000, v)
		if m.romBank == 0 || m.romBank == 0x20 || m.romBank == 0x40 || m.romBank == 0x60 {
			t.Fatalf("write %#02x produced forbidden bank %#02x", v, m.romBank)
		}
	}
}

func TestMBC1_RAMEnableAndBanking(t *testing.T) {
	rom := newMBC1ROM(4)
	m := NewMBC1(rom, 4*0x2000)

	m.Write(0xA000, 0x42) // RAM not enabled: write ignored
	if got := m.Read(0xA000); got != 0xFF {
		t.Fatalf("disabled RAM read got %#02x want 0xFF", got)
	}

	m.Write(0x0000, 0x0A) // enable RAM
	m.Write(0x6000, 0x01) // RAM banking mode
	m.Write(0x4000, 0x02) // select RAM bank 2
	m.Write(0xA000, 0x99)
	if got := m.Read(0xA000); got != 0x99 {
		t.Fatalf("RAM bank 2 read got %#02x want 0x99", got)
	}

	m.Write(0x4000, 0x00) // back to bank 0
	if got := m.Read(0xA000); got == 0x99 {
		t.Fatalf("RAM bank 0 should be distinct from bank 2, both read 0x99")
	}
}

func TestMBC1_EnteringROMModeResetsRAMBank(t *testing.T) {
	rom := newMBC1ROM(128)
	m := NewMBC1(rom, 0x2000)
	m.Write(0x0000, 0x0A)
	m.Write(0x6000, 0x01)
	m.Write(0x4000, 0x03)
	m.Write(0x6000, 0x00) // back to ROM mode: spec requires ram_bank forced to 0
	if m.ramBank != 0 {
		t.Fatalf("ramBank = %#02x after entering ROM mode, want 0", m.ramBank)
	}
	if m.effectiveRAMBank() != 0 {
		t.Fatalf("effective RAM bank in ROM mode = %d, want 0", m.effectiveRAMBank())
	}
}
