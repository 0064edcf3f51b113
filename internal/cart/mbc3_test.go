package cart

import "testing"

func TestMBC3_BankSwitchAndZeroMapsToOne(t *testing.T) {
	rom := make([]byte, 8*0x4000)
	rom[5*0x4000] = 0xAB
	m := NewMBC3(rom, 0)

	m.Write(0x2000, 0x05)
	if got := m.Read(0x4000); got != 0xAB {
		t.Fatalf("bank 5 read got %#02x want 0xAB", got)
	}

	m.Write(0x2000, 0x00)
	if m.romBank != 1 {
		t.Fatalf("romBank after writing 0, got %d want 1", m.romBank)
	}
}

func TestMBC3_RAMBankDirectSelect(t *testing.T) {
	rom := make([]byte, 4*0x4000)
	m := NewMBC3(rom, 4*0x2000)

	m.Write(0x0000, 0x0A) // enable
	m.Write(0x4000, 0x02) // ram bank 2, no mode register
	m.Write(0xA000, 0x55)
	if got := m.Read(0xA000); got != 0x55 {
		t.Fatalf("RAM bank 2 got %#02x want 0x55", got)
	}
	m.Write(0x4000, 0x0C) // RTC register select, out of scope: ignored
	if m.ramBank != 0x02 {
		t.Fatalf("RTC select byte changed ramBank to %#02x", m.ramBank)
	}
}
