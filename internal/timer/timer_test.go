package timer

import "testing"

func TestUpdate_Overflow(t *testing.T) {
	tm := New()
	tm.Write(0xFF07, 0x05) // enabled, 262144 Hz -> 16 cycles/tick
	tm.Write(0xFF05, 0xFF)
	tm.Write(0xFF06, 0xAB)

	tm.Update(16)

	if tm.Read(0xFF05) != 0xAB {
		t.Fatalf("TIMA = %#02x, want 0xAB", tm.Read(0xFF05))
	}
	if tm.IntRequest&(1<<InterruptBit) == 0 {
		t.Fatalf("timer interrupt not requested")
	}
}

func TestUpdate_DisabledClockLeavesTIMAUnchanged(t *testing.T) {
	tm := New()
	tm.Write(0xFF07, 0x01) // disabled (bit 2 clear)
	tm.Write(0xFF05, 0x10)

	tm.Update(100000)

	if tm.Read(0xFF05) != 0x10 {
		t.Fatalf("TIMA changed while clock disabled: got %#02x", tm.Read(0xFF05))
	}
}

func TestWriteDIVAlwaysResetsToZero(t *testing.T) {
	tm := New()
	tm.Update(1000) // advance DIV away from 0
	tm.Write(0xFF04, 0x99)
	if tm.Read(0xFF04) != 0 {
		t.Fatalf("DIV = %#02x after write, want 0", tm.Read(0xFF04))
	}
}

func TestRoundTripRegisters(t *testing.T) {
	tm := New()
	for addr, v := range map[uint16]byte{0xFF06: 0x42, 0xFF05: 0x7F} {
		tm.Write(addr, v)
		if got := tm.Read(addr); got != v {
			t.Fatalf("addr %#04x: got %#02x want %#02x", addr, got, v)
		}
	}
	tm.Write(0xFF07, 0x07)
	if got := tm.Read(0xFF07); got != 0xFF { // bits 3-7 always read back as 1
		t.Fatalf("TAC got %#02x want 0xFF", got)
	}
}

func TestDIVIncrementsEvery256Cycles(t *testing.T) {
	tm := New()
	tm.Update(256)
	if tm.Read(0xFF04) != 1 {
		t.Fatalf("DIV = %d, want 1", tm.Read(0xFF04))
	}
	tm.Update(512)
	if tm.Read(0xFF04) != 3 {
		t.Fatalf("DIV = %d, want 3", tm.Read(0xFF04))
	}
}
