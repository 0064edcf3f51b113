package joypad

import "testing"

func TestRead_ActiveLowDirection(t *testing.T) {
	j := New()
	j.Write(0xFF00, 0x20) // select directions (bit4=0), buttons deselected (bit5=1)
	j.Press(Right)
	j.Press(Down)

	got := j.Read(0xFF00)
	if got&0x01 != 0 {
		t.Fatalf("Right bit not cleared: %#02x", got)
	}
	if got&0x08 != 0 {
		t.Fatalf("Down bit not cleared: %#02x", got)
	}
	if got&0x02 == 0 || got&0x04 == 0 {
		t.Fatalf("unpressed bits cleared: %#02x", got)
	}
}

func TestPress_InterruptOnlyWhenGroupSelected(t *testing.T) {
	j := New()
	j.Write(0xFF00, 0x10) // select buttons only (bit5=0)
	j.Press(Right)        // direction, not selected: no interrupt
	if j.IntRequest != 0 {
		t.Fatalf("unexpected interrupt for unselected group")
	}
	j.Press(A) // button, selected: interrupt
	if j.IntRequest&(1<<InterruptBit) == 0 {
		t.Fatalf("expected interrupt request for selected-group press")
	}
}

func TestPress_EdgeTriggeredOnlyOnce(t *testing.T) {
	j := New()
	j.Write(0xFF00, 0x10)
	j.Press(A)
	j.IntRequest = 0
	j.Press(A) // already pressed: no new edge
	if j.IntRequest != 0 {
		t.Fatalf("re-press of already-pressed button raised interrupt again")
	}
}

func TestRelease_ClearsPressedState(t *testing.T) {
	j := New()
	j.Write(0xFF00, 0x20)
	j.Press(Up)
	j.Release(Up)
	got := j.Read(0xFF00)
	if got&0x04 == 0 {
		t.Fatalf("Up bit still clear after release: %#02x", got)
	}
}
