// Package joypad implements the 8-input button matrix behind the
// active-low JOYP register at 0xFF00, per spec §4.4.
package joypad

// Input identifies one of the eight logical buttons.
type Input int

const (
	Right Input = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

func (i Input) isDirection() bool { return i < A }

// InterruptBit is the bit this peripheral raises into the shared IF mask.
const InterruptBit = 4

// Joypad holds the pressed state of all eight inputs and the two select
// lines written through JOYP.
type Joypad struct {
	pressed [8]bool

	directionSelected bool
	buttonSelected    bool

	IntRequest byte
}

func New() *Joypad { return &Joypad{} }

// Press sets input as pressed, edge-triggering the Joypad interrupt if
// its group is currently selected and it was not already pressed.
func (j *Joypad) Press(input Input) {
	if j.pressed[input] {
		return
	}
	j.pressed[input] = true
	if (input.isDirection() && j.directionSelected) || (!input.isDirection() && j.buttonSelected) {
		j.IntRequest |= 1 << InterruptBit
	}
}

// Release clears input's pressed state.
func (j *Joypad) Release(input Input) {
	j.pressed[input] = false
}

func (j *Joypad) Read(addr uint16) byte {
	res := byte(0xFF)
	if j.directionSelected {
		res &^= 0x10
	}
	if j.buttonSelected {
		res &^= 0x20
	}

	clearIfPressed := func(bit uint, input Input) {
		if j.pressed[input] {
			res &^= 1 << bit
		}
	}
	if j.directionSelected {
		clearIfPressed(0, Right)
		clearIfPressed(1, Left)
		clearIfPressed(2, Up)
		clearIfPressed(3, Down)
	}
	if j.buttonSelected {
		clearIfPressed(0, A)
		clearIfPressed(1, B)
		clearIfPressed(2, Select)
		clearIfPressed(3, Start)
	}
	return res
}

func (j *Joypad) Write(addr uint16, value byte) {
	j.directionSelected = value&0x10 == 0
	j.buttonSelected = value&0x20 == 0
}
