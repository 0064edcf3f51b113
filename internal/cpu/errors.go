package cpu

import "errors"

// ErrUnknownOpcode marks an undefined or unimplemented opcode byte, an
// unrecoverable programmer/hardware-image error per spec §7.
var ErrUnknownOpcode = errors.New("unknown opcode")
