package cart

import (
	"errors"
	"testing"
)

func TestNew_DispatchesByHeaderCartType(t *testing.T) {
	cases := []struct {
		cartType byte
		want     string
	}{
		{0x00, "*cart.None"},
		{0x01, "*cart.MBC1"},
		{0x13, "*cart.MBC3"},
		{0x1A, "*cart.MBC5"},
	}
	for _, tc := range cases {
		rom := buildROM("T", tc.cartType, 0x01, 0x00, 64*1024)
		c, err := New(rom)
		if err != nil {
			t.Fatalf("type %#02x: New error: %v", tc.cartType, err)
		}
		got := typeName(c)
		if got != tc.want {
			t.Fatalf("type %#02x: got %s want %s", tc.cartType, got, tc.want)
		}
	}
}

func TestNew_UnsupportedTypeIsError(t *testing.T) {
	rom := buildROM("T", 0x06, 0x01, 0x00, 64*1024) // MBC2, not implemented
	_, err := New(rom)
	if !errors.Is(err, ErrUnsupportedMBC) {
		t.Fatalf("got err=%v, want ErrUnsupportedMBC", err)
	}
}

func typeName(c Cartridge) string {
	switch c.(type) {
	case *None:
		return "*cart.None"
	case *MBC1:
		return "*cart.MBC1"
	case *MBC3:
		return "*cart.MBC3"
	case *MBC5:
		return "*cart.MBC5"
	default:
		return "?"
	}
}
