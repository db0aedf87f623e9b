package keycodes_test

import (
	"testing"

	"github.com/badu/fbinput"
	"github.com/badu/fbinput/keycodes"
	"gotest.tools/v3/assert"
)

func TestATScancodeIdentityInRange(t *testing.T) {
	for code := byte(0x01); code <= 0x58; code++ {
		got, ok := keycodes.ATScancodeToEvdev(code)
		assert.Assert(t, ok)
		assert.Equal(t, got, uint32(code))
	}
}

func TestATScancodeDropsOutOfRange(t *testing.T) {
	for _, code := range []byte{0x00, 0x59, 0xFF} {
		_, ok := keycodes.ATScancodeToEvdev(code)
		assert.Assert(t, !ok)
	}
}

func TestASCIIControlBytesSetCtrl(t *testing.T) {
	// Ctrl-A
	tr, ok := keycodes.ASCIIToEvdev(0x01)
	assert.Assert(t, ok)
	assert.Equal(t, tr.Code, keycodes.KeyA)
	assert.Equal(t, tr.Modifiers, fbinput.ModCtrl)
}

func TestASCIISpecialBytesOverrideCtrlRange(t *testing.T) {
	cases := []struct {
		b    byte
		code uint32
	}{
		{0x08, keycodes.KeyBackspace},
		{0x09, keycodes.KeyTab},
		{0x0A, keycodes.KeyEnter},
		{0x0D, keycodes.KeyEnter},
		{0x1B, keycodes.KeyEsc},
		{0x7F, keycodes.KeyBackspace},
	}
	for _, c := range cases {
		tr, ok := keycodes.ASCIIToEvdev(c.b)
		assert.Assert(t, ok)
		assert.Equal(t, tr.Code, c.code)
		assert.Equal(t, tr.Modifiers, fbinput.ModNone)
	}
}

func TestASCIIUppercaseSetsShift(t *testing.T) {
	tr, ok := keycodes.ASCIIToEvdev('A')
	assert.Assert(t, ok)
	assert.Equal(t, tr.Code, keycodes.KeyA)
	assert.Equal(t, tr.Modifiers, fbinput.ModShift)

	lower, ok := keycodes.ASCIIToEvdev('a')
	assert.Assert(t, ok)
	assert.Equal(t, lower.Code, keycodes.KeyA)
	assert.Equal(t, lower.Modifiers, fbinput.ModNone)
}

func TestASCIIShiftedPunctuation(t *testing.T) {
	tr, ok := keycodes.ASCIIToEvdev('?')
	assert.Assert(t, ok)
	assert.Equal(t, tr.Code, keycodes.KeySlash)
	assert.Equal(t, tr.Modifiers, fbinput.ModShift)

	unshifted, ok := keycodes.ASCIIToEvdev('/')
	assert.Assert(t, ok)
	assert.Equal(t, unshifted.Code, keycodes.KeySlash)
	assert.Equal(t, unshifted.Modifiers, fbinput.ModNone)
}

func TestASCIIDigitsAndZero(t *testing.T) {
	tr, _ := keycodes.ASCIIToEvdev('0')
	assert.Equal(t, tr.Code, keycodes.Key0)
	tr9, _ := keycodes.ASCIIToEvdev('9')
	assert.Equal(t, tr9.Code, keycodes.Key9)
}
