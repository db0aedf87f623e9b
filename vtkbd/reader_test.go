package vtkbd_test

import (
	"testing"

	"github.com/badu/fbinput"
	"github.com/badu/fbinput/keycodes"
	"github.com/badu/fbinput/vtkbd"
	"gotest.tools/v3/assert"
)

func TestPressAndReleaseRoundTrip(t *testing.T) {
	r := vtkbd.NewReader()
	var tracker fbinput.ModifierTracker

	events := r.Decode([]byte{0x1E, 0x1E | 0x80}, &tracker, nil) // KEY_A (AT 0x1E == evdev 30)

	assert.Equal(t, len(events), 2)
	assert.Assert(t, events[0].Pressed)
	assert.Equal(t, events[0].KeyCode, keycodes.KeyA)
	assert.Assert(t, !events[1].Pressed)
}

func TestUnmappedScancodeDropped(t *testing.T) {
	r := vtkbd.NewReader()
	var tracker fbinput.ModifierTracker

	events := r.Decode([]byte{0x59, 0xFF}, &tracker, nil)
	assert.Equal(t, len(events), 0)
}

func TestScancodeIdempotence(t *testing.T) {
	var tracker fbinput.ModifierTracker
	r := vtkbd.NewReader()

	for code := byte(0x01); code <= 0x58; code++ {
		wantEvdev, ok := keycodes.ATScancodeToEvdev(code)
		assert.Assert(t, ok)

		events := r.Decode([]byte{code}, &tracker, nil)
		assert.Equal(t, len(events), 1)
		assert.Equal(t, events[0].KeyCode, wantEvdev)
		assert.Assert(t, events[0].Pressed)

		released := r.Decode([]byte{code | 0x80}, &tracker, nil)
		assert.Equal(t, len(released), 1)
		assert.Assert(t, !released[0].Pressed)
	}
}
