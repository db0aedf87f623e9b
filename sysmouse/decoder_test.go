package sysmouse_test

import (
	"testing"

	"github.com/badu/fbinput"
	"github.com/badu/fbinput/sysmouse"
	"gotest.tools/v3/assert"
)

func feedAll(d *sysmouse.Decoder, packet []byte) []fbinput.MouseEvent {
	var events []fbinput.MouseEvent
	for _, b := range packet {
		events = d.Feed(b, events)
	}
	return events
}

func TestMotionOnlyNoButtons(t *testing.T) {
	d := sysmouse.NewDecoder(200, 100)
	events := feedAll(d, []byte{0x87, 0x05, 0xFB, 0x00, 0x00})

	assert.Equal(t, len(events), 1)
	assert.Equal(t, events[0].Kind, fbinput.MouseMotion)
	assert.Equal(t, events[0].X, 5)
	assert.Equal(t, events[0].Y, 5)
}

func TestLeftButtonPressThenRelease(t *testing.T) {
	d := sysmouse.NewDecoder(200, 100)

	pressed := feedAll(d, []byte{0x86, 0, 0, 0, 0})
	assert.Equal(t, len(pressed), 1)
	assert.Equal(t, pressed[0].Kind, fbinput.MousePress)
	assert.Equal(t, pressed[0].Button, fbinput.ButtonLeft)

	released := feedAll(d, []byte{0x87, 0, 0, 0, 0})
	assert.Equal(t, len(released), 1)
	assert.Equal(t, released[0].Kind, fbinput.MouseRelease)
	assert.Equal(t, released[0].Button, fbinput.ButtonLeft)
}

func TestGarbageByteDroppedWhileIdle(t *testing.T) {
	d := sysmouse.NewDecoder(200, 100)
	var events []fbinput.MouseEvent

	// 0x01 doesn't match the 0x80 framing bit pattern - dropped while idle.
	events = d.Feed(0x01, events)
	assert.Equal(t, len(events), 0)

	events = feedAll(d, []byte{0x87, 0, 0, 0, 0})
	assert.Equal(t, len(events), 0) // no motion, no button change
}

func TestCursorClampedToScreenBounds(t *testing.T) {
	d := sysmouse.NewDecoder(10, 10)

	// push far left (and, Y being inverted, down) past the bounds repeatedly
	for i := 0; i < 5; i++ {
		feedAll(d, []byte{0x87, 0x80, 0x80, 0x00, 0x00})
	}
	events := feedAll(d, []byte{0x87, 0xFF, 0x00, 0x00, 0x00})
	assert.Equal(t, events[0].X, 0)
}
