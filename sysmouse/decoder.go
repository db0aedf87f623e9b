// Package sysmouse decodes the MouseSystems 5-byte packet protocol used by
// /dev/sysmouse (spec §4.2). It owns no file descriptor; callers feed it
// bytes read elsewhere and drain the events it accumulates.
package sysmouse

import "github.com/badu/fbinput"

// button bit positions within the inverted status nibble (bits 0-2).
const (
	bitLeft = 1 << iota
	bitMiddle
	bitRight
)

// state is the packet-framing state machine from spec §4.2.
type state int

const (
	stateIdle state = iota
	stateFilling
)

// Decoder accumulates sysmouse bytes into 5-byte packets and turns each
// complete packet into zero or more fbinput events, clamped to the current
// screen bounds and tracking cursor position and button state across calls.
type Decoder struct {
	st      state
	buf     [5]byte
	bufLen  int
	x, y    int
	width   uint32
	height  uint32
	buttons uint8 // last known pressed-bit state, active-high
}

// NewDecoder returns a Decoder with the cursor starting at the origin.
func NewDecoder(width, height uint32) *Decoder {
	return &Decoder{width: width, height: height}
}

// SetScreenSize updates the clamp bounds; it does not move the cursor.
func (d *Decoder) SetScreenSize(width, height uint32) {
	d.width = width
	d.height = height
}

// Feed consumes one input byte, appending produced events (if any) to dst,
// and returns the extended slice. Garbage bytes seen while idle are dropped
// silently, per spec §4.2's resync policy.
func (d *Decoder) Feed(b byte, dst []fbinput.MouseEvent) []fbinput.MouseEvent {
	switch d.st {
	case stateIdle:
		if b&0xF8 != 0x80 {
			return dst
		}
		d.buf[0] = b
		d.bufLen = 1
		d.st = stateFilling
		return dst

	case stateFilling:
		d.buf[d.bufLen] = b
		d.bufLen++
		if d.bufLen < 5 {
			return dst
		}
		dst = d.complete(dst)
		d.bufLen = 0
		d.st = stateIdle
		return dst
	}
	return dst
}

// complete implements spec §4.2's "Complete" transition: derive dx/dy and
// the new button mask from a full 5-byte packet, emit Motion and
// Press/Release events, and update the decoder's cursor and button memory.
func (d *Decoder) complete(dst []fbinput.MouseEvent) []fbinput.MouseEvent {
	status := d.buf[0]
	dx := int(int8(d.buf[1])) + int(int8(d.buf[3]))
	dy := int(int8(d.buf[2])) + int(int8(d.buf[4]))

	newButtons := (^status) & 0x07

	d.x, d.y = fbinput.Clamp(d.x+dx, d.y-dy, d.width, d.height)

	changed := newButtons ^ d.buttons
	for _, bit := range []struct {
		mask   uint8
		button fbinput.MouseButton
	}{
		{bitLeft, fbinput.ButtonLeft},
		{bitMiddle, fbinput.ButtonMiddle},
		{bitRight, fbinput.ButtonRight},
	} {
		if changed&bit.mask == 0 {
			continue
		}
		kind := fbinput.MouseRelease
		if newButtons&bit.mask != 0 {
			kind = fbinput.MousePress
		}
		dst = append(dst, fbinput.MouseEvent{
			X: d.x, Y: d.y, Button: bit.button, Kind: kind,
		})
	}
	d.buttons = newButtons

	if dx != 0 || dy != 0 {
		dst = append(dst, fbinput.MouseEvent{
			X: d.x, Y: d.y, Button: fbinput.ButtonLeft, Kind: fbinput.MouseMotion,
		})
	}

	return dst
}
