// Package vtkbd decodes raw AT set-1 scancode bytes read directly from a VT
// keyboard device (/dev/kbdmux0, /dev/ukbd0, /dev/atkbd0, /dev/kbd0; spec
// §4.4). The console's keyboard mode is deliberately left untouched here -
// switching it affects every other virtual terminal on the system.
package vtkbd

import (
	"github.com/badu/fbinput"
	"github.com/badu/fbinput/keycodes"
)

const releaseBit = 0x80

// Reader turns a stream of raw scancode bytes into KeyEvents. It holds no
// file descriptor; the caller supplies bytes from a non-blocking read.
type Reader struct{}

// NewReader returns a ready-to-use Reader.
func NewReader() *Reader { return &Reader{} }

// Decode processes each byte in buf, appending a KeyEvent to dst for every
// byte whose scancode maps to a known evdev key. Unmapped scancodes are
// dropped.
func (r *Reader) Decode(buf []byte, tracker *fbinput.ModifierTracker, dst []fbinput.KeyEvent) []fbinput.KeyEvent {
	for _, raw := range buf {
		pressed := raw&releaseBit == 0
		code := raw &^ releaseBit

		evdevCode, ok := keycodes.ATScancodeToEvdev(code)
		if !ok {
			continue
		}

		tracker.Update(evdevCode, pressed)
		dst = append(dst, fbinput.KeyEvent{
			KeyCode:   evdevCode,
			Modifiers: tracker.Current,
			Pressed:   pressed,
		})
	}
	return dst
}
