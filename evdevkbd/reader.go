// Package evdevkbd decodes the Linux-compatible evdev binary record stream
// (spec §4.3). Evdev numbering is this module's normalization target, so a
// record's code passes straight through as the KeyEvent's key code with no
// translation table involved.
package evdevkbd

import "github.com/badu/fbinput"

const evKey = 0x01

const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// Reader decodes a byte stream of fixed-size evdev records into KeyEvents.
// It holds no file descriptor; the caller supplies bytes from a non-blocking
// read along with the handler's shared modifier tracker.
type Reader struct{}

// NewReader returns a ready-to-use Reader.
func NewReader() *Reader { return &Reader{} }

// Decode consumes as many complete records as fit in buf (a short read is
// handled by integer-dividing the byte count by the record size, per spec
// §4.3) and appends the resulting KeyEvents to dst.
func (r *Reader) Decode(buf []byte, tracker *fbinput.ModifierTracker, dst []fbinput.KeyEvent) []fbinput.KeyEvent {
	count := len(buf) / recordSize
	for i := 0; i < count; i++ {
		rec := buf[i*recordSize : (i+1)*recordSize]
		evType, code, value := decodeRecord(rec)
		if evType != evKey {
			continue
		}
		if value == valueRepeat {
			continue
		}
		pressed := value == valuePress
		tracker.Update(uint32(code), pressed)
		dst = append(dst, fbinput.KeyEvent{
			KeyCode:   uint32(code),
			Modifiers: tracker.Current,
			Pressed:   pressed,
		})
	}
	return dst
}
