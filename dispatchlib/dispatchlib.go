//go:build (linux || freebsd) && cgo

// +build linux freebsd
// +build cgo

// Package dispatchlib binds libinput, the device-discovery input library
// preferred over every other channel in this module because it keeps
// working while the console is in graphics (KMS/DRM) mode (spec §4.7). No
// pure-Go libinput binding exists, so this package talks to the system
// library directly through cgo - the same kind of raw system interop the
// rest of this module uses for termios ioctls.
package dispatchlib

/*
#cgo pkg-config: libinput libudev
#include <libinput.h>
#include <libudev.h>
#include <fcntl.h>
#include <unistd.h>
#include <stdlib.h>

static int fbinput_open_restricted(const char *path, int flags, void *user_data) {
	return open(path, flags);
}

static void fbinput_close_restricted(int fd, void *user_data) {
	close(fd);
}

static const struct libinput_interface fbinput_interface = {
	.open_restricted = fbinput_open_restricted,
	.close_restricted = fbinput_close_restricted,
};

static struct libinput *fbinput_create(struct udev *udev) {
	return libinput_udev_create_context(&fbinput_interface, NULL, udev);
}
*/
import "C"

import (
	"unsafe"

	"github.com/badu/fbinput"
	"github.com/badu/fbinput/keycodes"
)

const defaultSeat = "seat0"

// Context owns a libinput context and udev handle. Exactly one poll cycle's
// worth of events is drained per Dispatch call.
type Context struct {
	udev *C.struct_udev
	li   *C.struct_libinput
	fd   int
}

// Open creates the discovery context and assigns the default seat. Success
// requires both the context and a pollable file descriptor.
func Open() (*Context, error) {
	udev := C.udev_new()
	if udev == nil {
		return nil, ErrSeatUnavailable
	}

	li := C.fbinput_create(udev)
	if li == nil {
		C.udev_unref(udev)
		return nil, ErrSeatUnavailable
	}

	seat := C.CString(defaultSeat)
	defer C.free(unsafe.Pointer(seat))
	if C.libinput_udev_assign_seat(li, seat) != 0 {
		C.libinput_unref(li)
		C.udev_unref(udev)
		return nil, ErrSeatUnavailable
	}

	fd := int(C.libinput_get_fd(li))
	if fd < 0 {
		C.libinput_unref(li)
		C.udev_unref(udev)
		return nil, ErrSeatUnavailable
	}

	return &Context{udev: udev, li: li, fd: fd}, nil
}

// Fd returns the pollable descriptor backing this context.
func (c *Context) Fd() int { return c.fd }

// Close releases the libinput and udev handles.
func (c *Context) Close() error {
	C.libinput_unref(c.li)
	C.udev_unref(c.udev)
	return nil
}

// Dispatch calls libinput_dispatch once, then drains every pending event,
// appending normalized KeyEvents and MouseEvents to the supplied slices.
// Pointer events are clamped to (width, height) and applied against
// (x, y), which the caller owns across calls.
func (c *Context) Dispatch(tracker *fbinput.ModifierTracker, x, y *int, width, height uint32, keys []fbinput.KeyEvent, mice []fbinput.MouseEvent) ([]fbinput.KeyEvent, []fbinput.MouseEvent) {
	if C.libinput_dispatch(c.li) != 0 {
		return keys, mice
	}

	for {
		ev := C.libinput_get_event(c.li)
		if ev == nil {
			break
		}
		keys, mice = c.handleEvent(ev, tracker, x, y, width, height, keys, mice)
		C.libinput_event_destroy(ev)
	}
	return keys, mice
}

func (c *Context) handleEvent(ev *C.struct_libinput_event, tracker *fbinput.ModifierTracker, x, y *int, width, height uint32, keys []fbinput.KeyEvent, mice []fbinput.MouseEvent) ([]fbinput.KeyEvent, []fbinput.MouseEvent) {
	switch C.libinput_event_get_type(ev) {
	case C.LIBINPUT_EVENT_KEYBOARD_KEY:
		kev := C.libinput_event_get_keyboard_event(ev)
		code := uint32(C.libinput_event_keyboard_get_key(kev))
		pressed := C.libinput_event_keyboard_get_key_state(kev) == C.LIBINPUT_KEY_STATE_PRESSED

		tracker.Update(code, pressed)
		keys = append(keys, fbinput.KeyEvent{KeyCode: code, Modifiers: tracker.Current, Pressed: pressed})

	case C.LIBINPUT_EVENT_POINTER_MOTION:
		pev := C.libinput_event_get_pointer_event(ev)
		dx := int(C.libinput_event_pointer_get_dx(pev))
		dy := int(C.libinput_event_pointer_get_dy(pev))

		*x, *y = fbinput.Clamp(*x+dx, *y+dy, width, height)
		mice = append(mice, fbinput.MouseEvent{X: *x, Y: *y, Button: fbinput.ButtonLeft, Kind: fbinput.MouseMotion})

	case C.LIBINPUT_EVENT_POINTER_BUTTON:
		pev := C.libinput_event_get_pointer_event(ev)
		code := uint32(C.libinput_event_pointer_get_button(pev))
		pressed := C.libinput_event_pointer_get_button_state(pev) == C.LIBINPUT_BUTTON_STATE_PRESSED

		button, ok := buttonFromEvdev(code)
		if !ok {
			break
		}
		kind := fbinput.MouseRelease
		if pressed {
			kind = fbinput.MousePress
		}
		mice = append(mice, fbinput.MouseEvent{X: *x, Y: *y, Button: button, Kind: kind})
	}
	return keys, mice
}

func buttonFromEvdev(code uint32) (fbinput.MouseButton, bool) {
	switch code {
	case keycodes.BtnLeft:
		return fbinput.ButtonLeft, true
	case keycodes.BtnRight:
		return fbinput.ButtonRight, true
	case keycodes.BtnMiddle:
		return fbinput.ButtonMiddle, true
	default:
		return 0, false
	}
}
