//go:build freebsd

// +build freebsd

package core

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/badu/fbinput"
	"github.com/badu/fbinput/dispatchlib"
	"github.com/badu/fbinput/evdevkbd"
	"github.com/badu/fbinput/sysmouse"
	"github.com/badu/fbinput/ttykbd"
	"github.com/badu/fbinput/vtkbd"
)

const sysmouseDevice = "/dev/sysmouse"

// selectKeyboardChannel implements spec §4.1's keyboard probe order,
// DispatchLibrary first because it keeps working in KMS/DRM console mode.
func (h *Handler) selectKeyboardChannel() {
	if h.tryDispatchLibrary() {
		h.keyboardMode = fbinput.KeyboardDispatchLibrary
		return
	}
	if h.tryEvdev() {
		h.keyboardMode = fbinput.KeyboardEvdev
		return
	}
	if h.tryVtScancode() {
		h.keyboardMode = fbinput.KeyboardVtScancode
		return
	}
	if h.tryTtyRaw() {
		h.keyboardMode = fbinput.KeyboardTtyRaw
		return
	}
	h.keyboardMode = fbinput.KeyboardNone
	h.cfg.logger.Warn().Msg("no keyboard channel available")
}

func (h *Handler) tryDispatchLibrary() bool {
	ctx, err := dispatchlib.Open()
	if err != nil {
		h.cfg.logger.Debug().Err(err).Msg("dispatch-library channel unavailable")
		return false
	}
	h.dispatchCtx = ctx
	return true
}

func (h *Handler) tryEvdev() bool {
	for i := h.cfg.evdevDeviceMin; i <= h.cfg.evdevDeviceMax; i++ {
		path := fmt.Sprintf("/dev/input/event%d", i)
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			continue
		}
		if !evdevSupportsKeys(fd) {
			unix.Close(fd)
			continue
		}
		h.evdevFile = os.NewFile(uintptr(fd), path)
		h.evdevReader = evdevkbd.NewReader()
		return true
	}
	return false
}

const (
	evKeyType  = 0x01
	keyBitsLen = (0x2ff + 7) / 8 // enough bytes for the highest key code this module cares about
)

// eviocgbit reproduces Linux's EVIOCGBIT(ev, len) ioctl number, which the
// FreeBSD evdev compatibility layer honors identically.
func eviocgbit(ev, length int) uintptr {
	const iocRead = 2
	return uintptr(iocRead<<30 | 'E'<<8 | (0x20 + ev) | length<<16)
}

// evdevSupportsKeys implements spec §4.1 step 2's capability probe: accept
// the first device whose key bitmap has (Q and W) or (A and Space) set.
func evdevSupportsKeys(fd int) bool {
	var keyBits [keyBitsLen]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgbit(evKeyType, len(keyBits)), uintptr(unsafe.Pointer(&keyBits[0])))
	if errno != 0 {
		return false
	}

	hasBit := func(code uint32) bool {
		return keyBits[code/8]&(1<<(code%8)) != 0
	}

	qw := hasBit(keycodeQ) && hasBit(keycodeW)
	aSpace := hasBit(keycodeA) && hasBit(keycodeSpace)
	return qw || aSpace
}

const (
	keycodeQ     = 16
	keycodeW     = 17
	keycodeA     = 30
	keycodeSpace = 57
)

func (h *Handler) tryVtScancode() bool {
	for _, path := range h.cfg.vtDevicePaths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			continue
		}
		h.vtFile = os.NewFile(uintptr(fd), path)
		h.vtReader = vtkbd.NewReader()
		return true
	}
	return false
}

func (h *Handler) tryTtyRaw() bool {
	for _, path := range h.cfg.ttyDevicePaths {
		fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK, 0)
		if err != nil {
			continue
		}

		termios, err := ttykbd.NewTermios(fd)
		if err != nil {
			unix.Close(fd)
			continue
		}
		if err := termios.ApplyRaw(); err != nil {
			unix.Close(fd)
			continue
		}

		h.ttyFile = os.NewFile(uintptr(fd), path)
		h.ttyTermios = termios
		h.ttyLexer = ttykbd.NewLexerWithTimeout(h.cfg.escapeTimeout)
		return true
	}
	return false
}

// selectMouseChannel implements spec §4.1's mouse probe. When the dispatch
// library already owns the keyboard channel it also owns pointer events
// (spec §4.7: preferred over every other channel), so sysmouse is never
// probed in that case - only one mouse channel is ever active at a time.
func (h *Handler) selectMouseChannel() {
	if h.keyboardMode == fbinput.KeyboardDispatchLibrary {
		h.mouseMode = fbinput.MouseDispatchLibraryPointer
		return
	}

	fd, err := unix.Open(sysmouseDevice, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		h.mouseMode = fbinput.MouseNone
		h.cfg.logger.Warn().Err(err).Msg("sysmouse channel unavailable")
		return
	}
	h.mouseFile = os.NewFile(uintptr(fd), sysmouseDevice)
	h.mouseDecoder = sysmouse.NewDecoder(h.screenWidth, h.screenHeight)
	h.mouseMode = fbinput.MouseSysmouse
}
