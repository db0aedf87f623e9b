package fbinput

// KeyboardMode is the tagged variant over which keyboard channel, if any,
// is currently active (spec §3). Exactly one is active at a time.
type KeyboardMode int

const (
	KeyboardNone KeyboardMode = iota
	KeyboardDispatchLibrary
	KeyboardEvdev
	KeyboardVtScancode
	KeyboardTtyRaw
)

// String names the mode for logging.
func (m KeyboardMode) String() string {
	switch m {
	case KeyboardDispatchLibrary:
		return "dispatch-library"
	case KeyboardEvdev:
		return "evdev"
	case KeyboardVtScancode:
		return "vt-scancode"
	case KeyboardTtyRaw:
		return "tty-raw"
	default:
		return "none"
	}
}

// MouseMode is the independent tagged variant for the pointer channel.
type MouseMode int

const (
	MouseNone MouseMode = iota
	MouseSysmouse
	MouseDispatchLibraryPointer
)

// String names the mode for logging.
func (m MouseMode) String() string {
	switch m {
	case MouseSysmouse:
		return "sysmouse"
	case MouseDispatchLibraryPointer:
		return "dispatch-library-pointer"
	default:
		return "none"
	}
}
