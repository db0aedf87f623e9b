package fbinput

// Modifier is a bitset of the modifier keys observed alongside a key or
// mouse event. Bit layout is fixed by spec §3: 0x01 shift, 0x02 alt,
// 0x04 ctrl, 0x08 meta.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
	ModMeta

	ModNone Modifier = 0
)

// Has reports whether every bit set in want is also set in m.
func (m Modifier) Has(want Modifier) bool {
	return m&want == want
}

// String renders the modifier set as e.g. "Ctrl+Alt", or "" when none are set.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var out []byte
	add := func(name string) {
		if len(out) != 0 {
			out = append(out, '+')
		}
		out = append(out, name...)
	}
	if m&ModShift != 0 {
		add("Shift")
	}
	if m&ModCtrl != 0 {
		add("Ctrl")
	}
	if m&ModAlt != 0 {
		add("Alt")
	}
	if m&ModMeta != 0 {
		add("Meta")
	}
	return string(out)
}

// KeyEvent is a single normalized keyboard event. KeyCode follows Linux
// evdev numbering (e.g. 30 == KEY_A) regardless of which of the four
// keyboard channels produced it - that uniformity is the whole point of
// this package.
type KeyEvent struct {
	KeyCode   uint32
	Modifiers Modifier
	Pressed   bool
}
