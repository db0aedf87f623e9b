package keycodes

import "github.com/badu/fbinput"

// Translation is one entry of the ASCII -> evdev table (spec §4.10):
// the evdev key code a byte maps to, plus any modifier implicit in that
// byte (e.g. shift for an uppercase letter, ctrl for a control byte).
type Translation struct {
	Code      uint32
	Modifiers fbinput.Modifier
}

var lowerLetterCode = map[byte]uint32{
	'a': KeyA, 'b': KeyB, 'c': KeyC, 'd': KeyD, 'e': KeyE, 'f': KeyF, 'g': KeyG,
	'h': KeyH, 'i': KeyI, 'j': KeyJ, 'k': KeyK, 'l': KeyL, 'm': KeyM, 'n': KeyN,
	'o': KeyO, 'p': KeyP, 'q': KeyQ, 'r': KeyR, 's': KeyS, 't': KeyT, 'u': KeyU,
	'v': KeyV, 'w': KeyW, 'x': KeyX, 'y': KeyY, 'z': KeyZ,
}

var digitCode = map[byte]uint32{
	'0': Key0, '1': Key1, '2': Key2, '3': Key3, '4': Key4,
	'5': Key5, '6': Key6, '7': Key7, '8': Key8, '9': Key9,
}

var punctCode = map[byte]uint32{
	'-': KeyMinus, '=': KeyEqual, '[': KeyLeftBrace, ']': KeyRightBrace,
	';': KeySemicolon, '\'': KeyApostrophe, '`': KeyGrave, '\\': KeyBackslash,
	',': KeyComma, '.': KeyDot, '/': KeySlash,
}

// shiftedPunctCode maps a shifted-punctuation character to the *unshifted*
// key it sits on; the shift bit is added by the caller.
var shiftedPunctCode = map[byte]uint32{
	'!': Key1, '@': Key2, '#': Key3, '$': Key4, '%': Key5,
	'^': Key6, '&': Key7, '*': Key8, '(': Key9, ')': Key0,
	'_': KeyMinus, '+': KeyEqual,
	'{': KeyLeftBrace, '}': KeyRightBrace,
	':': KeySemicolon, '"': KeyApostrophe, '~': KeyGrave, '|': KeyBackslash,
	'<': KeyComma, '>': KeyDot, '?': KeySlash,
}

// special bytes that take priority over the generic 0x01-0x1A ctrl-letter
// rule below.
var specialControlCode = map[byte]uint32{
	0x08: KeyBackspace,
	0x09: KeyTab,
	0x0A: KeyEnter,
	0x0D: KeyEnter,
	0x1B: KeyEsc,
}

// ASCIIToEvdev implements spec §4.10's second table in full, including the
// control-byte range, the DEL-as-backspace edge case, and the shifted
// punctuation set. ok is false only for bytes this table has no opinion
// about (e.g. bytes >= 0x80); the ttykbd lexer drops those bytes without
// emitting an event.
func ASCIIToEvdev(b byte) (t Translation, ok bool) {
	switch {
	case b == 0x20:
		return Translation{Code: KeySpace}, true

	case specialHasCode(b):
		return Translation{Code: specialControlCode[b]}, true

	case b >= 0x01 && b <= 0x1A:
		// Ctrl-A .. Ctrl-Z; letter index is 1-based (Ctrl-A == 0x01).
		letter := 'a' + (b - 1)
		return Translation{Code: lowerLetterCode[letter], Modifiers: fbinput.ModCtrl}, true

	case b == 0x7F:
		return Translation{Code: KeyBackspace}, true

	case b >= '0' && b <= '9':
		return Translation{Code: digitCode[b]}, true

	case b >= 'a' && b <= 'z':
		return Translation{Code: lowerLetterCode[b]}, true

	case b >= 'A' && b <= 'Z':
		return Translation{Code: lowerLetterCode[b-'A'+'a'], Modifiers: fbinput.ModShift}, true

	case hasPunct(b):
		return Translation{Code: punctCode[b]}, true

	case hasShiftedPunct(b):
		return Translation{Code: shiftedPunctCode[b], Modifiers: fbinput.ModShift}, true

	default:
		return Translation{}, false
	}
}

func specialHasCode(b byte) bool {
	_, ok := specialControlCode[b]
	return ok
}

func hasPunct(b byte) bool {
	_, ok := punctCode[b]
	return ok
}

func hasShiftedPunct(b byte) bool {
	_, ok := shiftedPunctCode[b]
	return ok
}
