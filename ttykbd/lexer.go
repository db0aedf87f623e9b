// Package ttykbd re-lexes the byte stream a cooked tty collapses key events
// into: a plain ASCII byte, or an ANSI CSI/SS3 escape sequence (spec §4.5).
// Unlike the teacher's channel-based dispatcher this lexer is driven
// synchronously, one byte at a time, with the 50ms escape timeout evaluated
// by the caller at the end of each poll cycle rather than by an internal
// timer goroutine.
package ttykbd

import (
	"time"

	"github.com/badu/fbinput"
	"github.com/badu/fbinput/keycodes"
)

const (
	escByte           = 0x1B
	defaultEscTimeout = 50 * time.Millisecond
	escBufCap         = 16
	keyEsc            = 1
)

// cursorFinal maps an ESC [ final byte to its evdev key code.
var cursorFinal = map[byte]uint32{
	'A': keycodes.KeyUp,
	'B': keycodes.KeyDown,
	'C': keycodes.KeyRight,
	'D': keycodes.KeyLeft,
	'H': keycodes.KeyHome,
	'F': keycodes.KeyEnd,
}

// tildeCode maps the numeric argument of ESC [ n ~ to its evdev key code.
var tildeCode = map[byte]uint32{
	'1': keycodes.KeyHome,
	'2': keycodes.KeyInsert,
	'3': keycodes.KeyDelete,
	'4': keycodes.KeyEnd,
	'5': keycodes.KeyPageUp,
	'6': keycodes.KeyPageDown,
}

// ss3Final maps an ESC O final byte to its evdev key code (F1-F4).
var ss3Final = map[byte]uint32{
	'P': keycodes.KeyF1,
	'Q': keycodes.KeyF2,
	'R': keycodes.KeyF3,
	'S': keycodes.KeyF4,
}

// Lexer holds the escape-sequence buffer across calls to Feed. Now is
// injected so tests can control the timeout deterministically; production
// callers pass time.Now.
type Lexer struct {
	Now func() time.Time

	escTimeout time.Duration
	buf        [escBufCap]byte
	bufLen     int
	deadline   time.Time
}

// NewLexer returns a Lexer using the real wall clock and the default 50ms
// escape timeout.
func NewLexer() *Lexer {
	return NewLexerWithTimeout(defaultEscTimeout)
}

// NewLexerWithTimeout returns a Lexer using the real wall clock and the
// given escape timeout in place of the 50ms default (spec §6's
// WithEscapeTimeout tunable).
func NewLexerWithTimeout(timeout time.Duration) *Lexer {
	return &Lexer{Now: time.Now, escTimeout: timeout}
}

// Feed consumes one input byte and appends any KeyEvents it produces to dst.
func (l *Lexer) Feed(b byte, tracker *fbinput.ModifierTracker, dst []fbinput.KeyEvent) []fbinput.KeyEvent {
	if l.bufLen == 0 {
		if b == escByte {
			l.buf[0] = escByte
			l.bufLen = 1
			l.deadline = l.Now().Add(l.escTimeout)
			return dst
		}
		return l.translateASCII(b, tracker, dst)
	}

	if l.Now().After(l.deadline) {
		dst = l.emitBareEsc(tracker, dst)
		return l.Feed(b, tracker, dst)
	}

	if l.bufLen < escBufCap {
		l.buf[l.bufLen] = b
		l.bufLen++
	}

	return l.tryRecognize(tracker, dst)
}

// CheckTimeout is called at the end of each poll cycle (spec §4.5's
// "checkEscapeTimeout"): if the buffer holds only the ESC byte itself and
// the timeout has elapsed, emit a bare ESC press.
func (l *Lexer) CheckTimeout(tracker *fbinput.ModifierTracker, dst []fbinput.KeyEvent) []fbinput.KeyEvent {
	if l.bufLen == 1 && l.Now().After(l.deadline) {
		return l.emitBareEsc(tracker, dst)
	}
	return dst
}

func (l *Lexer) emitBareEsc(tracker *fbinput.ModifierTracker, dst []fbinput.KeyEvent) []fbinput.KeyEvent {
	l.reset()
	return append(dst, fbinput.KeyEvent{KeyCode: keyEsc, Modifiers: tracker.Current, Pressed: true})
}

func (l *Lexer) reset() {
	l.bufLen = 0
}

// translateASCII handles a plain byte with no escape in progress: it sets
// the modifier side-effect (e.g. shift for uppercase) on this event only,
// never on the persistent tracker.
func (l *Lexer) translateASCII(b byte, tracker *fbinput.ModifierTracker, dst []fbinput.KeyEvent) []fbinput.KeyEvent {
	t, ok := keycodes.ASCIIToEvdev(b)
	if !ok {
		return dst
	}
	return append(dst, fbinput.KeyEvent{
		KeyCode:   t.Code,
		Modifiers: tracker.Current | t.Modifiers,
		Pressed:   true,
	})
}

// tryRecognize attempts to match the buffered bytes against the known
// escape forms, per spec §4.5's recognition rules.
func (l *Lexer) tryRecognize(tracker *fbinput.ModifierTracker, dst []fbinput.KeyEvent) []fbinput.KeyEvent {
	b := l.buf[:l.bufLen]

	switch {
	case l.bufLen >= 2 && b[1] == '[':
		return l.recognizeCSI(b, tracker, dst)

	case l.bufLen == 2 && b[1] == 'O':
		return dst // need the final byte yet

	case l.bufLen == 3 && b[1] == 'O':
		code, ok := ss3Final[b[2]]
		l.reset()
		if !ok {
			return dst
		}
		return append(dst, fbinput.KeyEvent{KeyCode: code, Modifiers: tracker.Current, Pressed: true})

	case l.bufLen == 2 && b[1] >= 0x20 && b[1] != '[' && b[1] != 'O':
		// ESC x: Alt+x, alt bit set transiently on this event only.
		t, ok := keycodes.ASCIIToEvdev(b[1])
		l.reset()
		if !ok {
			return dst
		}
		return append(dst, fbinput.KeyEvent{
			KeyCode:   t.Code,
			Modifiers: tracker.Current | t.Modifiers | fbinput.ModAlt,
			Pressed:   true,
		})

	default:
		return dst
	}
}

func (l *Lexer) recognizeCSI(b []byte, tracker *fbinput.ModifierTracker, dst []fbinput.KeyEvent) []fbinput.KeyEvent {
	if l.bufLen < 3 {
		return dst // still need at least one byte after '['
	}

	last := b[l.bufLen-1]

	// ESC [ final, final in {A,B,C,D,H,F}
	if l.bufLen == 3 {
		if code, ok := cursorFinal[last]; ok {
			l.reset()
			return append(dst, fbinput.KeyEvent{KeyCode: code, Modifiers: tracker.Current, Pressed: true})
		}
	}

	// ESC [ n ~
	if l.bufLen == 4 && last == '~' {
		code, ok := tildeCode[b[2]]
		l.reset()
		if !ok {
			return dst
		}
		return append(dst, fbinput.KeyEvent{KeyCode: code, Modifiers: tracker.Current, Pressed: true})
	}

	// any other recognized-but-unmapped final byte: consume silently.
	if last >= 0x40 && last <= 0x7E {
		l.reset()
		return dst
	}

	return dst
}
