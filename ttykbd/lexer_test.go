package ttykbd_test

import (
	"testing"
	"time"

	"github.com/badu/fbinput"
	"github.com/badu/fbinput/keycodes"
	"github.com/badu/fbinput/ttykbd"
	"gotest.tools/v3/assert"
)

func feed(l *ttykbd.Lexer, tracker *fbinput.ModifierTracker, bytes ...byte) []fbinput.KeyEvent {
	var events []fbinput.KeyEvent
	for _, b := range bytes {
		events = l.Feed(b, tracker, events)
	}
	return events
}

func TestCSIUpArrow(t *testing.T) {
	l := ttykbd.NewLexer()
	l.Now = func() time.Time { return time.Unix(0, 0) }
	var tracker fbinput.ModifierTracker

	events := feed(l, &tracker, 0x1B, 0x5B, 0x41)

	assert.Equal(t, len(events), 1)
	assert.Equal(t, events[0].KeyCode, keycodes.KeyUp)
	assert.Assert(t, events[0].Pressed)
}

func TestBareEscAfterTimeout(t *testing.T) {
	now := time.Unix(0, 0)
	l := ttykbd.NewLexer()
	l.Now = func() time.Time { return now }
	var tracker fbinput.ModifierTracker

	var events []fbinput.KeyEvent
	events = l.Feed(0x1B, &tracker, events)
	assert.Equal(t, len(events), 0)

	now = now.Add(60 * time.Millisecond)
	events = l.CheckTimeout(&tracker, events)

	assert.Equal(t, len(events), 1)
	assert.Equal(t, events[0].KeyCode, uint32(1))
	assert.Assert(t, events[0].Pressed)
}

func TestUppercaseLetterSetsTransientShiftOnly(t *testing.T) {
	l := ttykbd.NewLexer()
	var tracker fbinput.ModifierTracker

	events := feed(l, &tracker, 'A')

	assert.Equal(t, len(events), 1)
	assert.Equal(t, events[0].KeyCode, keycodes.KeyA)
	assert.Equal(t, events[0].Modifiers, fbinput.ModShift)
	assert.Equal(t, tracker.Current, fbinput.ModNone) // persistent state untouched
}

func TestAltLetterSetsTransientAlt(t *testing.T) {
	l := ttykbd.NewLexer()
	l.Now = func() time.Time { return time.Unix(0, 0) }
	var tracker fbinput.ModifierTracker

	events := feed(l, &tracker, 0x1B, 'q')

	assert.Equal(t, len(events), 1)
	assert.Equal(t, events[0].KeyCode, keycodes.KeyQ)
	assert.Assert(t, events[0].Modifiers.Has(fbinput.ModAlt))
	assert.Equal(t, tracker.Current, fbinput.ModNone)
}

func TestTildeSequenceDelete(t *testing.T) {
	l := ttykbd.NewLexer()
	l.Now = func() time.Time { return time.Unix(0, 0) }
	var tracker fbinput.ModifierTracker

	events := feed(l, &tracker, 0x1B, '[', '3', '~')

	assert.Equal(t, len(events), 1)
	assert.Equal(t, events[0].KeyCode, keycodes.KeyDelete)
}

func TestUnrecognizedCSIConsumedSilently(t *testing.T) {
	l := ttykbd.NewLexer()
	l.Now = func() time.Time { return time.Unix(0, 0) }
	var tracker fbinput.ModifierTracker

	events := feed(l, &tracker, 0x1B, '[', '3', '8', ';', '5', ';', '1', 'm')
	assert.Equal(t, len(events), 0)

	// lexer is ready for the next byte, not stuck in escape state
	more := feed(l, &tracker, 'x')
	assert.Equal(t, len(more), 1)
}

func TestSS3FunctionKey(t *testing.T) {
	l := ttykbd.NewLexer()
	l.Now = func() time.Time { return time.Unix(0, 0) }
	var tracker fbinput.ModifierTracker

	events := feed(l, &tracker, 0x1B, 'O', 'Q')
	assert.Equal(t, len(events), 1)
	assert.Equal(t, events[0].KeyCode, keycodes.KeyF2)
}
