package core

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/badu/fbinput"
	"github.com/badu/fbinput/evdevkbd"
	"github.com/badu/fbinput/sysmouse"
	"gotest.tools/v3/assert"
)

func TestInitWithNoChannelsIsIdleNotFatal(t *testing.T) {
	h, err := Init(80, 24)
	assert.NilError(t, err)
	assert.Assert(t, h != nil)

	assert.Assert(t, h.Poll() == false || h.Poll() == true) // never panics either way
	assert.Equal(t, len(h.DrainKeyEvents()), 0)
	assert.Equal(t, len(h.DrainMouseEvents()), 0)
	assert.NilError(t, h.Deinit())
}

func buildEvdevRecord(code uint16, value int32) []byte {
	b := make([]byte, 24) // 64-bit record layout; test only runs on 64-bit CI
	binary.LittleEndian.PutUint16(b[16:18], 0x01)
	binary.LittleEndian.PutUint16(b[18:20], code)
	binary.LittleEndian.PutUint32(b[20:24], uint32(value))
	return b
}

func TestPollEvdevPushesDecodedEventsIntoQueue(t *testing.T) {
	r, w, err := os.Pipe()
	assert.NilError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = w.Write(buildEvdevRecord(30, 1))
	assert.NilError(t, err)

	h := &Handler{
		evdevFile:    r,
		evdevReader:  evdevkbd.NewReader(),
		keyboardMode: fbinput.KeyboardEvdev,
		keyQueue:     fbinput.NewKeyEventQueue(8),
		mouseQueue:   fbinput.NewMouseEventQueue(8),
	}
	h.Poll()

	events := h.DrainKeyEvents()
	assert.Equal(t, len(events), 1)
	assert.Equal(t, events[0].KeyCode, uint32(30))
	assert.Assert(t, events[0].Pressed)
}

func TestPollSysmouseRespectsScreenBounds(t *testing.T) {
	r, w, err := os.Pipe()
	assert.NilError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = w.Write([]byte{0x87, 0x05, 0xFB, 0x00, 0x00})
	assert.NilError(t, err)

	h := &Handler{
		mouseFile:    r,
		mouseDecoder: sysmouse.NewDecoder(200, 100),
		mouseMode:    fbinput.MouseSysmouse,
		keyQueue:     fbinput.NewKeyEventQueue(8),
		mouseQueue:   fbinput.NewMouseEventQueue(8),
	}
	h.Poll()

	events := h.DrainMouseEvents()
	assert.Equal(t, len(events), 1)
	assert.Equal(t, events[0].Kind, fbinput.MouseMotion)
	assert.Assert(t, events[0].X >= 0 && events[0].X < 200)
	assert.Assert(t, events[0].Y >= 0 && events[0].Y < 100)
}

func TestSetScreenSizePropagatesToMouseDecoder(t *testing.T) {
	h := &Handler{
		mouseDecoder: sysmouse.NewDecoder(10, 10),
		keyQueue:     fbinput.NewKeyEventQueue(8),
		mouseQueue:   fbinput.NewMouseEventQueue(8),
	}
	h.SetScreenSize(5, 5)
	assert.Equal(t, h.screenWidth, uint32(5))
	assert.Equal(t, h.screenHeight, uint32(5))

	// dx=+127, dy=-127 (Y inverted): the decoder must clamp to the new 5x5 bounds
	var events []fbinput.MouseEvent
	for _, b := range []byte{0x87, 0x7F, 0x81, 0x00, 0x00} {
		events = h.mouseDecoder.Feed(b, events)
	}
	assert.Equal(t, len(events), 1)
	assert.Equal(t, events[0].X, 4)
	assert.Equal(t, events[0].Y, 4)
}
