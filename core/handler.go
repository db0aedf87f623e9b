// Package core implements the channel selector (spec §4.1): it probes the
// available keyboard and mouse channels in priority order, normalizes
// whatever it finds into evdev-keyed events, and exposes the bounded
// poll/drain queues described by this module's public contract.
package core

import (
	"os"

	"github.com/badu/fbinput"
	"github.com/badu/fbinput/dispatchlib"
	"github.com/badu/fbinput/evdevkbd"
	"github.com/badu/fbinput/sysmouse"
	"github.com/badu/fbinput/ttykbd"
	"github.com/badu/fbinput/vtkbd"
)

// Handler is the single entry point for this module: construct one with
// Init, call Poll once per frame/tick, then DrainKeyEvents/DrainMouseEvents
// to collect whatever accumulated. There are no internal locks - Handler is
// built for exactly one polling goroutine, per this module's concurrency
// model.
type Handler struct {
	cfg config

	keyboardMode fbinput.KeyboardMode
	mouseMode    fbinput.MouseMode

	screenWidth  uint32
	screenHeight uint32

	tracker    fbinput.ModifierTracker
	keyQueue   *fbinput.KeyEventQueue
	mouseQueue *fbinput.MouseEventQueue

	// DispatchLibrary channel
	dispatchCtx  *dispatchlib.Context
	dispatchX    int
	dispatchY    int

	// Evdev channel
	evdevFile   *os.File
	evdevReader *evdevkbd.Reader

	// VT direct-keyboard channel
	vtFile   *os.File
	vtReader *vtkbd.Reader

	// Cooked-TTY channel
	ttyFile    *os.File
	ttyTermios *ttykbd.Termios
	ttyLexer   *ttykbd.Lexer

	// Sysmouse channel (independent of the keyboard probe)
	mouseFile    *os.File
	mouseDecoder *sysmouse.Decoder

	readBuf [4096]byte
}

// Init constructs a Handler for the given screen size. No error returned
// here is fatal: absence of every channel yields a Handler that simply
// produces no events, with the degradation logged per channel (spec §7).
func Init(screenWidth, screenHeight uint32, opts ...Option) (*Handler, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	logHostDiagnostics(cfg)

	h := &Handler{
		cfg:          cfg,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		keyQueue:     fbinput.NewKeyEventQueue(cfg.keyQueueCapacity),
		mouseQueue:   fbinput.NewMouseEventQueue(cfg.mouseQueueCapacity),
	}

	h.selectKeyboardChannel()
	h.selectMouseChannel()

	if h.keyboardMode == fbinput.KeyboardNone && h.mouseMode == fbinput.MouseNone {
		cfg.logger.Warn().Msg("no input channels available")
	}

	return h, nil
}

// SetScreenSize updates the bounds pointer coordinates are clamped against.
func (h *Handler) SetScreenSize(width, height uint32) {
	h.screenWidth = width
	h.screenHeight = height
	if h.mouseDecoder != nil {
		h.mouseDecoder.SetScreenSize(width, height)
	}
}

// KeyboardMode reports which keyboard channel, if any, is active.
func (h *Handler) KeyboardMode() fbinput.KeyboardMode { return h.keyboardMode }

// MouseMode reports which mouse channel, if any, is active.
func (h *Handler) MouseMode() fbinput.MouseMode { return h.mouseMode }

// Poll zeroes both event-queue counters, then invokes whichever decoders
// are active (spec §4.9). It returns true if the handler has at least one
// active channel (mirroring the teacher's boolean-liveness style return).
func (h *Handler) Poll() bool {
	h.keyQueue.Reset()
	h.mouseQueue.Reset()

	switch h.keyboardMode {
	case fbinput.KeyboardDispatchLibrary:
		h.pollDispatchLibrary()
	case fbinput.KeyboardEvdev:
		h.pollEvdev()
	case fbinput.KeyboardVtScancode:
		h.pollVtScancode()
	case fbinput.KeyboardTtyRaw:
		h.pollTtyRaw()
	}

	if h.mouseMode == fbinput.MouseSysmouse {
		h.pollSysmouse()
	} else if h.mouseMode == fbinput.MouseDispatchLibraryPointer {
		h.pollDispatchLibraryPointer()
	}

	return h.keyboardMode != fbinput.KeyboardNone || h.mouseMode != fbinput.MouseNone
}

// DrainKeyEvents returns the key events accumulated since the last Poll and
// resets the queue.
func (h *Handler) DrainKeyEvents() []fbinput.KeyEvent {
	return h.keyQueue.Drain()
}

// DrainMouseEvents returns the mouse events accumulated since the last Poll
// and resets the queue.
func (h *Handler) DrainMouseEvents() []fbinput.MouseEvent {
	return h.mouseQueue.Drain()
}

func (h *Handler) pollEvdev() {
	n := readNonBlocking(h.evdevFile, h.readBuf[:])
	if n <= 0 {
		return
	}
	events := h.evdevReader.Decode(h.readBuf[:n], &h.tracker, nil)
	for _, ev := range events {
		h.keyQueue.Push(ev)
	}
}

func (h *Handler) pollVtScancode() {
	n := readNonBlocking(h.vtFile, h.readBuf[:])
	if n <= 0 {
		return
	}
	events := h.vtReader.Decode(h.readBuf[:n], &h.tracker, nil)
	for _, ev := range events {
		h.keyQueue.Push(ev)
	}
}

func (h *Handler) pollTtyRaw() {
	n := readNonBlocking(h.ttyFile, h.readBuf[:])
	var events []fbinput.KeyEvent
	for i := 0; i < n; i++ {
		events = h.ttyLexer.Feed(h.readBuf[i], &h.tracker, events)
	}
	events = h.ttyLexer.CheckTimeout(&h.tracker, events)
	for _, ev := range events {
		h.keyQueue.Push(ev)
	}
}

func (h *Handler) pollSysmouse() {
	n := readNonBlocking(h.mouseFile, h.readBuf[:])
	var events []fbinput.MouseEvent
	for i := 0; i < n; i++ {
		events = h.mouseDecoder.Feed(h.readBuf[i], events)
	}
	for _, ev := range events {
		h.mouseQueue.Push(ev)
	}
}

func (h *Handler) pollDispatchLibrary() {
	if h.dispatchCtx == nil {
		return
	}
	keys, mice := h.dispatchCtx.Dispatch(&h.tracker, &h.dispatchX, &h.dispatchY, h.screenWidth, h.screenHeight, nil, nil)
	for _, ev := range keys {
		h.keyQueue.Push(ev)
	}
	for _, ev := range mice {
		h.mouseQueue.Push(ev)
	}
}

// pollDispatchLibraryPointer is a no-op placeholder for symmetry: pointer
// events from the dispatch library are already drained alongside keyboard
// events in pollDispatchLibrary, since libinput multiplexes both over the
// same context.
func (h *Handler) pollDispatchLibraryPointer() {}

// Deinit releases every acquired resource on every channel, restoring
// terminal state last so a failed earlier step never leaves the tty mutated
// (spec's scoped-resource-release design note). Per spec §7's propagation
// policy, nothing here is fatal - failures are logged, never returned.
func (h *Handler) Deinit() error {
	if h.dispatchCtx != nil {
		if err := h.dispatchCtx.Close(); err != nil {
			h.cfg.logger.Warn().Err(err).Msg("dispatch-library context close failed")
		}
	}
	if h.evdevFile != nil {
		h.evdevFile.Close()
	}
	if h.vtFile != nil {
		h.vtFile.Close()
	}
	if h.ttyTermios != nil {
		if err := h.ttyTermios.Restore(); err != nil {
			h.cfg.logger.Warn().Err(err).Msg("terminal state could not be restored")
		}
	}
	if h.ttyFile != nil {
		h.ttyFile.Close()
	}
	if h.mouseFile != nil {
		h.mouseFile.Close()
	}

	return nil
}
