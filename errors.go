package fbinput

import "errors"

var (
	// ErrAllocationFailed names the one failure the core propagation policy
	// treats as fatal (spec §7) - everything else degrades to a missing
	// channel or a dropped event. Init never returns it: Go reports an
	// allocation failure by panicking, not as an error value.
	ErrAllocationFailed = errors.New("fbinput: allocation failed")

	// ErrNoInputChannels is a non-fatal warning condition: no keyboard and
	// no mouse channel could be opened. The returned Handler is still
	// usable, it will simply never produce events. Callers that want to
	// surface this to an operator should compare Handler.KeyboardMode and
	// Handler.MouseMode against KeyboardNone/MouseNone after Init returns.
	ErrNoInputChannels = errors.New("fbinput: no input channels available")

	// ErrTerminalStateUnrestorable names the condition where the saved
	// termios could not be written back to its device during Deinit. Deinit
	// logs that failure (with the underlying error) and never returns it,
	// per spec §7. The non-FreeBSD Termios stub returns this value from
	// NewTermios and ApplyRaw.
	ErrTerminalStateUnrestorable = errors.New("fbinput: terminal state could not be restored")
)
