//go:build !freebsd

// +build !freebsd

package ttykbd

import "github.com/badu/fbinput"

// Termios is a no-op stand-in on platforms without FreeBSD termios ioctls.
type Termios struct{}

// NewTermios always fails on this platform; the channel selector treats that
// as "TTY raw channel unavailable" rather than a fatal error.
func NewTermios(fd int) (*Termios, error) {
	return nil, fbinput.ErrTerminalStateUnrestorable
}

func (t *Termios) ApplyRaw() error { return fbinput.ErrTerminalStateUnrestorable }

func (t *Termios) Restore() error { return nil }
