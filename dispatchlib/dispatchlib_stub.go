//go:build !cgo || (!linux && !freebsd)

// +build !cgo !linux,!freebsd

package dispatchlib

import "github.com/badu/fbinput"

// Context is a no-op stand-in for builds with cgo disabled or on platforms
// other than Linux and FreeBSD. A cgo build on Linux or FreeBSD always uses
// the libinput binding instead and needs libinput and libudev to compile.
type Context struct{}

// Open always fails on this build; the channel selector falls through to
// the next keyboard channel.
func Open() (*Context, error) {
	return nil, ErrSeatUnavailable
}

func (c *Context) Fd() int   { return -1 }
func (c *Context) Close() error { return nil }

func (c *Context) Dispatch(tracker *fbinput.ModifierTracker, x, y *int, width, height uint32, keys []fbinput.KeyEvent, mice []fbinput.MouseEvent) ([]fbinput.KeyEvent, []fbinput.MouseEvent) {
	return keys, mice
}
