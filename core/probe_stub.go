//go:build !freebsd

// +build !freebsd

package core

import "github.com/badu/fbinput"

// This module's channels are all FreeBSD device nodes; on any other
// platform every probe fails and the handler is simply idle, mirroring the
// teacher's stub-engine pattern for platforms without termios.

func (h *Handler) selectKeyboardChannel() {
	h.keyboardMode = fbinput.KeyboardNone
	h.cfg.logger.Warn().Msg("no keyboard channel available on this platform")
}

func (h *Handler) selectMouseChannel() {
	h.mouseMode = fbinput.MouseNone
	h.cfg.logger.Warn().Msg("no mouse channel available on this platform")
}
