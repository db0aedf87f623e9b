// Package fbinput unifies keyboard and mouse input from FreeBSD's
// heterogeneous kernel input interfaces - a libinput-style device-discovery
// library, the Linux-compatible evdev layer, raw virtual-terminal keyboard
// devices, a cooked tty emitting ANSI escape sequences, and the sysmouse
// user-space mouse protocol - into one normalized, backend-agnostic event
// stream.
//
// This package holds the data model shared by every decoder: KeyEvent and
// MouseEvent (keyed to Linux evdev key-code numbering), the Modifier
// bitset, and the bounded event queues a host application drains once per
// poll cycle. The acquisition pipeline itself - channel probing,
// selection, and decoding - lives in the core subpackage; the wire-format
// decoders live in their own leaf packages (sysmouse, evdevkbd, vtkbd,
// ttykbd, dispatchlib) so each protocol can be tested in isolation.
//
// The graphical output backend, the application event loop, logging
// configuration, and framebuffer/DRM management are explicit external
// collaborators and are not part of this module.
package fbinput
