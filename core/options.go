package core

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/badu/fbinput"
)

const (
	defaultKeyQueueCapacity   = fbinput.MaxKeyEvents
	defaultMouseQueueCapacity = fbinput.MaxMouseEvents
	defaultEscapeTimeout      = 50 * time.Millisecond
)

// Option configures a Handler at construction time.
type Option func(*config)

type config struct {
	logger             zerolog.Logger
	keyQueueCapacity   int
	mouseQueueCapacity int
	escapeTimeout      time.Duration
	evdevDeviceMin     int
	evdevDeviceMax     int
	vtDevicePaths      []string
	ttyDevicePaths     []string
}

func defaultConfig() config {
	return config{
		logger:             zerolog.Nop(),
		keyQueueCapacity:   defaultKeyQueueCapacity,
		mouseQueueCapacity: defaultMouseQueueCapacity,
		escapeTimeout:      defaultEscapeTimeout,
		evdevDeviceMin:     0,
		evdevDeviceMax:     fbinput.MaxInputDevices - 1,
		vtDevicePaths:      []string{"/dev/kbdmux0", "/dev/ukbd0", "/dev/atkbd0", "/dev/kbd0"},
		ttyDevicePaths:     []string{"/dev/ttyv0", "/dev/ttyv1", "/dev/ttyv2", "/dev/tty"},
	}
}

// WithLogger directs diagnostic logging to l instead of a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithKeyQueueCapacity overrides the bounded key-event queue size.
func WithKeyQueueCapacity(n int) Option {
	return func(c *config) {
		c.keyQueueCapacity = n
	}
}

// WithMouseQueueCapacity overrides the bounded mouse-event queue size.
func WithMouseQueueCapacity(n int) Option {
	return func(c *config) {
		c.mouseQueueCapacity = n
	}
}

// WithEscapeTimeout overrides the TTY escape-sequence lexer's 50ms default.
func WithEscapeTimeout(d time.Duration) Option {
	return func(c *config) {
		c.escapeTimeout = d
	}
}

// WithEvdevDeviceRange restricts the /dev/input/event* probe to
// [min, max] inclusive, instead of the default 0..MaxInputDevices-1.
func WithEvdevDeviceRange(min, max int) Option {
	return func(c *config) {
		c.evdevDeviceMin = min
		c.evdevDeviceMax = max
	}
}

// WithVTDevicePaths overrides the VT direct-keyboard probe list.
func WithVTDevicePaths(paths ...string) Option {
	return func(c *config) {
		c.vtDevicePaths = paths
	}
}

// WithTTYDevicePaths overrides the cooked-tty probe list.
func WithTTYDevicePaths(paths ...string) Option {
	return func(c *config) {
		c.ttyDevicePaths = paths
	}
}
