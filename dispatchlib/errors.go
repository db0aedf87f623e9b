package dispatchlib

import "errors"

// ErrSeatUnavailable is returned when the default seat cannot be assigned,
// which the channel selector treats as "this channel is unavailable".
var ErrSeatUnavailable = errors.New("fbinput/dispatchlib: seat assignment failed")
