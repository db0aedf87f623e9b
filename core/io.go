package core

import "os"

// readNonBlocking reads whatever is immediately available from f into buf,
// returning 0 on any error (EAGAIN from an empty non-blocking descriptor,
// included) rather than propagating it - steady-state read errors are
// absorbed silently per spec §7.
func readNonBlocking(f *os.File, buf []byte) int {
	if f == nil {
		return 0
	}
	n, err := f.Read(buf)
	if err != nil {
		return 0
	}
	return n
}
