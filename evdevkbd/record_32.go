//go:build 386 || arm || mips || mipsle

// +build 386 arm mips mipsle

package evdevkbd

import "encoding/binary"

// recordSize is sizeof(struct input_event) on a 32-bit native word size:
// two 4-byte time fields plus u16 type, u16 code, i32 value (spec §4.3).
const recordSize = 4 + 4 + 2 + 2 + 4

func decodeRecord(b []byte) (evType, code uint16, value int32) {
	evType = binary.LittleEndian.Uint16(b[8:10])
	code = binary.LittleEndian.Uint16(b[10:12])
	value = int32(binary.LittleEndian.Uint32(b[12:16]))
	return
}
