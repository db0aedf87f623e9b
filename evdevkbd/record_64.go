//go:build amd64 || arm64 || riscv64 || mips64 || mips64le || ppc64 || ppc64le

// +build amd64 arm64 riscv64 mips64 mips64le ppc64 ppc64le

package evdevkbd

import "encoding/binary"

// recordSize is sizeof(struct input_event) on a 64-bit native word size:
// two 8-byte time fields plus u16 type, u16 code, i32 value (spec §4.3).
const recordSize = 8 + 8 + 2 + 2 + 4

func decodeRecord(b []byte) (evType, code uint16, value int32) {
	evType = binary.LittleEndian.Uint16(b[16:18])
	code = binary.LittleEndian.Uint16(b[18:20])
	value = int32(binary.LittleEndian.Uint32(b[20:24]))
	return
}
