// Package endian provides byte order utilities for serializing numeric
// buffers and transport frames.
//
// It combines the ByteOrder and AppendByteOrder interfaces from the standard
// encoding/binary package into a single EndianEngine interface, so buffer and
// frame writers can both read fixed-width fields and append them without an
// intermediate scratch slice.
//
// Most users should use LittleEndian(): the browser-side decoder consumes
// TypedArray views over the received bytes, and every supported target is
// little-endian. BigEndian() exists for interoperability testing.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy this interface, so
// an EndianEngine is always immutable and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian returns the little-endian engine.
func LittleEndian() EndianEngine {
	return binary.LittleEndian
}

// BigEndian returns the big-endian engine.
func BigEndian() EndianEngine {
	return binary.BigEndian
}

// Native uses a fixed integer value to determine the host's byte order.
func Native() EndianEngine {
	var i uint16 = 0x0100

	// Only the byte at the lowest address matters: 0x01 first means big-endian.
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == EndianEngine(binary.LittleEndian)
}
