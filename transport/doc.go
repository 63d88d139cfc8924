// Package transport serializes buffer descriptors into self-contained
// byte frames for the binary side channel.
//
// Each frame is independently decodable:
//
//	bytes 0-3    magic "LWBF"
//	byte  4      frame version
//	byte  5      flags (bit 0: big-endian payload)
//	byte  6      compression type
//	byte  7      buffer element type
//	bytes 8-11   metadata header length
//	bytes 12-15  compressed payload length
//	bytes 16-23  xxHash64 of the uncompressed payload
//	...          CBOR metadata header
//	...          compressed payload (little-endian 8-byte elements)
//
// The metadata header carries {layer_id, column_name, accessor,
// start_indices?, length, size} in deterministic CBOR, so identical
// descriptors always frame to identical bytes. The payload checksum is
// computed before compression; a mismatch after decompression means the
// frame was corrupted or truncated in transit.
package transport
