// Package bytesutil provides the little-endian scalar <-> byte-slice
// conversions the SSZ wire format requires throughout the core.
package bytesutil

import "encoding/binary"

// Bytes4 little-endian-encodes n into a new 4-byte slice.
func Bytes4(n uint64) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(n))
	return b
}

// Bytes8 little-endian-encodes n into a new 8-byte slice.
func Bytes8(n uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, n)
	return b
}

// Bytes32 little-endian-encodes n into a new 32-byte slice.
func Bytes32(n uint64) []byte {
	b := make([]byte, 32)
	binary.LittleEndian.PutUint64(b, n)
	return b
}

// ToBytes4 copies (or zero-pads/truncates) b into a fixed [4]byte array.
func ToBytes4(b []byte) [4]byte {
	var a [4]byte
	copy(a[:], b)
	return a
}

// ToBytes32 copies (or zero-pads/truncates) b into a fixed [32]byte array.
func ToBytes32(b []byte) [32]byte {
	var a [32]byte
	copy(a[:], b)
	return a
}

// FromBytes8 little-endian-decodes the first 8 bytes of b.
func FromBytes8(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// FromBytes4 little-endian-decodes the first 4 bytes of b.
func FromBytes4(b []byte) uint64 {
	return uint64(binary.LittleEndian.Uint32(b))
}

// Xor returns the byte-wise XOR of a and b; both must have equal length.
func Xor(a, b [32]byte) [32]byte {
	var out [32]byte
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
