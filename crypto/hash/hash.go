// Package hash implements the core SHA-256 and integer-sqrt primitives
// used throughout state-transition, backed by a SIMD-accelerated SHA-256.
package hash

import (
	"math/bits"

	sha256 "github.com/minio/sha256-simd"
)

// Hash returns the SHA-256 digest of data.
func Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// HashConcat hashes the concatenation of a and b, the pairwise step every
// Merkle-branch check and RANDAO mix-in reduces to.
func HashConcat(a, b [32]byte) [32]byte {
	buf := make([]byte, 64)
	copy(buf[:32], a[:])
	copy(buf[32:], b[:])
	return Hash(buf)
}

// precomputedSqrtMax is floor(sqrt(2^64 - 1)), the boundary case handled
// explicitly rather than leaving to the Newton iteration (which would
// otherwise need an extra step to converge there).
const precomputedSqrtMax = 4294967295

// IntegerSquareRoot returns floor(sqrt(n)) via Newton's method.
func IntegerSquareRoot(n uint64) uint64 {
	if n == 1<<64-1 {
		return precomputedSqrtMax
	}
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// Xor returns the byte-wise XOR of a and b.
func Xor(a, b [32]byte) [32]byte {
	var out [32]byte
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// mustNotOverflowAdd adds a and b, panicking if the sum would wrap — the
// "arithmetic errors are fatal" rule for the handful of call sites where an overflow is only reachable via an
// implementation bug, never via protocol-valid input.
func mustNotOverflowAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		panic("hash: unreachable uint64 overflow")
	}
	return sum
}

// MustNotOverflowAdd is the exported form of mustNotOverflowAdd; no other
// package in this module calls it.
func MustNotOverflowAdd(a, b uint64) uint64 { return mustNotOverflowAdd(a, b) }

// SaturatingSub returns a-b, floored at zero — balance decreases saturate
// rather than underflow.
func SaturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
