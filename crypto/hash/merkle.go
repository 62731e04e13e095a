package hash

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/gohashtree"
)

// ErrInvalidMerkleBranch is returned by IsValidMerkleBranch's callers when
// the computed root does not match; the function itself just returns a
// bool; this sentinel exists for callers (deposit processing) that want a
// typed error rather than a bare bool.
var ErrInvalidMerkleBranch = errors.New("hash: merkle branch does not lead to root")

// IsValidMerkleBranch walks depth levels of branch starting from leaf,
// folding in the left/right sibling according to bit i of index, and
// reports whether the resulting root matches root. This is the
// is_valid_merkle_branch, used by deposit processing against the eth1
// deposit Merkle tree (depth = DEPOSIT_CONTRACT_TREE_DEPTH + 1).
func IsValidMerkleBranch(leaf [32]byte, branch [][32]byte, depth uint64, index uint64, root [32]byte) bool {
	if uint64(len(branch)) != depth {
		return false
	}
	value := leaf
	for i := uint64(0); i < depth; i++ {
		if (index>>i)&1 == 1 {
			value = hashPair(branch[i], value)
		} else {
			value = hashPair(value, branch[i])
		}
	}
	return value == root
}

// hashPair hashes two 32-byte Merkle nodes using gohashtree's optimized
// pairwise SHA-256, the same primitive the dynamic-ssz engine uses
// internally to build tree-hash roots (see beacon-chain/state/sszutil).
func hashPair(left, right [32]byte) [32]byte {
	in := [2][32]byte{left, right}
	out := make([][32]byte, 1)
	if err := gohashtree.Hash(out, in[:]); err != nil {
		// gohashtree.Hash only errors on malformed input lengths, which
		// cannot happen with a fixed 2-element slice; a failure here
		// indicates a library/ABI mismatch, not a reachable protocol state.
		return HashConcat(left, right)
	}
	return out[0]
}
