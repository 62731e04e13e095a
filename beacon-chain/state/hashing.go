package state

import "github.com/ethsentry/beacon-transition/beacon-chain/state/sszutil"

// HashTreeRoot implements the tree_hash_root contract for the
// handful of types the transition driver hashes directly (the header
// cache, the full state, and signing roots). Every other container type
// can be hashed the same way via sszutil.HashTreeRoot(v) without needing
// its own method — dynssz works by reflection over the struct tags in
// types.go, not per-type generated code.

func (h *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(h)
}

func (b *BeaconBlock) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(b)
}

func (b *BeaconBlockBody) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(b)
}

func (s *BeaconState) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(s)
}

func (c *Checkpoint) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(c)
}

func (a *AttestationData) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(a)
}

func (v *Validator) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(v)
}

func (m *DepositMessage) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(m)
}

func (d *DepositData) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(d)
}

func (e *VoluntaryExit) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(e)
}

func (c *BLSToExecutionChange) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(c)
}

// MarshalSSZ/UnmarshalSSZ round out the ssz_encode/ssz_decode contract for
// the wire-level types: decode(encode(x)) must reproduce x exactly.

func (b *SignedBeaconBlock) MarshalSSZ() ([]byte, error) {
	return sszutil.MarshalSSZ(b)
}

func (b *SignedBeaconBlock) UnmarshalSSZ(buf []byte) error {
	return sszutil.UnmarshalSSZ(b, buf)
}

func (s *BeaconState) MarshalSSZ() ([]byte, error) {
	return sszutil.MarshalSSZ(s)
}

func (s *BeaconState) UnmarshalSSZ(buf []byte) error {
	return sszutil.UnmarshalSSZ(s, buf)
}
