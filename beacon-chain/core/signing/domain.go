// Package signing implements the domain/signing-root helpers:
// compute_domain, compute_signing_root, and the Domain/ComputeSigningRoot
// wrappers that pull the right fork version out of a BeaconState.Fork.
package signing

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/beacon-chain/state/sszutil"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// ForkData is the SSZ container compute_domain hashes to derive the
// fork-version-mixed domain tag.
type ForkData struct {
	CurrentVersion        [4]byte
	GenesisValidatorsRoot [32]byte
}

// SigningData is the SSZ container compute_signing_root hashes.
type SigningData struct {
	ObjectRoot [32]byte
	Domain     [32]byte
}

// ComputeDomain implements compute_domain: the domain type tag
// concatenated with the first 28 bytes of hash_tree_root(ForkData).
func ComputeDomain(domainType [4]byte, forkVersion [4]byte, genesisValidatorsRoot [32]byte) ([32]byte, error) {
	fd := &ForkData{CurrentVersion: forkVersion, GenesisValidatorsRoot: genesisValidatorsRoot}
	root, err := sszutil.HashTreeRoot(fd)
	if err != nil {
		return [32]byte{}, err
	}
	var domain [32]byte
	copy(domain[:4], domainType[:])
	copy(domain[4:], root[:28])
	return domain, nil
}

// Domain resolves fork.previous_version or fork.current_version (whichever
// is in effect at epoch) and derives the signing domain.
func Domain(fork *state.Fork, epoch primitives.Epoch, domainType [4]byte, genesisValidatorsRoot [32]byte) ([32]byte, error) {
	version := fork.CurrentVersion
	if epoch < fork.Epoch {
		version = fork.PreviousVersion
	}
	return ComputeDomain(domainType, version, genesisValidatorsRoot)
}

// ComputeSigningRoot implements compute_signing_root.
func ComputeSigningRoot(object interface{ HashTreeRoot() ([32]byte, error) }, domain [32]byte) ([32]byte, error) {
	objectRoot, err := object.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	sd := &SigningData{ObjectRoot: objectRoot, Domain: domain}
	return sszutil.HashTreeRoot(sd)
}
