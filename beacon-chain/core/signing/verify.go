package signing

import (
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

// VerifySigningRoot hashes object under domain and checks sig against pk —
// the common shape of every single-signer verification in the core
// (block proposer, voluntary exit, BLS-to-execution change, deposit
// message).
func VerifySigningRoot(pk bls.PublicKey, object interface{ HashTreeRoot() ([32]byte, error) }, domain [32]byte, sig bls.Signature) (bool, error) {
	root, err := ComputeSigningRoot(object, domain)
	if err != nil {
		return false, err
	}
	return bls.Verify(pk, root, sig)
}

// VerifyAggregateSigningRoot hashes object under domain and fast-aggregate
// verifies sig against every key in pks — the shape attestation and
// attester-slashing validity checks use.
func VerifyAggregateSigningRoot(pks []bls.PublicKey, object interface{ HashTreeRoot() ([32]byte, error) }, domain [32]byte, sig bls.Signature) (bool, error) {
	root, err := ComputeSigningRoot(object, domain)
	if err != nil {
		return false, err
	}
	return bls.EthFastAggregateVerify(pks, root, sig)
}
