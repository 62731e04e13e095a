// Package blst implements bls.Provider on top of Supranational's blst
// library, the default high-performance BLS12-381 backend.
package blst

import (
	blstnative "github.com/supranational/blst/bindings/go"

	"github.com/ethsentry/beacon-transition/crypto/bls"
)

type blstPublicKey = blstnative.P1Affine
type blstSignature = blstnative.P2Affine

// dst is the domain separation tag for the Ethereum consensus BLS
// ciphersuite (short signatures over G2, BLS_SIG_BLS12381G2_XMD:SHA-256).
const dst = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"

// Provider is the blst-backed bls.Provider implementation.
type Provider struct{}

var _ bls.Provider = Provider{}

func (Provider) Verify(pk bls.PublicKey, msg [32]byte, sig bls.Signature) (bool, error) {
	p := new(blstPublicKey).Uncompress(pk[:])
	if p == nil {
		return false, errInvalidPublicKey
	}
	s := new(blstSignature).Uncompress(sig[:])
	if s == nil {
		return false, errInvalidSignature
	}
	return s.Verify(true, p, true, msg[:], []byte(dst)), nil
}

func (Provider) FastAggregateVerify(pks []bls.PublicKey, msg [32]byte, sig bls.Signature) (bool, error) {
	raw := make([]*blstPublicKey, len(pks))
	for i, pk := range pks {
		p := new(blstPublicKey).Uncompress(pk[:])
		if p == nil {
			return false, errInvalidPublicKey
		}
		raw[i] = p
	}
	s := new(blstSignature).Uncompress(sig[:])
	if s == nil {
		return false, errInvalidSignature
	}
	return s.FastAggregateVerify(true, raw, msg[:], []byte(dst)), nil
}

func (Provider) Aggregate(pks []bls.PublicKey) (bls.PublicKey, error) {
	if len(pks) == 0 {
		return bls.PublicKey{}, errEmptyAggregate
	}
	agg := new(blstnative.P1Aggregate)
	for _, pk := range pks {
		p := new(blstPublicKey).Uncompress(pk[:])
		if p == nil {
			return bls.PublicKey{}, errInvalidPublicKey
		}
		agg.Add(p, false)
	}
	out := agg.ToAffine()
	var result bls.PublicKey
	copy(result[:], out.Compress())
	return result, nil
}
