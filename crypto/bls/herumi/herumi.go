// Package herumi implements bls.Provider on top of herumi/bls-eth-go-binary,
// an independent BLS12-381 implementation usable as a second verification
// backend alongside blst.
package herumi

import (
	herumi "github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/crypto/bls"
)

var initOnce bool

// ensureInit lazily initializes the herumi library for the Ethereum
// BLS12-381 curve; herumi.Init panics if called twice with different
// curves, so this module calls it at most once, on first use.
func ensureInit() error {
	if initOnce {
		return nil
	}
	if err := herumi.Init(herumi.BLS12_381); err != nil {
		return errors.Wrap(err, "herumi: init failed")
	}
	if err := herumi.SetETHmode(herumi.EthModeDraft07); err != nil {
		return errors.Wrap(err, "herumi: set eth mode failed")
	}
	initOnce = true
	return nil
}

// Provider is the herumi-backed bls.Provider implementation.
type Provider struct{}

var _ bls.Provider = Provider{}

func (Provider) Verify(pk bls.PublicKey, msg [32]byte, sig bls.Signature) (bool, error) {
	if err := ensureInit(); err != nil {
		return false, err
	}
	var p herumi.PublicKey
	if err := p.Deserialize(pk[:]); err != nil {
		return false, errors.Wrap(err, "herumi: invalid public key")
	}
	var s herumi.Sign
	if err := s.Deserialize(sig[:]); err != nil {
		return false, errors.Wrap(err, "herumi: invalid signature")
	}
	return s.VerifyByte(&p, msg[:]), nil
}

func (Provider) FastAggregateVerify(pks []bls.PublicKey, msg [32]byte, sig bls.Signature) (bool, error) {
	if err := ensureInit(); err != nil {
		return false, err
	}
	keys := make([]herumi.PublicKey, len(pks))
	for i, pk := range pks {
		if err := keys[i].Deserialize(pk[:]); err != nil {
			return false, errors.Wrap(err, "herumi: invalid public key")
		}
	}
	var s herumi.Sign
	if err := s.Deserialize(sig[:]); err != nil {
		return false, errors.Wrap(err, "herumi: invalid signature")
	}
	return s.FastAggregateVerify(keys, msg[:]), nil
}

func (Provider) Aggregate(pks []bls.PublicKey) (bls.PublicKey, error) {
	if err := ensureInit(); err != nil {
		return bls.PublicKey{}, err
	}
	if len(pks) == 0 {
		return bls.PublicKey{}, errors.New("herumi: cannot aggregate an empty key set")
	}
	var agg herumi.PublicKey
	for i, pk := range pks {
		var p herumi.PublicKey
		if err := p.Deserialize(pk[:]); err != nil {
			return bls.PublicKey{}, errors.Wrap(err, "herumi: invalid public key")
		}
		if i == 0 {
			agg = p
			continue
		}
		agg.Add(&p)
	}
	var out bls.PublicKey
	copy(out[:], agg.Serialize())
	return out, nil
}
