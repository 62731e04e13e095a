package blocks

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/signing"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/crypto/bls"
	"github.com/ethsentry/beacon-transition/crypto/hash"
)

// ErrInvalidRandaoReveal marks a RANDAO signature verification failure.
var ErrInvalidRandaoReveal = errors.New("blocks: invalid randao reveal")

// epochValue wraps a little-endian epoch number so it satisfies the
// HashTreeRoot contract compute_signing_root needs — RANDAO is signed
// over the proposer's current epoch as a bare uint64, not a container.
type epochValue uint64

func (e epochValue) HashTreeRoot() ([32]byte, error) {
	var out [32]byte
	v := uint64(e)
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out, nil
}

// ProcessRandao verifies the proposer's RANDAO reveal under
// DOMAIN_RANDAO for the current epoch and mixes it into randao_mixes.
func ProcessRandao(st *state.BeaconState, reveal state.BLSSignature) error {
	cfg := params.BeaconConfig()
	epoch := st.CurrentEpoch()

	proposerIdx := st.LatestBlockHeader.ProposerIndex
	if int(proposerIdx) >= len(st.Validators) {
		return errors.Wrap(ErrInvalidRandaoReveal, "proposer index out of range")
	}
	pubkey := st.Validators[proposerIdx].Pubkey

	domain, err := signing.Domain(st.Fork, epoch, cfg.DomainRandao, st.GenesisValidatorsRoot)
	if err != nil {
		return err
	}
	valid, err := signing.VerifySigningRoot(bls.PublicKey(pubkey), epochValue(epoch), domain, bls.Signature(reveal))
	if err != nil {
		return err
	}
	if !valid {
		return ErrInvalidRandaoReveal
	}

	mix := hash.Xor(st.RandaoMixAtEpoch(epoch), hash.Hash(reveal[:]))
	st.SetRandaoMixAtEpoch(epoch, mix)
	return nil
}
