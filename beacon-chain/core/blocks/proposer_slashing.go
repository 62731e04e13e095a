package blocks

import (
	"golang.org/x/sync/errgroup"

	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/signing"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/time"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/validators"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

// ErrInvalidProposerSlashing marks a precondition or signature failure.
var ErrInvalidProposerSlashing = errors.New("blocks: invalid proposer slashing")

// ProcessProposerSlashing validates ps (two signed headers for the same
// slot and proposer that differ, where the proposer is still slashable,
// both signed under DOMAIN_BEACON_PROPOSER for their header's epoch) and
// slashes the offending proposer.
func ProcessProposerSlashing(st *state.BeaconState, ps *state.ProposerSlashing) error {
	h1, h2 := ps.Header1.Header, ps.Header2.Header
	if h1.Slot != h2.Slot {
		return errors.Wrap(ErrInvalidProposerSlashing, "header slots differ")
	}
	if h1.ProposerIndex != h2.ProposerIndex {
		return errors.Wrap(ErrInvalidProposerSlashing, "header proposer indices differ")
	}
	if *h1 == *h2 {
		return errors.Wrap(ErrInvalidProposerSlashing, "headers are identical")
	}

	index := h1.ProposerIndex
	if int(index) >= len(st.Validators) {
		return errors.Wrap(ErrInvalidProposerSlashing, "proposer index out of range")
	}
	v := st.Validators[index]
	if !helpers.IsSlashableValidator(v, st.CurrentEpoch()) {
		return errors.Wrap(ErrInvalidProposerSlashing, "proposer is not slashable")
	}

	var g errgroup.Group
	results := make([]bool, 2)
	headers := []*state.SignedBeaconBlockHeader{ps.Header1, ps.Header2}
	for i := range headers {
		i := i
		g.Go(func() error {
			ok, err := verifyHeaderSignature(st, v, headers[i])
			if err != nil {
				return err
			}
			results[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if !results[0] || !results[1] {
		return errors.Wrap(ErrInvalidProposerSlashing, "header signature verification failed")
	}

	proposer, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	validators.SlashValidator(st, index, proposer, proposer)
	return nil
}

func verifyHeaderSignature(st *state.BeaconState, v *state.Validator, sh *state.SignedBeaconBlockHeader) (bool, error) {
	cfg := params.BeaconConfig()
	epoch := time.ComputeEpochAtSlot(sh.Header.Slot)
	domain, err := signing.Domain(st.Fork, epoch, cfg.DomainBeaconProposer, st.GenesisValidatorsRoot)
	if err != nil {
		return false, err
	}
	return signing.VerifySigningRoot(bls.PublicKey(v.Pubkey), sh.Header, domain, bls.Signature(sh.Signature))
}
