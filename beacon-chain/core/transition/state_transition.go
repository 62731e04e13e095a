package transition

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/execution"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/signing"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

// ErrInvalidProposerSignature marks a failed DOMAIN_BEACON_PROPOSER
// verification of a signed block against the proposer it names.
var ErrInvalidProposerSignature = errors.New("transition: invalid proposer signature")

// ErrStateRootMismatch marks a block whose declared state_root does not
// match the post-state's actual tree hash root.
var ErrStateRootMismatch = errors.New("transition: state_root mismatch")

// StateTransition runs state_transition(state, signed_block, validate_result):
// it advances st to the block's slot, optionally verifies the proposer's
// signature over the block, runs process_block, and, if requested,
// checks the block's declared state_root against the resulting state.
func StateTransition(ctx context.Context, st *state.BeaconState, signed *state.SignedBeaconBlock, eng execution.Engine, verifySignatures bool) error {
	blk := signed.Block

	if err := ProcessSlots(st, blk.Slot); err != nil {
		return err
	}

	if verifySignatures {
		valid, err := verifyProposerSignature(st, blk, signed.Signature)
		if err != nil {
			return err
		}
		if !valid {
			return ErrInvalidProposerSignature
		}
	}

	if err := ProcessBlock(ctx, st, blk, eng); err != nil {
		return err
	}

	if verifySignatures {
		gotRoot, err := st.HashTreeRoot()
		if err != nil {
			return err
		}
		if blk.StateRoot != state.Root(gotRoot) {
			return ErrStateRootMismatch
		}
	}
	return nil
}

func verifyProposerSignature(st *state.BeaconState, blk *state.BeaconBlock, sig state.BLSSignature) (bool, error) {
	cfg := params.BeaconConfig()
	if int(blk.ProposerIndex) >= len(st.Validators) {
		return false, errors.New("transition: proposer index out of range")
	}
	pubkey := st.Validators[blk.ProposerIndex].Pubkey

	domain, err := signing.Domain(st.Fork, st.CurrentEpoch(), cfg.DomainBeaconProposer, st.GenesisValidatorsRoot)
	if err != nil {
		return false, err
	}
	return signing.VerifySigningRoot(bls.PublicKey(pubkey), blk, domain, bls.Signature(sig))
}
