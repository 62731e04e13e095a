// Package blocks implements the nine per-block operation processors:
// header validation, proposer/attester slashings, attestations, deposits,
// voluntary exits, BLS-to-execution changes, the withdrawals sweep, and
// the sync aggregate — applied in the strict order the transition driver
// enforces.
package blocks

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
)

// ErrInvalidBlockHeader marks a precondition failure in process_block_header.
var ErrInvalidBlockHeader = errors.New("blocks: invalid block header")

// ProcessBlockHeader validates block against the cached latest_block_header
// and the committee-derived proposer, then caches the new header with a
// zeroed state_root (filled in later by process_slot of the *next* slot).
func ProcessBlockHeader(st *state.BeaconState, blk *state.BeaconBlock) error {
	if blk.Slot != st.Slot {
		return errors.Wrap(ErrInvalidBlockHeader, "block.slot does not match state.slot")
	}
	if blk.Slot <= st.LatestBlockHeader.Slot {
		return errors.Wrap(ErrInvalidBlockHeader, "block.slot does not exceed latest_block_header.slot")
	}

	proposer, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	if blk.ProposerIndex != proposer {
		return errors.Wrap(ErrInvalidBlockHeader, "block.proposer_index does not match computed proposer")
	}

	parentRoot, err := st.LatestBlockHeader.HashTreeRoot()
	if err != nil {
		return err
	}
	if blk.ParentRoot != parentRoot {
		return errors.Wrap(ErrInvalidBlockHeader, "block.parent_root does not match latest_block_header root")
	}

	if int(blk.ProposerIndex) >= len(st.Validators) || st.Validators[blk.ProposerIndex].Slashed {
		log.Debugf("Rejecting block: proposer %d is slashed", blk.ProposerIndex)
		return errors.Wrap(ErrInvalidBlockHeader, "proposer is slashed")
	}

	bodyRoot, err := blk.Body.HashTreeRoot()
	if err != nil {
		return err
	}

	st.LatestBlockHeader = &state.BeaconBlockHeader{
		Slot:          blk.Slot,
		ProposerIndex: blk.ProposerIndex,
		ParentRoot:    blk.ParentRoot,
		StateRoot:     state.Root{},
		BodyRoot:      bodyRoot,
	}
	return nil
}
