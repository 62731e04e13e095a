// Package epoch implements the twelve epoch-boundary transition
// functions, run in a fixed order by ProcessEpoch whenever
// process_slots crosses a SLOTS_PER_EPOCH boundary.
package epoch

import (
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// ProcessJustificationAndFinalization implements process_justification_and_finalization:
// it is a no-op through the second epoch (there is no prior epoch pair to
// justify against yet), then rolls the justification bitvector forward,
// marks the previous/current epoch justified once 2/3 of active balance
// attests to their boundary target, and advances finalization by checking
// the four checkpoint-distance rules in order, letting a later match
// override an earlier one exactly as the reference algorithm's sequential
// if-statements do.
func ProcessJustificationAndFinalization(st *state.BeaconState) error {
	cfg := params.BeaconConfig()
	currentEpoch := st.CurrentEpoch()
	if currentEpoch <= primitives.Epoch(cfg.GenesisEpoch)+1 {
		return nil
	}
	previousEpoch := st.PreviousEpoch()

	previousTargetIndices := filterUnslashedTimelyTarget(st, helpers.ActiveValidatorIndices(st.Validators, previousEpoch), previousEpoch)
	previousTargetBalance := helpers.TotalBalance(st.Validators, previousTargetIndices)

	currentTargetIndices := filterUnslashedTimelyTarget(st, helpers.ActiveValidatorIndices(st.Validators, currentEpoch), currentEpoch)
	currentTargetBalance := helpers.TotalBalance(st.Validators, currentTargetIndices)

	totalActiveBalance := helpers.TotalActiveBalance(st.Validators, currentEpoch)

	oldPreviousJustified := st.PreviousJustifiedCheckpoint
	oldCurrentJustified := st.CurrentJustifiedCheckpoint

	st.PreviousJustifiedCheckpoint = st.CurrentJustifiedCheckpoint

	bits := st.JustificationBits
	var shifted bitfield.Bitvector4
	for i := 1; i < 4; i++ {
		if bits.BitAt(uint64(i - 1)) {
			shifted.SetBitAt(uint64(i), true)
		}
	}
	st.JustificationBits = shifted

	if previousTargetBalance*3 >= totalActiveBalance*2 {
		root, err := helpers.BlockRootAtEpochStart(st, previousEpoch)
		if err != nil {
			return err
		}
		st.CurrentJustifiedCheckpoint = state.Checkpoint{Epoch: previousEpoch, Root: state.Root(root)}
		st.JustificationBits.SetBitAt(1, true)
		log.Infof("Previous epoch %d justified", previousEpoch)
	}
	if currentTargetBalance*3 >= totalActiveBalance*2 {
		root, err := helpers.BlockRootAtEpochStart(st, currentEpoch)
		if err != nil {
			return err
		}
		st.CurrentJustifiedCheckpoint = state.Checkpoint{Epoch: currentEpoch, Root: state.Root(root)}
		st.JustificationBits.SetBitAt(0, true)
		log.Infof("Current epoch %d justified", currentEpoch)
	}

	oldFinalized := st.FinalizedCheckpoint.Epoch
	bits = st.JustificationBits
	if bits.BitAt(1) && bits.BitAt(2) && bits.BitAt(3) && oldPreviousJustified.Epoch+3 == currentEpoch {
		st.FinalizedCheckpoint = oldPreviousJustified
	}
	if bits.BitAt(1) && bits.BitAt(2) && oldPreviousJustified.Epoch+2 == currentEpoch {
		st.FinalizedCheckpoint = oldPreviousJustified
	}
	if bits.BitAt(0) && bits.BitAt(1) && bits.BitAt(2) && oldCurrentJustified.Epoch+2 == currentEpoch {
		st.FinalizedCheckpoint = oldCurrentJustified
	}
	if bits.BitAt(0) && bits.BitAt(1) && oldCurrentJustified.Epoch+1 == currentEpoch {
		st.FinalizedCheckpoint = oldCurrentJustified
	}
	if st.FinalizedCheckpoint.Epoch != oldFinalized {
		log.Infof("New finalized epoch: %d", st.FinalizedCheckpoint.Epoch)
	}
	return nil
}

func filterUnslashedTimelyTarget(st *state.BeaconState, indices []primitives.ValidatorIndex, epoch primitives.Epoch) []primitives.ValidatorIndex {
	cfg := params.BeaconConfig()
	participation := st.CurrentEpochParticipation
	if epoch == st.PreviousEpoch() {
		participation = st.PreviousEpochParticipation
	}
	out := make([]primitives.ValidatorIndex, 0, len(indices))
	for _, idx := range indices {
		if st.Validators[idx].Slashed {
			continue
		}
		if helpers.HasFlag(participation[idx], cfg.TimelyTargetFlagIndex) {
			out = append(out, idx)
		}
	}
	return out
}
