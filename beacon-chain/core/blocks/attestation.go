package blocks

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/time"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/hash"
)

// ErrInvalidAttestation marks a shape, timing, or signature failure.
var ErrInvalidAttestation = errors.New("blocks: invalid attestation")

// ProcessAttestation validates att against the committee and timing rules,
// credits newly-timely participation flags for every attesting validator,
// and pays the proposer its share of the resulting reward.
func ProcessAttestation(st *state.BeaconState, att *state.Attestation) error {
	cfg := params.BeaconConfig()
	data := att.Data
	currentEpoch := st.CurrentEpoch()
	previousEpoch := st.PreviousEpoch()

	if data.Target.Epoch != currentEpoch && data.Target.Epoch != previousEpoch {
		return errors.Wrap(ErrInvalidAttestation, "target epoch is neither current nor previous")
	}
	if data.Target.Epoch != time.ComputeEpochAtSlot(data.Slot) {
		return errors.Wrap(ErrInvalidAttestation, "target epoch does not match attestation slot")
	}
	if data.Slot+primitives.Slot(cfg.MinAttestationInclusionDelay) > st.Slot {
		return errors.Wrap(ErrInvalidAttestation, "attestation included before its inclusion delay elapsed")
	}

	committee, err := helpers.BeaconCommittee(st, data.Slot, data.Index)
	if err != nil {
		return err
	}
	committeesPerSlot := helpers.CommitteeCountPerSlot(uint64(len(helpers.ActiveValidatorIndices(st.Validators, time.ComputeEpochAtSlot(data.Slot)))))
	if uint64(data.Index) >= committeesPerSlot {
		return errors.Wrap(ErrInvalidAttestation, "committee index out of range for slot")
	}
	if att.AggregationBits.Len() != uint64(len(committee)) {
		return errors.Wrap(ErrInvalidAttestation, "aggregation bits length does not match committee size")
	}

	attestingIndices := make([]primitives.ValidatorIndex, 0, len(committee))
	for i, idx := range committee {
		if att.AggregationBits.BitAt(uint64(i)) {
			attestingIndices = append(attestingIndices, idx)
		}
	}
	ia := &state.IndexedAttestation{
		AttestingIndices: attestingIndices,
		Data:             data,
		Signature:        att.Signature,
	}
	valid, err := IsValidIndexedAttestation(st, ia)
	if err != nil {
		return err
	}
	if !valid {
		return errors.Wrap(ErrInvalidAttestation, "indexed form does not verify")
	}

	inclusionDelay := uint64(st.Slot - data.Slot)

	justified := st.PreviousJustifiedCheckpoint
	if data.Target.Epoch == currentEpoch {
		justified = st.CurrentJustifiedCheckpoint
	}
	isMatchingSource := data.Source == justified

	var flags uint8
	if isMatchingSource && inclusionDelay <= hash.IntegerSquareRoot(cfg.SlotsPerEpoch) {
		flags = helpers.AddFlag(flags, cfg.TimelySourceFlagIndex)
	}
	targetRoot, err := helpers.BlockRootAtEpochStart(st, data.Target.Epoch)
	if err != nil {
		return err
	}
	if isMatchingSource && data.Target.Root == state.Root(targetRoot) {
		flags = helpers.AddFlag(flags, cfg.TimelyTargetFlagIndex)
	}
	headRoot, err := st.BlockRootAtSlot(data.Slot)
	if err != nil {
		return err
	}
	if isMatchingSource && data.BeaconBlockRoot == state.Root(headRoot) && inclusionDelay == cfg.MinAttestationInclusionDelay {
		flags = helpers.AddFlag(flags, cfg.TimelyHeadFlagIndex)
	}

	participation := st.CurrentEpochParticipation
	if data.Target.Epoch == previousEpoch {
		participation = st.PreviousEpochParticipation
	}

	totalActiveBalance := helpers.TotalActiveBalance(st.Validators, currentEpoch)
	var numerator uint64
	for _, idx := range attestingIndices {
		existing := participation[idx]
		newFlags := existing
		baseReward := helpers.BaseReward(st.Validators[idx], totalActiveBalance)

		for _, weighted := range []struct {
			flagIndex uint8
			weight    uint64
		}{
			{cfg.TimelySourceFlagIndex, cfg.TimelySourceWeight},
			{cfg.TimelyTargetFlagIndex, cfg.TimelyTargetWeight},
			{cfg.TimelyHeadFlagIndex, cfg.TimelyHeadWeight},
		} {
			if helpers.HasFlag(flags, weighted.flagIndex) && !helpers.HasFlag(existing, weighted.flagIndex) {
				newFlags = helpers.AddFlag(newFlags, weighted.flagIndex)
				numerator += baseReward * weighted.weight
			}
		}
		participation[idx] = newFlags
	}

	proposer, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	denominator := (cfg.WeightDenominator - cfg.ProposerWeight) * cfg.WeightDenominator / cfg.ProposerWeight
	st.IncreaseBalance(proposer, state.Gwei(numerator/denominator))
	return nil
}
