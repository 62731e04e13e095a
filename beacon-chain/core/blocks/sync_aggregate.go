package blocks

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/signing"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/time"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

// ErrInvalidSyncAggregate marks a signature verification failure.
var ErrInvalidSyncAggregate = errors.New("blocks: invalid sync aggregate")

// blockRoot wraps a bare 32-byte root so it satisfies the
// HashTreeRoot() ([32]byte, error) contract signing.ComputeSigningRoot
// needs — a root's own tree hash is itself, with no further Merkleization.
type blockRoot [32]byte

func (r blockRoot) HashTreeRoot() ([32]byte, error) {
	return [32]byte(r), nil
}

// ProcessSyncAggregate verifies agg's aggregate signature over the
// previous slot's block root under DOMAIN_SYNC_COMMITTEE, then credits
// participant and proposer rewards (and debits absent participants) at
// the sync-committee weight split.
func ProcessSyncAggregate(st *state.BeaconState, agg *state.SyncAggregate) error {
	cfg := params.BeaconConfig()
	committee := st.CurrentSyncCommittee
	if committee == nil {
		return errors.Wrap(ErrInvalidSyncAggregate, "no current sync committee")
	}
	if agg.SyncCommitteeBits.Len() != uint64(len(committee.Pubkeys)) {
		return errors.Wrap(ErrInvalidSyncAggregate, "participation bits length does not match committee size")
	}

	previousSlot := st.Slot
	if previousSlot > 0 {
		previousSlot--
	}
	epoch := time.ComputeEpochAtSlot(previousSlot)
	domain, err := signing.Domain(st.Fork, epoch, cfg.DomainSyncCommittee, st.GenesisValidatorsRoot)
	if err != nil {
		return err
	}
	root, err := st.BlockRootAtSlot(previousSlot)
	if err != nil {
		return err
	}

	participantPubkeys := make([]bls.PublicKey, 0, len(committee.Pubkeys))
	for i, pk := range committee.Pubkeys {
		if agg.SyncCommitteeBits.BitAt(uint64(i)) {
			participantPubkeys = append(participantPubkeys, bls.PublicKey(pk))
		}
	}
	valid, err := signing.VerifyAggregateSigningRoot(participantPubkeys, blockRoot(root), domain, bls.Signature(agg.SyncCommitteeSignature))
	if err != nil {
		return err
	}
	if !valid {
		return errors.Wrap(ErrInvalidSyncAggregate, "aggregate signature verification failed")
	}

	totalActiveBalance := helpers.TotalActiveBalance(st.Validators, st.CurrentEpoch())
	totalActiveIncrements := totalActiveBalance / cfg.EffectiveBalanceIncrement
	totalBaseRewards := helpers.BaseRewardPerIncrement(totalActiveBalance) * totalActiveIncrements
	maxParticipantReward := totalBaseRewards * cfg.SyncRewardWeight / cfg.WeightDenominator / cfg.SlotsPerEpoch
	participantReward := maxParticipantReward / cfg.SyncCommitteeSize

	proposer, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}
	proposerReward := participantReward * cfg.ProposerWeight / (cfg.WeightDenominator - cfg.ProposerWeight)

	pubkeyToIndex := make(map[[48]byte]int, len(st.Validators))
	for i, v := range st.Validators {
		pubkeyToIndex[[48]byte(v.Pubkey)] = i
	}
	for i, pk := range committee.Pubkeys {
		idx, ok := pubkeyToIndex[pk]
		if !ok {
			continue
		}
		if agg.SyncCommitteeBits.BitAt(uint64(i)) {
			st.IncreaseBalance(primitives.ValidatorIndex(idx), state.Gwei(participantReward))
			st.IncreaseBalance(proposer, state.Gwei(proposerReward))
		} else {
			st.DecreaseBalance(primitives.ValidatorIndex(idx), state.Gwei(participantReward))
		}
	}
	return nil
}
