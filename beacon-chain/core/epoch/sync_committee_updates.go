package epoch

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
)

// ProcessSyncCommitteeUpdates implements process_sync_committee_updates:
// every EPOCHS_PER_SYNC_COMMITTEE_PERIOD epochs the pending next
// committee is promoted to current, and a fresh next committee is sampled
// two periods out.
func ProcessSyncCommitteeUpdates(st *state.BeaconState) error {
	cfg := params.BeaconConfig()
	nextEpoch := st.CurrentEpoch() + 1
	if uint64(nextEpoch)%cfg.EpochsPerSyncCommitteePeriod != 0 {
		return nil
	}

	st.CurrentSyncCommittee = st.NextSyncCommittee
	next, err := helpers.NextSyncCommittee(st, st.CurrentEpoch())
	if err != nil {
		return err
	}
	st.NextSyncCommittee = next
	return nil
}
