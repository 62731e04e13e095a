package epoch

import "github.com/ethsentry/beacon-transition/beacon-chain/state"

// ProcessParticipationFlagUpdates implements process_participation_flag_updates:
// this epoch's current_epoch_participation becomes next epoch's previous,
// and a fresh all-zero vector takes over as current.
func ProcessParticipationFlagUpdates(st *state.BeaconState) error {
	st.PreviousEpochParticipation = st.CurrentEpochParticipation
	st.CurrentEpochParticipation = make([]byte, len(st.Validators))
	return nil
}
