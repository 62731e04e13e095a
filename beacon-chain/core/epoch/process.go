package epoch

import "github.com/ethsentry/beacon-transition/beacon-chain/state"

// ProcessEpoch runs the twelve epoch-boundary transition functions
// against st in their required order. Callers (process_slots) invoke
// this once per epoch boundary crossed, before the slot counter itself
// advances into the new epoch.
func ProcessEpoch(st *state.BeaconState) error {
	steps := []func(*state.BeaconState) error{
		ProcessJustificationAndFinalization,
		ProcessInactivityUpdates,
		ProcessRewardsAndPenalties,
		ProcessRegistryUpdates,
		ProcessSlashings,
		ProcessEth1DataReset,
		ProcessEffectiveBalanceUpdates,
		ProcessSlashingsReset,
		ProcessRandaoMixesReset,
		ProcessHistoricalSummariesUpdate,
		ProcessParticipationFlagUpdates,
		ProcessSyncCommitteeUpdates,
	}
	for _, step := range steps {
		if err := step(st); err != nil {
			return err
		}
	}
	return nil
}
