package epoch

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/beacon-chain/state/sszutil"
	"github.com/ethsentry/beacon-transition/config/params"
)

// rootsVector wraps a ring-buffer root list so it Merkleizes under the
// same dynssz-size tag BeaconState.BlockRoots/StateRoots carry, letting
// historical summaries hash the vectors without a live BeaconState.
type rootsVector struct {
	Roots [][32]byte `dynssz-size:"SLOTS_PER_HISTORICAL_ROOT,32"`
}

func (r *rootsVector) HashTreeRoot() ([32]byte, error) {
	return sszutil.HashTreeRoot(r)
}

// ProcessHistoricalSummariesUpdate implements process_historical_summaries_update:
// every SLOTS_PER_HISTORICAL_ROOT / SLOTS_PER_EPOCH epochs it snapshots
// the block_roots/state_roots ring buffers into a new HistoricalSummary,
// the Capella-era replacement for the phase0 historical_roots field.
func ProcessHistoricalSummariesUpdate(st *state.BeaconState) error {
	cfg := params.BeaconConfig()
	nextEpoch := st.CurrentEpoch() + 1
	period := cfg.SlotsPerHistoricalRoot / cfg.SlotsPerEpoch
	if uint64(nextEpoch)%period != 0 {
		return nil
	}

	blockRoot, err := (&rootsVector{Roots: st.BlockRoots}).HashTreeRoot()
	if err != nil {
		return err
	}
	stateRoot, err := (&rootsVector{Roots: st.StateRoots}).HashTreeRoot()
	if err != nil {
		return err
	}
	st.HistoricalSummaries = append(st.HistoricalSummaries, &state.HistoricalSummary{
		BlockSummaryRoot: state.Root(blockRoot),
		StateSummaryRoot: state.Root(stateRoot),
	})
	return nil
}
