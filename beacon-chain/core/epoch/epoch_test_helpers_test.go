package epoch

import (
	"testing"

	"github.com/prysmaticlabs/go-bitfield"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

func newEpochTestState(t *testing.T, n int) *state.BeaconState {
	t.Helper()
	cfg := params.MainnetConfig()
	validatorsSlice := make([]*state.Validator, n)
	balances := make([]state.Gwei, n)
	prevParticipation := make([]byte, n)
	currParticipation := make([]byte, n)
	inactivityScores := make([]uint64, n)
	for i := range validatorsSlice {
		validatorsSlice[i] = &state.Validator{
			ActivationEpoch:            0,
			ActivationEligibilityEpoch: 0,
			ExitEpoch:                  primitives.Epoch(cfg.FarFutureEpoch),
			WithdrawableEpoch:          primitives.Epoch(cfg.FarFutureEpoch),
			EffectiveBalance:           state.Gwei(cfg.MaxEffectiveBalance),
		}
		balances[i] = state.Gwei(cfg.MaxEffectiveBalance)
	}
	return &state.BeaconState{
		// One before an epoch boundary: ProcessEpoch runs while state.slot
		// still belongs to the epoch that is ending, exactly as the
		// transition driver invokes it.
		Slot:                       primitives.Slot(cfg.SlotsPerEpoch*10 - 1),
		Validators:                 validatorsSlice,
		Balances:                   balances,
		RandaoMixes:                make([][32]byte, cfg.EpochsPerHistoricalVector),
		Slashings:                  make([]state.Gwei, cfg.EpochsPerSlashingsVector),
		BlockRoots:                 make([][32]byte, cfg.SlotsPerHistoricalRoot),
		StateRoots:                 make([][32]byte, cfg.SlotsPerHistoricalRoot),
		PreviousEpochParticipation: prevParticipation,
		CurrentEpochParticipation:  currParticipation,
		InactivityScores:           inactivityScores,
		JustificationBits:          bitfield.Bitvector4{0x00},
		FinalizedCheckpoint:        state.Checkpoint{Epoch: 6},
		PreviousJustifiedCheckpoint: state.Checkpoint{Epoch: 7},
		CurrentJustifiedCheckpoint:  state.Checkpoint{Epoch: 8},
		Eth1Data:                    &state.Eth1Data{},
	}
}
