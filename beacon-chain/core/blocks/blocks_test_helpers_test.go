package blocks

import (
	"testing"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

// fakeBLSProvider is a deterministic stand-in that lets operation tests
// exercise both sides of a signature check without pulling real pairing
// crypto into the unit tests.
type fakeBLSProvider struct {
	verifyResult bool
	verifyErr    error
}

func (f fakeBLSProvider) Verify(bls.PublicKey, [32]byte, bls.Signature) (bool, error) {
	return f.verifyResult, f.verifyErr
}

func (f fakeBLSProvider) FastAggregateVerify(pks []bls.PublicKey, _ [32]byte, _ bls.Signature) (bool, error) {
	return f.verifyResult, f.verifyErr
}

func (f fakeBLSProvider) Aggregate(pks []bls.PublicKey) (bls.PublicKey, error) {
	var out bls.PublicKey
	return out, nil
}

func newBlocksTestState(t *testing.T, n int) *state.BeaconState {
	t.Helper()
	cfg := params.MainnetConfig()
	validators := make([]*state.Validator, n)
	balances := make([]state.Gwei, n)
	for i := range validators {
		validators[i] = &state.Validator{
			ActivationEpoch:  0,
			ExitEpoch:        primitives.Epoch(cfg.FarFutureEpoch),
			WithdrawableEpoch: primitives.Epoch(cfg.FarFutureEpoch),
			EffectiveBalance: state.Gwei(cfg.MaxEffectiveBalance),
		}
		balances[i] = state.Gwei(cfg.MaxEffectiveBalance)
	}
	mixes := make([][32]byte, cfg.EpochsPerHistoricalVector)
	blockRoots := make([][32]byte, cfg.SlotsPerHistoricalRoot)
	stateRoots := make([][32]byte, cfg.SlotsPerHistoricalRoot)
	return &state.BeaconState{
		Slot:                       primitives.Slot(cfg.SlotsPerEpoch * 10),
		Fork:                       &state.Fork{CurrentVersion: cfg.CapellaForkVersion, PreviousVersion: cfg.CapellaForkVersion},
		Validators:                 validators,
		Balances:                   balances,
		RandaoMixes:                mixes,
		BlockRoots:                 blockRoots,
		StateRoots:                 stateRoots,
		Slashings:                  make([]state.Gwei, cfg.EpochsPerSlashingsVector),
		PreviousEpochParticipation: make([]uint8, n),
		CurrentEpochParticipation:  make([]uint8, n),
		Eth1Data:                   &state.Eth1Data{},
	}
}
