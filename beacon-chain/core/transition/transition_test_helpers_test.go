package transition

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/go-bitfield"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/execution"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

// fakeTransitionBLS always accepts, so tests can exercise signature-gated
// paths (randao, sync aggregate, proposer signature) without real pairing
// crypto.
type fakeTransitionBLS struct{}

func (fakeTransitionBLS) Verify(bls.PublicKey, [32]byte, bls.Signature) (bool, error) {
	return true, nil
}
func (fakeTransitionBLS) FastAggregateVerify([]bls.PublicKey, [32]byte, bls.Signature) (bool, error) {
	return true, nil
}
func (fakeTransitionBLS) Aggregate(pks []bls.PublicKey) (bls.PublicKey, error) {
	var out bls.PublicKey
	for _, pk := range pks {
		for i := range out {
			out[i] ^= pk[i]
		}
	}
	return out, nil
}

// acceptingEngine always reports a payload valid.
type acceptingEngine struct{}

func (acceptingEngine) VerifyAndNotifyNewPayload(ctx context.Context, req *execution.NewPayloadRequest) (bool, error) {
	return true, nil
}

func newTransitionTestState(t *testing.T, n int) *state.BeaconState {
	t.Helper()
	cfg := params.MainnetConfig()
	validators := make([]*state.Validator, n)
	balances := make([]state.Gwei, n)
	for i := range validators {
		validators[i] = &state.Validator{
			ActivationEpoch:   0,
			ExitEpoch:         primitives.Epoch(cfg.FarFutureEpoch),
			WithdrawableEpoch: primitives.Epoch(cfg.FarFutureEpoch),
			EffectiveBalance:  state.Gwei(cfg.MaxEffectiveBalance),
			Pubkey:            state.BLSPubkey{byte(i), byte(i >> 8)},
		}
		balances[i] = state.Gwei(cfg.MaxEffectiveBalance)
	}
	return &state.BeaconState{
		Slot:                       primitives.Slot(cfg.SlotsPerEpoch * 10),
		Fork:                       &state.Fork{CurrentVersion: cfg.CapellaForkVersion, PreviousVersion: cfg.CapellaForkVersion},
		Validators:                 validators,
		Balances:                   balances,
		RandaoMixes:                make([][32]byte, cfg.EpochsPerHistoricalVector),
		BlockRoots:                 make([][32]byte, cfg.SlotsPerHistoricalRoot),
		StateRoots:                 make([][32]byte, cfg.SlotsPerHistoricalRoot),
		Slashings:                  make([]state.Gwei, cfg.EpochsPerSlashingsVector),
		PreviousEpochParticipation: make([]uint8, n),
		CurrentEpochParticipation:  make([]uint8, n),
		InactivityScores:           make([]uint64, n),
		JustificationBits:          bitfield.Bitvector4{0x00},
		Eth1Data:                   &state.Eth1Data{},
	}
}
