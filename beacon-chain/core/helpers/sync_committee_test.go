package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

type fakeSyncBLS struct{}

func (fakeSyncBLS) Verify(bls.PublicKey, [32]byte, bls.Signature) (bool, error) { return true, nil }
func (fakeSyncBLS) FastAggregateVerify([]bls.PublicKey, [32]byte, bls.Signature) (bool, error) {
	return true, nil
}
func (fakeSyncBLS) Aggregate(pks []bls.PublicKey) (bls.PublicKey, error) {
	var out bls.PublicKey
	for _, pk := range pks {
		for i := range out {
			out[i] ^= pk[i]
		}
	}
	return out, nil
}

func newSyncCommitteeTestState(t *testing.T, n int) *state.BeaconState {
	t.Helper()
	cfg := params.MainnetConfig()
	validatorsSlice := make([]*state.Validator, n)
	for i := range validatorsSlice {
		validatorsSlice[i] = &state.Validator{
			Pubkey:           state.BLSPubkey{byte(i), byte(i >> 8)},
			ActivationEpoch:  0,
			ExitEpoch:        primitives.Epoch(cfg.FarFutureEpoch),
			EffectiveBalance: state.Gwei(cfg.MaxEffectiveBalance),
		}
	}
	return &state.BeaconState{
		Slot:        primitives.Slot(cfg.SlotsPerEpoch * 10),
		Validators:  validatorsSlice,
		RandaoMixes: make([][32]byte, cfg.EpochsPerHistoricalVector),
	}
}

func TestNextSyncCommitteeIndices_ReturnsFullSize(t *testing.T) {
	bls.SetProvider(fakeSyncBLS{})
	defer bls.SetProvider(nil)

	cfg := params.BeaconConfig()
	s := newSyncCommitteeTestState(t, int(cfg.SyncCommitteeSize)*4)

	indices, err := NextSyncCommitteeIndices(s, s.CurrentEpoch())
	require.NoError(t, err)
	require.Len(t, indices, int(cfg.SyncCommitteeSize))
}

func TestNextSyncCommittee_BuildsMatchingPubkeys(t *testing.T) {
	bls.SetProvider(fakeSyncBLS{})
	defer bls.SetProvider(nil)

	cfg := params.BeaconConfig()
	s := newSyncCommitteeTestState(t, int(cfg.SyncCommitteeSize)*4)

	sc, err := NextSyncCommittee(s, s.CurrentEpoch())
	require.NoError(t, err)
	require.Len(t, sc.Pubkeys, int(cfg.SyncCommitteeSize))
}
