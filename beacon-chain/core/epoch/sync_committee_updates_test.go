package epoch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

type fakeSyncUpdateBLS struct{}

func (fakeSyncUpdateBLS) Verify(bls.PublicKey, [32]byte, bls.Signature) (bool, error) {
	return true, nil
}
func (fakeSyncUpdateBLS) FastAggregateVerify([]bls.PublicKey, [32]byte, bls.Signature) (bool, error) {
	return true, nil
}
func (fakeSyncUpdateBLS) Aggregate(pks []bls.PublicKey) (bls.PublicKey, error) {
	var out bls.PublicKey
	for _, pk := range pks {
		for i := range out {
			out[i] ^= pk[i]
		}
	}
	return out, nil
}

func TestProcessSyncCommitteeUpdates_RotatesAtPeriodBoundary(t *testing.T) {
	bls.SetProvider(fakeSyncUpdateBLS{})
	defer bls.SetProvider(nil)

	cfg := params.BeaconConfig()
	s := newEpochTestState(t, int(cfg.SyncCommitteeSize)*4)
	s.Slot = primitives.Slot(cfg.EpochsPerSyncCommitteePeriod*cfg.SlotsPerEpoch - 1)
	next := &state.SyncCommittee{Pubkeys: make([][48]byte, cfg.SyncCommitteeSize)}
	s.NextSyncCommittee = next

	err := ProcessSyncCommitteeUpdates(s)
	require.NoError(t, err)
	require.Same(t, next, s.CurrentSyncCommittee)
	require.NotNil(t, s.NextSyncCommittee)
	require.NotSame(t, next, s.NextSyncCommittee)
}

func TestProcessSyncCommitteeUpdates_NoOpMidPeriod(t *testing.T) {
	s := newEpochTestState(t, 4)
	existing := &state.SyncCommittee{}
	s.CurrentSyncCommittee = existing

	err := ProcessSyncCommitteeUpdates(s)
	require.NoError(t, err)
	require.Same(t, existing, s.CurrentSyncCommittee)
}
