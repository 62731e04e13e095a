package execution

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
)

type fakeEngine struct {
	ok  bool
	err error
}

func (f fakeEngine) VerifyAndNotifyNewPayload(ctx context.Context, req *NewPayloadRequest) (bool, error) {
	return f.ok, f.err
}

func newPayloadTestState(t *testing.T) *state.BeaconState {
	t.Helper()
	cfg := params.MainnetConfig()
	mixes := make([][32]byte, cfg.EpochsPerHistoricalVector)
	return &state.BeaconState{
		GenesisTime: 1000,
		Slot:        5,
		RandaoMixes: mixes,
		LatestExecutionPayloadHeader: &state.ExecutionPayloadHeader{
			BlockHash: [32]byte{9},
		},
	}
}

func TestProcessExecutionPayload_RejectsParentHashMismatch(t *testing.T) {
	s := newPayloadTestState(t)
	cfg := params.BeaconConfig()
	payload := &state.ExecutionPayload{
		ParentHash: [32]byte{1},
		Timestamp:  s.GenesisTime + uint64(s.Slot)*cfg.SecondsPerSlot,
	}
	err := ProcessExecutionPayload(context.Background(), s, payload, [32]byte{}, nil, fakeEngine{ok: true})
	require.ErrorIs(t, err, ErrInvalidBlockHash)
}

func TestProcessExecutionPayload_AcceptsValidPayload(t *testing.T) {
	s := newPayloadTestState(t)
	cfg := params.BeaconConfig()
	payload := &state.ExecutionPayload{
		ParentHash: s.LatestExecutionPayloadHeader.BlockHash,
		PrevRandao: s.RandaoMixAtEpoch(s.CurrentEpoch()),
		Timestamp:  s.GenesisTime + uint64(s.Slot)*cfg.SecondsPerSlot,
		BlockHash:  [32]byte{2},
	}
	err := ProcessExecutionPayload(context.Background(), s, payload, [32]byte{}, nil, fakeEngine{ok: true})
	require.NoError(t, err)
	require.Equal(t, state.Root(payload.BlockHash), s.LatestExecutionPayloadHeader.BlockHash)
}

func TestProcessExecutionPayload_SurfacesEngineRejection(t *testing.T) {
	s := newPayloadTestState(t)
	cfg := params.BeaconConfig()
	payload := &state.ExecutionPayload{
		ParentHash: s.LatestExecutionPayloadHeader.BlockHash,
		PrevRandao: s.RandaoMixAtEpoch(s.CurrentEpoch()),
		Timestamp:  s.GenesisTime + uint64(s.Slot)*cfg.SecondsPerSlot,
	}
	err := ProcessExecutionPayload(context.Background(), s, payload, [32]byte{}, nil, fakeEngine{ok: false})
	require.ErrorIs(t, err, ErrPayloadRejected)
}

func TestVersionedHashes_UsesConfiguredVersionByte(t *testing.T) {
	cfg := params.BeaconConfig()
	hashes := VersionedHashes([][48]byte{{1, 2, 3}})
	require.Len(t, hashes, 1)
	require.Equal(t, cfg.VersionedHashVersionKZG, hashes[0][0])
}

func TestBaseFeePerGas_DecodesLittleEndian(t *testing.T) {
	p := &state.ExecutionPayload{}
	p.BaseFeePerGas[0] = 42
	require.Equal(t, uint64(42), BaseFeePerGas(p).Uint64())
}
