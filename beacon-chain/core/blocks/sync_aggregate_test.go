package blocks

import (
	"testing"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

func newSyncCommittee(t *testing.T, s *state.BeaconState, participating int) *state.SyncAggregate {
	t.Helper()
	pubkeys := make([][48]byte, len(s.Validators))
	for i, v := range s.Validators {
		pubkeys[i] = [48]byte(v.Pubkey)
	}
	s.CurrentSyncCommittee = &state.SyncCommittee{Pubkeys: pubkeys}

	bits := bitfield.NewBitvector512()
	for i := 0; i < participating; i++ {
		bits.SetBitAt(uint64(i), true)
	}
	return &state.SyncAggregate{SyncCommitteeBits: bits}
}

func TestProcessSyncAggregate_RejectsWrongBitLength(t *testing.T) {
	s := newBlocksTestState(t, 4)
	s.CurrentSyncCommittee = &state.SyncCommittee{Pubkeys: make([][48]byte, 2)}

	err := ProcessSyncAggregate(s, &state.SyncAggregate{SyncCommitteeBits: bitfield.NewBitvector512()})
	require.ErrorIs(t, err, ErrInvalidSyncAggregate)
}

func TestProcessSyncAggregate_CreditsParticipantsAndProposer(t *testing.T) {
	bls.SetProvider(fakeBLSProvider{verifyResult: true})
	defer bls.SetProvider(nil)

	s := newBlocksTestState(t, 512)
	s.Slot = 10
	for i, v := range s.Validators {
		v.Pubkey = state.BLSPubkey{byte(i), byte(i >> 8)}
	}
	agg := newSyncCommittee(t, s, 512)

	err := ProcessSyncAggregate(s, agg)
	require.NoError(t, err)
	require.Greater(t, uint64(s.Balances[0]), uint64(0))
}
