package blocks

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/crypto/bls"
	"github.com/ethsentry/beacon-transition/crypto/hash"
)

func TestProcessBLSToExecutionChange_RejectsNonBLSCredentials(t *testing.T) {
	s := newBlocksTestState(t, 2)
	cfg := params.BeaconConfig()
	s.Validators[0].WithdrawalCredentials[0] = cfg.ETH1AddressWithdrawalPrefixByte

	err := ProcessBLSToExecutionChange(s, &state.SignedBLSToExecutionChange{
		Change: &state.BLSToExecutionChange{ValidatorIndex: 0},
	})
	require.ErrorIs(t, err, ErrInvalidBLSToExecutionChange)
}

func TestProcessBLSToExecutionChange_RejectsPubkeyMismatch(t *testing.T) {
	s := newBlocksTestState(t, 2)
	cfg := params.BeaconConfig()
	s.Validators[0].WithdrawalCredentials[0] = cfg.BLSWithdrawalPrefixByte

	err := ProcessBLSToExecutionChange(s, &state.SignedBLSToExecutionChange{
		Change: &state.BLSToExecutionChange{ValidatorIndex: 0, FromBLSPubkey: state.BLSPubkey{9}},
	})
	require.ErrorIs(t, err, ErrInvalidBLSToExecutionChange)
}

func TestProcessBLSToExecutionChange_RewritesCredentialsOnValidSignature(t *testing.T) {
	bls.SetProvider(fakeBLSProvider{verifyResult: true})
	defer bls.SetProvider(nil)

	s := newBlocksTestState(t, 2)
	cfg := params.BeaconConfig()

	pubkey := state.BLSPubkey{3, 1, 4}
	pkHash := hash.Hash(pubkey[:])
	var creds [32]byte
	creds[0] = cfg.BLSWithdrawalPrefixByte
	copy(creds[1:], pkHash[1:])
	s.Validators[0].WithdrawalCredentials = creds

	toAddr := common.Address{1, 2, 3, 4, 5}
	err := ProcessBLSToExecutionChange(s, &state.SignedBLSToExecutionChange{
		Change: &state.BLSToExecutionChange{
			ValidatorIndex:     0,
			FromBLSPubkey:      pubkey,
			ToExecutionAddress: toAddr,
		},
	})
	require.NoError(t, err)
	require.Equal(t, cfg.ETH1AddressWithdrawalPrefixByte, s.Validators[0].WithdrawalCredentials[0])
	require.Equal(t, toAddr[:], s.Validators[0].WithdrawalCredentials[12:])
}
