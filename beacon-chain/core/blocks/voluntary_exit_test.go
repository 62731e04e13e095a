package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

func TestProcessVoluntaryExit_RejectsInactiveValidator(t *testing.T) {
	s := newBlocksTestState(t, 4)
	s.Validators[0].ActivationEpoch = primitives.Epoch(params.BeaconConfig().FarFutureEpoch)

	err := ProcessVoluntaryExit(s, &state.SignedVoluntaryExit{
		Exit: &state.VoluntaryExit{ValidatorIndex: 0, Epoch: s.CurrentEpoch()},
	})
	require.ErrorIs(t, err, ErrInvalidVoluntaryExit)
}

func TestProcessVoluntaryExit_RejectsBeforeShardCommitteePeriod(t *testing.T) {
	s := newBlocksTestState(t, 4)
	s.Slot = 1
	s.Validators[0].ActivationEpoch = 0

	err := ProcessVoluntaryExit(s, &state.SignedVoluntaryExit{
		Exit: &state.VoluntaryExit{ValidatorIndex: 0, Epoch: s.CurrentEpoch()},
	})
	require.ErrorIs(t, err, ErrInvalidVoluntaryExit)
}

func TestProcessVoluntaryExit_RejectsAlreadyExiting(t *testing.T) {
	s := newBlocksTestState(t, 4)
	s.Validators[0].ExitEpoch = 5

	err := ProcessVoluntaryExit(s, &state.SignedVoluntaryExit{
		Exit: &state.VoluntaryExit{ValidatorIndex: 0, Epoch: s.CurrentEpoch()},
	})
	require.ErrorIs(t, err, ErrInvalidVoluntaryExit)
}

func TestProcessVoluntaryExit_InitiatesExitOnValidSignature(t *testing.T) {
	bls.SetProvider(fakeBLSProvider{verifyResult: true})
	defer bls.SetProvider(nil)

	s := newBlocksTestState(t, 4)
	cfg := params.BeaconConfig()
	s.Slot = primitives.Slot(cfg.ShardCommitteePeriod * cfg.SlotsPerEpoch)

	err := ProcessVoluntaryExit(s, &state.SignedVoluntaryExit{
		Exit: &state.VoluntaryExit{ValidatorIndex: 0, Epoch: s.CurrentEpoch()},
	})
	require.NoError(t, err)
	require.NotEqual(t, primitives.Epoch(cfg.FarFutureEpoch), s.Validators[0].ExitEpoch)
}

func TestProcessVoluntaryExit_RejectsInvalidSignature(t *testing.T) {
	bls.SetProvider(fakeBLSProvider{verifyResult: false})
	defer bls.SetProvider(nil)

	s := newBlocksTestState(t, 4)
	cfg := params.BeaconConfig()
	s.Slot = primitives.Slot(cfg.ShardCommitteePeriod * cfg.SlotsPerEpoch)

	err := ProcessVoluntaryExit(s, &state.SignedVoluntaryExit{
		Exit: &state.VoluntaryExit{ValidatorIndex: 0, Epoch: s.CurrentEpoch()},
	})
	require.ErrorIs(t, err, ErrInvalidVoluntaryExit)
}
