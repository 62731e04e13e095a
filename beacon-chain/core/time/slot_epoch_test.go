package time

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

func TestComputeEpochAtSlot(t *testing.T) {
	require.Equal(t, primitives.Epoch(0), ComputeEpochAtSlot(0))
	require.Equal(t, primitives.Epoch(0), ComputeEpochAtSlot(31))
	require.Equal(t, primitives.Epoch(1), ComputeEpochAtSlot(32))
	require.Equal(t, primitives.Epoch(3), ComputeEpochAtSlot(100))
}

func TestStartSlot(t *testing.T) {
	require.Equal(t, primitives.Slot(0), StartSlot(0))
	require.Equal(t, primitives.Slot(32), StartSlot(1))
}

func TestComputeActivationExitEpoch(t *testing.T) {
	require.Equal(t, primitives.Epoch(9), ComputeActivationExitEpoch(4))
}

func TestPreviousEpoch_ClampsAtGenesis(t *testing.T) {
	require.Equal(t, primitives.Epoch(0), PreviousEpoch(0))
	require.Equal(t, primitives.Epoch(4), PreviousEpoch(5))
}
