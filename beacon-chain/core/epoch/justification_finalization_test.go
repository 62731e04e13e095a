package epoch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/config/params"
)

func TestProcessJustificationAndFinalization_NoOpBeforeThirdEpoch(t *testing.T) {
	s := newEpochTestState(t, 4)
	s.Slot = 1
	before := s.CurrentJustifiedCheckpoint

	err := ProcessJustificationAndFinalization(s)
	require.NoError(t, err)
	require.Equal(t, before, s.CurrentJustifiedCheckpoint)
}

func TestProcessJustificationAndFinalization_JustifiesOnSupermajority(t *testing.T) {
	s := newEpochTestState(t, 4)
	cfg := params.BeaconConfig()
	for i := range s.PreviousEpochParticipation {
		s.PreviousEpochParticipation[i] = helpers.AddFlag(0, cfg.TimelyTargetFlagIndex)
		s.CurrentEpochParticipation[i] = helpers.AddFlag(0, cfg.TimelyTargetFlagIndex)
	}

	err := ProcessJustificationAndFinalization(s)
	require.NoError(t, err)
	require.Equal(t, s.CurrentEpoch(), s.CurrentJustifiedCheckpoint.Epoch)
	require.True(t, s.JustificationBits.BitAt(0))
	require.True(t, s.JustificationBits.BitAt(1))
}

func TestProcessJustificationAndFinalization_FinalizesPreviousJustifiedWhenNextTwoEpochsJustified(t *testing.T) {
	s := newEpochTestState(t, 4)
	cfg := params.BeaconConfig()
	for i := range s.PreviousEpochParticipation {
		s.PreviousEpochParticipation[i] = helpers.AddFlag(0, cfg.TimelyTargetFlagIndex)
		s.CurrentEpochParticipation[i] = helpers.AddFlag(0, cfg.TimelyTargetFlagIndex)
	}
	s.PreviousJustifiedCheckpoint.Epoch = s.PreviousEpoch() - 1
	s.CurrentJustifiedCheckpoint.Epoch = 0
	s.JustificationBits.SetBitAt(0, true)
	s.JustificationBits.SetBitAt(1, true)

	err := ProcessJustificationAndFinalization(s)
	require.NoError(t, err)
	require.Equal(t, s.PreviousEpoch()-1, s.FinalizedCheckpoint.Epoch)
}
