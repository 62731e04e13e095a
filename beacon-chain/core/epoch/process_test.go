package epoch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/crypto/bls"
)

func TestProcessEpoch_RunsAllStepsWithoutError(t *testing.T) {
	bls.SetProvider(fakeSyncUpdateBLS{})
	defer bls.SetProvider(nil)

	s := newEpochTestState(t, 8)

	err := ProcessEpoch(s)
	require.NoError(t, err)
	require.Len(t, s.CurrentEpochParticipation, 8)
	require.Len(t, s.PreviousEpochParticipation, 8)
}
