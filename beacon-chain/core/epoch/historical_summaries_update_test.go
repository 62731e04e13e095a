package epoch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

func TestProcessHistoricalSummariesUpdate_AppendsAtPeriodBoundary(t *testing.T) {
	s := newEpochTestState(t, 2)
	cfg := params.BeaconConfig()
	period := cfg.SlotsPerHistoricalRoot / cfg.SlotsPerEpoch
	s.Slot = primitives.Slot(period*cfg.SlotsPerEpoch - 1)

	err := ProcessHistoricalSummariesUpdate(s)
	require.NoError(t, err)
	require.Len(t, s.HistoricalSummaries, 1)
}

func TestProcessHistoricalSummariesUpdate_NoOpMidPeriod(t *testing.T) {
	s := newEpochTestState(t, 2)

	err := ProcessHistoricalSummariesUpdate(s)
	require.NoError(t, err)
	require.Empty(t, s.HistoricalSummaries)
}
