package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
)

func TestProcessEth1Data_AdoptsOnMajority(t *testing.T) {
	s := newBlocksTestState(t, 4)
	vote := &state.Eth1Data{DepositCount: 7}

	cfg := params.BeaconConfig()
	periodSlots := int(cfg.EpochsPerEth1VotingPeriod * cfg.SlotsPerEpoch)

	needed := 0
	for i := 0; i < periodSlots && s.Eth1Data != vote; i++ {
		ProcessEth1Data(s, vote)
		needed++
	}
	require.Equal(t, vote, s.Eth1Data)
	require.Greater(t, needed, 0)
}

func TestProcessEth1Data_DoesNotAdoptMinority(t *testing.T) {
	s := newBlocksTestState(t, 4)
	majority := &state.Eth1Data{DepositCount: 1}
	minority := &state.Eth1Data{DepositCount: 2}

	ProcessEth1Data(s, majority)
	ProcessEth1Data(s, majority)
	ProcessEth1Data(s, minority)

	require.NotEqual(t, minority, s.Eth1Data)
}
