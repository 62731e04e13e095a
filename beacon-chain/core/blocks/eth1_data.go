package blocks

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
)

// ProcessEth1Data appends block's eth1_data vote and, once the votes for
// it cover more than half of the slots in a voting period
// (EPOCHS_PER_ETH1_VOTING_PERIOD * SLOTS_PER_EPOCH), adopts it as
// state.eth1_data.
func ProcessEth1Data(st *state.BeaconState, vote *state.Eth1Data) {
	st.Eth1DataVotes = append(st.Eth1DataVotes, vote)

	count := 0
	for _, v := range st.Eth1DataVotes {
		if *v == *vote {
			count++
		}
	}

	cfg := params.BeaconConfig()
	if uint64(count)*2 > cfg.EpochsPerEth1VotingPeriod*cfg.SlotsPerEpoch {
		st.Eth1Data = vote
	}
}
