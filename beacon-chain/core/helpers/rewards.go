package helpers

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/core/time"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/hash"
)

// BaseRewardPerIncrement is EFFECTIVE_BALANCE_INCREMENT * BASE_REWARD_FACTOR
// / integer_sqrt(total_active_balance), the per-increment unit every
// validator's base_reward scales from.
func BaseRewardPerIncrement(totalActiveBalance uint64) uint64 {
	cfg := params.BeaconConfig()
	return cfg.EffectiveBalanceIncrement * cfg.BaseRewardFactor / hash.IntegerSquareRoot(totalActiveBalance)
}

// BaseReward returns a validator's base_reward: its effective balance in
// increments, times the per-increment reward unit.
func BaseReward(v *state.Validator, totalActiveBalance uint64) uint64 {
	cfg := params.BeaconConfig()
	increments := uint64(v.EffectiveBalance) / cfg.EffectiveBalanceIncrement
	return increments * BaseRewardPerIncrement(totalActiveBalance)
}

// HasFlag reports whether flags has the bit at flagIndex set.
func HasFlag(flags uint8, flagIndex uint8) bool {
	return flags&(1<<flagIndex) != 0
}

// AddFlag returns flags with the bit at flagIndex set.
func AddFlag(flags uint8, flagIndex uint8) uint8 {
	return flags | (1 << flagIndex)
}

// BlockRootAtEpochStart returns get_block_root(epoch): the block root at
// the first slot of epoch.
func BlockRootAtEpochStart(st *state.BeaconState, epoch primitives.Epoch) ([32]byte, error) {
	return st.BlockRootAtSlot(time.StartSlot(epoch))
}
