package helpers

import (
	"encoding/binary"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/hash"
)

// Seed derives the committee-shuffling seed for epoch under domainType:
// hash(domainType || epoch || randao_mix(epoch + EPOCHS_PER_HISTORICAL_VECTOR - MIN_SEED_LOOKAHEAD - 1)),
// with epoch encoded as 8 little-endian bytes.
func Seed(st *state.BeaconState, epoch primitives.Epoch, domainType [4]byte) ([32]byte, error) {
	cfg := params.BeaconConfig()
	lookback := epoch + primitives.Epoch(cfg.EpochsPerHistoricalVector) -
		primitives.Epoch(cfg.MinSeedLookahead) - 1
	mix := st.RandaoMixAtEpoch(lookback)

	buf := make([]byte, 4+8+32)
	copy(buf[0:4], domainType[:])
	binary.LittleEndian.PutUint64(buf[4:12], uint64(epoch))
	copy(buf[12:44], mix[:])
	return hash.Hash(buf), nil
}

// ValidatorChurnLimit returns the per-epoch exit churn limit: the larger of
// MIN_PER_EPOCH_CHURN_LIMIT and active_validator_count / CHURN_LIMIT_QUOTIENT.
func ValidatorChurnLimit(activeCount uint64) uint64 {
	cfg := params.BeaconConfig()
	limit := activeCount / cfg.ChurnLimitQuotient
	if limit < cfg.MinPerEpochChurnLimit {
		return cfg.MinPerEpochChurnLimit
	}
	return limit
}

// ValidatorActivationChurnLimit returns the Deneb activation churn limit:
// ValidatorChurnLimit capped at MAX_PER_EPOCH_ACTIVATION_CHURN_LIMIT.
func ValidatorActivationChurnLimit(activeCount uint64) uint64 {
	cfg := params.BeaconConfig()
	limit := ValidatorChurnLimit(activeCount)
	if limit > cfg.MaxPerEpochActivationChurnLimit {
		return cfg.MaxPerEpochActivationChurnLimit
	}
	return limit
}

// CommitteeCountPerSlot returns the number of committees active per slot
// during the epoch holding activeCount active validators, clamped to
// [1, MAX_COMMITTEES_PER_SLOT].
func CommitteeCountPerSlot(activeCount uint64) uint64 {
	cfg := params.BeaconConfig()
	count := activeCount / cfg.SlotsPerEpoch / cfg.TargetCommitteeSize
	if count > cfg.MaxCommitteesPerSlot {
		count = cfg.MaxCommitteesPerSlot
	}
	if count < 1 {
		count = 1
	}
	return count
}
