package helpers

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/time"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/hash"
)

// domainBeaconAttester and domainBeaconProposer are the seed domains for
// committee and proposer selection; they hold the same values as the
// config's DomainBeaconAttester and DomainBeaconProposer.
var domainBeaconAttester = [4]byte{1, 0, 0, 0}
var domainBeaconProposer = [4]byte{0, 0, 0, 0}

// ComputeCommittee partitions indices into count committees and returns
// committee number `index` via the shuffled-index mapping (compute_committee).
func ComputeCommittee(indices []primitives.ValidatorIndex, seed [32]byte, index, count uint64) ([]primitives.ValidatorIndex, error) {
	total := uint64(len(indices))
	start := (total * index) / count
	end := (total * (index + 1)) / count

	out := make([]primitives.ValidatorIndex, 0, end-start)
	for i := start; i < end; i++ {
		shuffled, err := ComputeShuffledIndex(i, total, seed)
		if err != nil {
			return nil, err
		}
		out = append(out, indices[shuffled])
	}
	return out, nil
}

// BeaconCommittee returns the attesting committee for (slot, committeeIndex),
// computed for the epoch that contains slot.
func BeaconCommittee(st *state.BeaconState, slot primitives.Slot, committeeIndex primitives.CommitteeIndex) ([]primitives.ValidatorIndex, error) {
	cfg := params.BeaconConfig()
	epoch := time.ComputeEpochAtSlot(slot)
	indices := ActiveValidatorIndices(st.Validators, epoch)

	seed, err := Seed(st, epoch, domainBeaconAttester)
	if err != nil {
		return nil, err
	}

	committeesPerSlot := CommitteeCountPerSlot(uint64(len(indices)))
	slotOffset := uint64(slot) % cfg.SlotsPerEpoch
	committeeIdx := slotOffset*committeesPerSlot + uint64(committeeIndex)
	count := committeesPerSlot * cfg.SlotsPerEpoch

	return ComputeCommittee(indices, seed, committeeIdx, count)
}

// BeaconProposerIndex returns the block proposer for st's current slot.
func BeaconProposerIndex(st *state.BeaconState) (primitives.ValidatorIndex, error) {
	epoch := time.ComputeEpochAtSlot(st.Slot)
	seedBase, err := Seed(st, epoch, domainBeaconProposer)
	if err != nil {
		return 0, err
	}

	buf := make([]byte, 40)
	copy(buf[:32], seedBase[:])
	putUint64LE(buf[32:], uint64(st.Slot))
	seed := hash.Hash(buf)

	indices := ActiveValidatorIndices(st.Validators, epoch)
	if len(indices) == 0 {
		return 0, errors.New("helpers: no active validators to select a proposer from")
	}
	asUint64 := make([]uint64, len(indices))
	for i, idx := range indices {
		asUint64[i] = uint64(idx)
	}

	proposer, err := ComputeProposerIndex(func(i uint64) uint64 {
		return uint64(st.Validators[i].EffectiveBalance)
	}, asUint64, seed)
	if err != nil {
		return 0, err
	}
	return primitives.ValidatorIndex(proposer), nil
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
