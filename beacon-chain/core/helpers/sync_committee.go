package helpers

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/bls"
	"github.com/ethsentry/beacon-transition/crypto/hash"
)

// NextSyncCommitteeIndices implements get_next_sync_committee_indices: the
// same shuffle-and-accept sampling ComputeProposerIndex uses for proposer
// selection, run under DOMAIN_SYNC_COMMITTEE at epoch+1 until
// SYNC_COMMITTEE_SIZE acceptances are collected (indices may repeat).
func NextSyncCommitteeIndices(st *state.BeaconState, epoch primitives.Epoch) ([]primitives.ValidatorIndex, error) {
	cfg := params.BeaconConfig()
	nextEpoch := epoch + 1

	active := ActiveValidatorIndices(st.Validators, nextEpoch)
	if len(active) == 0 {
		return nil, ErrEmptyIndices
	}

	seed, err := Seed(st, nextEpoch, cfg.DomainSyncCommittee)
	if err != nil {
		return nil, err
	}

	total := uint64(len(active))
	out := make([]primitives.ValidatorIndex, 0, cfg.SyncCommitteeSize)
	i := uint64(0)
	for uint64(len(out)) < cfg.SyncCommitteeSize {
		shuffledIdx, err := ComputeShuffledIndex(i%total, total, seed)
		if err != nil {
			return nil, err
		}
		candidate := active[shuffledIdx]

		randomByte := randomByteAt(seed, i)
		effectiveBalance := uint64(st.Validators[candidate].EffectiveBalance)
		if effectiveBalance*cfg.MaxRandomByte >= cfg.MaxEffectiveBalance*randomByte {
			out = append(out, candidate)
		}
		i++
	}
	return out, nil
}

// NextSyncCommittee builds the SyncCommittee container (pubkeys plus their
// BLS-aggregate) for the set NextSyncCommitteeIndices returns.
func NextSyncCommittee(st *state.BeaconState, epoch primitives.Epoch) (*state.SyncCommittee, error) {
	indices, err := NextSyncCommitteeIndices(st, epoch)
	if err != nil {
		return nil, err
	}
	pubkeys := make([][48]byte, len(indices))
	blsKeys := make([]bls.PublicKey, len(indices))
	for i, idx := range indices {
		pubkeys[i] = [48]byte(st.Validators[idx].Pubkey)
		blsKeys[i] = bls.PublicKey(pubkeys[i])
	}
	aggregate, err := bls.Aggregate(blsKeys)
	if err != nil {
		return nil, err
	}
	return &state.SyncCommittee{
		Pubkeys:         pubkeys,
		AggregatePubkey: [48]byte(aggregate),
	}, nil
}

func randomByteAt(seed [32]byte, i uint64) uint64 {
	source := append(append([]byte{}, seed[:]...), uint64ToBytes(i/32)...)
	h := hash.Hash(source)
	return uint64(h[i%32])
}
