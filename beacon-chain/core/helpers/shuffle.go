package helpers

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/crypto/hash"
)

// ErrEmptyIndices is returned by ComputeProposerIndex when handed an empty
// candidate set.
var ErrEmptyIndices = errors.New("helpers: compute_proposer_index called with empty indices")

// ComputeShuffledIndex implements the swap-or-not shuffle: a fixed
// SHUFFLE_ROUND_COUNT of rounds, each one a pivot-reflection of the
// current position, bit-exact with the reference algorithm so that
// committee assignment matches every other client byte-for-byte.
func ComputeShuffledIndex(index, indexCount uint64, seed [32]byte) (uint64, error) {
	if indexCount == 0 {
		return 0, errors.New("helpers: index_count must be > 0")
	}
	if index >= indexCount {
		return 0, errors.Errorf("helpers: index %d out of bounds for count %d", index, indexCount)
	}

	rounds := params.BeaconConfig().ShuffleRoundCount
	for round := uint64(0); round < rounds; round++ {
		pivotSource := append(append([]byte{}, seed[:]...), byte(round))
		pivotHash := hash.Hash(pivotSource)
		pivot := bytesToUint64(pivotHash[:8]) % indexCount

		flip := (pivot + indexCount - index) % indexCount
		position := index
		if flip > position {
			position = flip
		}

		source := append(append([]byte{}, seed[:]...), byte(round))
		source = append(source, uint32ToBytes(uint32(position/256))...)
		sourceHash := hash.Hash(source)
		byteVal := sourceHash[(position/8)%32]
		bitVal := (byteVal >> (position % 8)) & 1

		if bitVal == 1 {
			index = flip
		}
	}
	return index, nil
}

func bytesToUint64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8 && i < len(b); i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

func uint32ToBytes(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// ComputeProposerIndex implements compute_proposer_index: repeated
// candidate draws, accepted with probability
// effective_balance / MAX_EFFECTIVE_BALANCE (via a random byte compare),
// until one is accepted. Fails only when indices is empty.
func ComputeProposerIndex(effectiveBalances func(i uint64) uint64, indices []uint64, seed [32]byte) (uint64, error) {
	if len(indices) == 0 {
		return 0, ErrEmptyIndices
	}
	cfg := params.BeaconConfig()
	total := uint64(len(indices))
	i := uint64(0)
	for {
		shuffledIdx, err := ComputeShuffledIndex(i%total, total, seed)
		if err != nil {
			return 0, err
		}
		candidateIndex := indices[shuffledIdx]

		randomByteSource := append(append([]byte{}, seed[:]...), uint64ToBytes(i/32)...)
		randomByteHash := hash.Hash(randomByteSource)
		randomByte := uint64(randomByteHash[i%32])

		effectiveBalance := effectiveBalances(candidateIndex)
		if effectiveBalance*cfg.MaxRandomByte >= cfg.MaxEffectiveBalance*randomByte {
			return candidateIndex, nil
		}
		i++
	}
}

func uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}
