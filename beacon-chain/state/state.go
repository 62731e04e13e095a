package state

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// ErrParticipationLengthMismatch marks a consistency failure: the
// registry-parallel lists (validators, balances, participation,
// inactivity scores) must always share one length.
var ErrParticipationLengthMismatch = errors.New("state: registry-parallel list length mismatch")

// ErrSlotOutOfRange is returned by the ring-buffer accessors when the
// requested slot/epoch falls outside the addressable history window.
var ErrSlotOutOfRange = errors.New("state: slot outside addressable ring-buffer window")

// Validate checks the cross-entity invariants that must hold for every
// BeaconState the core hands back to a caller.
func (s *BeaconState) Validate() error {
	n := len(s.Validators)
	if len(s.Balances) != n || len(s.PreviousEpochParticipation) != n ||
		len(s.CurrentEpochParticipation) != n || len(s.InactivityScores) != n {
		return ErrParticipationLengthMismatch
	}
	if s.PreviousJustifiedCheckpoint.Epoch > s.CurrentJustifiedCheckpoint.Epoch {
		return errors.New("state: previous_justified.epoch > current_justified.epoch")
	}
	if s.FinalizedCheckpoint.Epoch > s.PreviousJustifiedCheckpoint.Epoch {
		return errors.New("state: finalized.epoch > previous_justified.epoch")
	}
	return nil
}

// NumValidators returns the registry length N.
func (s *BeaconState) NumValidators() uint64 { return uint64(len(s.Validators)) }

// Copy performs a simple (if costly) atomicity mechanism: every slice and
// every pointed-to struct the transition driver can mutate is duplicated,
// so a failed block leaves the original untouched. Sync committees are
// the one exception: they are swapped in whole on rotation and never
// field-mutated, so sharing the pointer across the clone is safe.
func (s *BeaconState) Copy() *BeaconState {
	cp := *s

	if s.Fork != nil {
		f := *s.Fork
		cp.Fork = &f
	}
	if s.LatestBlockHeader != nil {
		h := *s.LatestBlockHeader
		cp.LatestBlockHeader = &h
	}
	cp.BlockRoots = copy2D(s.BlockRoots)
	cp.StateRoots = copy2D(s.StateRoots)
	cp.HistoricalRoots = append([]Root(nil), s.HistoricalRoots...)

	if s.Eth1Data != nil {
		e := *s.Eth1Data
		cp.Eth1Data = &e
	}
	cp.Eth1DataVotes = make([]*Eth1Data, len(s.Eth1DataVotes))
	for i, v := range s.Eth1DataVotes {
		if v != nil {
			cv := *v
			cp.Eth1DataVotes[i] = &cv
		}
	}

	cp.Validators = make([]*Validator, len(s.Validators))
	for i, v := range s.Validators {
		if v != nil {
			cv := *v
			cp.Validators[i] = &cv
		}
	}
	cp.Balances = append([]Gwei(nil), s.Balances...)
	cp.RandaoMixes = copy2D(s.RandaoMixes)
	cp.Slashings = append([]Gwei(nil), s.Slashings...)
	cp.PreviousEpochParticipation = append([]byte(nil), s.PreviousEpochParticipation...)
	cp.CurrentEpochParticipation = append([]byte(nil), s.CurrentEpochParticipation...)
	cp.JustificationBits = append(cp.JustificationBits[:0:0], s.JustificationBits...)
	cp.InactivityScores = append([]uint64(nil), s.InactivityScores...)

	// CurrentSyncCommittee/NextSyncCommittee are intentionally shared:
	// rotation always replaces the pointer wholesale, never mutates fields.

	if s.LatestExecutionPayloadHeader != nil {
		h := *s.LatestExecutionPayloadHeader
		cp.LatestExecutionPayloadHeader = &h
	}
	cp.HistoricalSummaries = make([]*HistoricalSummary, len(s.HistoricalSummaries))
	for i, v := range s.HistoricalSummaries {
		if v != nil {
			cv := *v
			cp.HistoricalSummaries[i] = &cv
		}
	}

	return &cp
}

func copy2D(src [][32]byte) [][32]byte {
	out := make([][32]byte, len(src))
	copy(out, src)
	return out
}

// CurrentEpoch returns slot/SLOTS_PER_EPOCH (floor).
func (s *BeaconState) CurrentEpoch() primitives.Epoch {
	cfg := params.BeaconConfig()
	return primitives.Epoch(uint64(s.Slot) / cfg.SlotsPerEpoch)
}

// PreviousEpoch returns max(GENESIS_EPOCH, current_epoch - 1).
func (s *BeaconState) PreviousEpoch() primitives.Epoch {
	cur := s.CurrentEpoch()
	cfg := params.BeaconConfig()
	if cur == primitives.Epoch(cfg.GenesisEpoch) {
		return cur
	}
	return cur - 1
}

// BlockRootAtSlot returns block_roots[slot mod SLOTS_PER_HISTORICAL_ROOT],
// but only for slot within [state.slot - SLOTS_PER_HISTORICAL_ROOT,
// state.slot).
func (s *BeaconState) BlockRootAtSlot(slot primitives.Slot) ([32]byte, error) {
	cfg := params.BeaconConfig()
	if slot >= s.Slot || uint64(s.Slot)-uint64(slot) > cfg.SlotsPerHistoricalRoot {
		return [32]byte{}, ErrSlotOutOfRange
	}
	return s.BlockRoots[uint64(slot)%cfg.SlotsPerHistoricalRoot], nil
}

// SetBlockRootAtSlot writes block_roots[slot mod SLOTS_PER_HISTORICAL_ROOT].
func (s *BeaconState) SetBlockRootAtSlot(slot primitives.Slot, root [32]byte) {
	cfg := params.BeaconConfig()
	s.BlockRoots[uint64(slot)%cfg.SlotsPerHistoricalRoot] = root
}

// StateRootAtSlot mirrors BlockRootAtSlot for state_roots.
func (s *BeaconState) StateRootAtSlot(slot primitives.Slot) ([32]byte, error) {
	cfg := params.BeaconConfig()
	if slot >= s.Slot || uint64(s.Slot)-uint64(slot) > cfg.SlotsPerHistoricalRoot {
		return [32]byte{}, ErrSlotOutOfRange
	}
	return s.StateRoots[uint64(slot)%cfg.SlotsPerHistoricalRoot], nil
}

// SetStateRootAtSlot writes state_roots[slot mod SLOTS_PER_HISTORICAL_ROOT].
func (s *BeaconState) SetStateRootAtSlot(slot primitives.Slot, root [32]byte) {
	cfg := params.BeaconConfig()
	s.StateRoots[uint64(slot)%cfg.SlotsPerHistoricalRoot] = root
}

// RandaoMixAtEpoch returns randao_mixes[epoch mod EPOCHS_PER_HISTORICAL_VECTOR].
func (s *BeaconState) RandaoMixAtEpoch(epoch primitives.Epoch) [32]byte {
	cfg := params.BeaconConfig()
	return s.RandaoMixes[uint64(epoch)%cfg.EpochsPerHistoricalVector]
}

// SetRandaoMixAtEpoch writes randao_mixes[epoch mod EPOCHS_PER_HISTORICAL_VECTOR].
func (s *BeaconState) SetRandaoMixAtEpoch(epoch primitives.Epoch, mix [32]byte) {
	cfg := params.BeaconConfig()
	s.RandaoMixes[uint64(epoch)%cfg.EpochsPerHistoricalVector] = mix
}

// SlashingAtEpoch returns slashings[epoch mod EPOCHS_PER_SLASHINGS_VECTOR].
func (s *BeaconState) SlashingAtEpoch(epoch primitives.Epoch) Gwei {
	cfg := params.BeaconConfig()
	return s.Slashings[uint64(epoch)%cfg.EpochsPerSlashingsVector]
}

// SetSlashingAtEpoch writes slashings[epoch mod EPOCHS_PER_SLASHINGS_VECTOR].
func (s *BeaconState) SetSlashingAtEpoch(epoch primitives.Epoch, amount Gwei) {
	cfg := params.BeaconConfig()
	s.Slashings[uint64(epoch)%cfg.EpochsPerSlashingsVector] = amount
}

// IncreaseBalance credits balances[index] by delta.
func (s *BeaconState) IncreaseBalance(index primitives.ValidatorIndex, delta Gwei) {
	s.Balances[index] += delta
}

// DecreaseBalance debits balances[index] by delta, saturating at zero
// rather than underflowing.
func (s *BeaconState) DecreaseBalance(index primitives.ValidatorIndex, delta Gwei) {
	if delta > s.Balances[index] {
		s.Balances[index] = 0
		return
	}
	s.Balances[index] -= delta
}
