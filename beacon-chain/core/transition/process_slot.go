// Package transition implements the top-level state-transition driver:
// process_slot, process_slots (which runs the epoch-boundary pipeline
// whenever a slot crosses into a new epoch), process_block, and the
// state_transition entry point that ties them together.
package transition

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/epoch"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// ErrSlotInPast marks an attempt to advance a state to a slot at or
// before its current slot.
var ErrSlotInPast = errors.New("transition: target slot not in the future")

// ProcessSlot caches the pre-state root into state_roots and, once the
// block for the current slot has set latest_block_header.state_root to
// zero, backfills it with that same root; it then caches the previous
// block header's own root into block_roots. Both writes address the
// ring buffers at the *current* slot, before slot is incremented.
func ProcessSlot(st *state.BeaconState) error {
	stateRoot, err := st.HashTreeRoot()
	if err != nil {
		return err
	}
	st.SetStateRootAtSlot(st.Slot, stateRoot)

	if st.LatestBlockHeader.StateRoot == (state.Root{}) {
		st.LatestBlockHeader.StateRoot = state.Root(stateRoot)
	}

	headerRoot, err := st.LatestBlockHeader.HashTreeRoot()
	if err != nil {
		return err
	}
	st.SetBlockRootAtSlot(st.Slot, headerRoot)
	return nil
}

// ProcessSlots advances st from its current slot up to (but not
// including running process_block for) slot, running process_slot at
// every step and the full epoch-boundary pipeline whenever the step
// crosses a SLOTS_PER_EPOCH boundary.
func ProcessSlots(st *state.BeaconState, slot primitives.Slot) error {
	if slot <= st.Slot {
		return errors.Wrap(ErrSlotInPast, "")
	}

	startRoot, err := st.HashTreeRoot()
	if err != nil {
		return err
	}
	if cached := SkipSlotCache.Get(startRoot, slot); cached != nil {
		*st = *cached
		return nil
	}
	SkipSlotCache.MarkInProgress(startRoot, slot)
	defer SkipSlotCache.MarkNotInProgress(startRoot, slot)

	cfg := params.BeaconConfig()
	for st.Slot < slot {
		if err := ProcessSlot(st); err != nil {
			return err
		}
		if (uint64(st.Slot)+1)%cfg.SlotsPerEpoch == 0 {
			if err := epoch.ProcessEpoch(st); err != nil {
				return err
			}
		}
		st.Slot++
	}
	SkipSlotCache.Put(startRoot, slot, st)
	return nil
}
