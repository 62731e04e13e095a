// Package time implements slot/epoch conversion helpers: compute_epoch_at_slot,
// compute_start_slot_at_epoch, compute_activation_exit_epoch, and the
// current/previous-epoch accessors derived from them.
package time

import (
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// CurrentEpoch returns compute_epoch_at_slot(slot).
func CurrentEpoch(slot primitives.Slot) primitives.Epoch {
	return ComputeEpochAtSlot(slot)
}

// ComputeEpochAtSlot returns floor(slot / SLOTS_PER_EPOCH).
func ComputeEpochAtSlot(slot primitives.Slot) primitives.Epoch {
	return primitives.Epoch(uint64(slot) / params.BeaconConfig().SlotsPerEpoch)
}

// StartSlot returns the first slot of epoch.
func StartSlot(epoch primitives.Epoch) primitives.Slot {
	return primitives.Slot(uint64(epoch) * params.BeaconConfig().SlotsPerEpoch)
}

// ComputeActivationExitEpoch returns epoch + 1 + MAX_SEED_LOOKAHEAD, the
// earliest epoch a validator activated/exited "now" can take effect.
func ComputeActivationExitEpoch(epoch primitives.Epoch) primitives.Epoch {
	return epoch + 1 + primitives.Epoch(params.BeaconConfig().MaxSeedLookahead)
}

// PreviousEpoch returns max(GENESIS_EPOCH, current_epoch - 1).
func PreviousEpoch(currentEpoch primitives.Epoch) primitives.Epoch {
	genesis := primitives.Epoch(params.BeaconConfig().GenesisEpoch)
	if currentEpoch == genesis {
		return genesis
	}
	return currentEpoch - 1
}
