package transition

import (
	"sync"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// skipSlotKey identifies a skip-ahead request by both its target slot and
// its starting state's root: two different forks requesting the same
// target slot must never be handed each other's cached result.
type skipSlotKey struct {
	slot primitives.Slot
	root [32]byte
}

// skipSlotCache memoizes the post-state of advancing through a run of
// empty slots (no block at any of them), keyed by (starting root, target
// slot), so a repeated request to skip the same fork to the same slot does
// not pay the full process_slot/process_epoch cost again. ProcessSlots marks
// a key in progress while it computes but never waits on that marker: two
// concurrent requests for the same key each compute the result themselves.
type skipSlotCache struct {
	mu         sync.Mutex
	enabled    bool
	states     map[skipSlotKey]*state.BeaconState
	inProgress map[skipSlotKey]bool
}

// SkipSlotCache is the package-level cache ProcessSlots consults. It is
// disabled by default; call Enable to turn it on for a block-processing
// session and Disable to turn it back off.
var SkipSlotCache = &skipSlotCache{
	states:     make(map[skipSlotKey]*state.BeaconState),
	inProgress: make(map[skipSlotKey]bool),
}

// Enable turns the cache on.
func (c *skipSlotCache) Enable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = true
}

// Disable turns the cache off and drops everything cached.
func (c *skipSlotCache) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = false
	c.states = make(map[skipSlotKey]*state.BeaconState)
	c.inProgress = make(map[skipSlotKey]bool)
}

// Get returns a copy of the cached state for (root, slot), or nil if the
// cache is disabled or holds nothing for that key.
func (c *skipSlotCache) Get(root [32]byte, slot primitives.Slot) *state.BeaconState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return nil
	}
	cached, ok := c.states[skipSlotKey{slot: slot, root: root}]
	if !ok {
		return nil
	}
	return cached.Copy()
}

// MarkInProgress records that (root, slot) is being computed, so a
// concurrent caller can back off instead of duplicating the work. It is
// a no-op when the cache is disabled.
func (c *skipSlotCache) MarkInProgress(root [32]byte, slot primitives.Slot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	c.inProgress[skipSlotKey{slot: slot, root: root}] = true
}

// MarkNotInProgress clears the in-progress marker set by MarkInProgress.
func (c *skipSlotCache) MarkNotInProgress(root [32]byte, slot primitives.Slot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inProgress, skipSlotKey{slot: slot, root: root})
}

// InProgress reports whether (root, slot) is currently being computed by
// another caller.
func (c *skipSlotCache) InProgress(root [32]byte, slot primitives.Slot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inProgress[skipSlotKey{slot: slot, root: root}]
}

// Put stores a copy of st under (root, slot).
func (c *skipSlotCache) Put(root [32]byte, slot primitives.Slot, st *state.BeaconState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	c.states[skipSlotKey{slot: slot, root: root}] = st.Copy()
}
