// Package sszutil wraps github.com/pk910/dynamic-ssz with the constant
// values of the active params.BeaconChainConfig, giving every type in
// beacon-chain/state a Merkleization/encoding engine that tracks whichever
// network is active without per-preset code generation.
package sszutil

import (
	"sync"
	"sync/atomic"

	dynssz "github.com/pk910/dynamic-ssz"

	"github.com/ethsentry/beacon-transition/config/params"
)

var (
	mu      sync.Mutex
	engine  atomic.Pointer[dynssz.DynSsz]
	builtOn *params.BeaconChainConfig
)

// Engine returns a *dynssz.DynSsz built from the currently active
// BeaconChainConfig, rebuilding it if the config has changed since the
// last call (tests frequently swap configs via params.UseBeaconConfig).
func Engine() *dynssz.DynSsz {
	cfg := params.BeaconConfig()
	if e := engine.Load(); e != nil && builtOn == cfg {
		return e
	}
	mu.Lock()
	defer mu.Unlock()
	if e := engine.Load(); e != nil && builtOn == cfg {
		return e
	}
	e := dynssz.NewDynSsz(cfg.SpecValues())
	engine.Store(e)
	builtOn = cfg
	return e
}

// HashTreeRoot Merkleizes v per the SSZ tree_hash_root rules.
func HashTreeRoot(v any) ([32]byte, error) {
	return Engine().HashTreeRoot(v)
}

// MarshalSSZ encodes v to its canonical SSZ wire form.
func MarshalSSZ(v any) ([]byte, error) {
	return Engine().MarshalSSZ(v)
}

// UnmarshalSSZ decodes buf into v (a pointer).
func UnmarshalSSZ(v any, buf []byte) error {
	return Engine().UnmarshalSSZ(v, buf)
}
