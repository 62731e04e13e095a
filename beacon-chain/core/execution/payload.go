// Package execution bridges block processing to the execution layer: it
// assembles the new-payload request the consensus core hands across the
// engine API boundary, derives the versioned hashes a blob-carrying block
// commits to, and exposes that boundary as the Engine capability so the
// transition driver never depends on a concrete engine-API client.
package execution

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/beacon-chain/state/sszutil"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/crypto/hash"
)

// ErrPayloadRejected is returned when the engine accepts the call but
// reports the payload invalid.
var ErrPayloadRejected = errors.New("execution: engine rejected payload")

// ErrInvalidBlockHash is returned when a payload's parent_hash does not
// match the block_hash of state.latest_execution_payload_header (caught
// before ever reaching the engine).
var ErrInvalidBlockHash = errors.New("execution: block hash mismatch")

// NewPayloadRequest is everything the engine_newPayload / blob-sidecar
// verification call needs: the payload itself, the versioned hashes every
// blob commitment derives, and the parent beacon block root the engine
// uses to validate against its own view of the chain.
type NewPayloadRequest struct {
	Payload               *state.ExecutionPayload
	VersionedHashes       []common.Hash
	ParentBeaconBlockRoot [32]byte
}

// Engine is the capability the transition driver calls through to reach
// the execution layer; a concrete engine-API client implements this
// outside the consensus core.
type Engine interface {
	VerifyAndNotifyNewPayload(ctx context.Context, req *NewPayloadRequest) (bool, error)
}

// VersionedHashes derives the KZG versioned hash of each blob commitment:
// VERSIONED_HASH_VERSION_KZG followed by the last 31 bytes of
// sha256(commitment).
func VersionedHashes(commitments [][48]byte) []common.Hash {
	cfg := params.BeaconConfig()
	hashes := make([]common.Hash, len(commitments))
	for i, c := range commitments {
		digest := kzgCommitmentHash(c)
		var h common.Hash
		h[0] = cfg.VersionedHashVersionKZG
		copy(h[1:], digest[1:])
		hashes[i] = h
	}
	return hashes
}

// BaseFeePerGas decodes ExecutionPayload.BaseFeePerGas's little-endian
// 256-bit integer encoding into a uint256.Int for arithmetic comparisons
// (e.g. fee-market validity checks performed outside the consensus core).
func BaseFeePerGas(p *state.ExecutionPayload) *uint256.Int {
	return new(uint256.Int).SetBytes(reverse(p.BaseFeePerGas[:]))
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// ProcessExecutionPayload validates payload against its header-visible
// fields, builds the new-payload request, and calls through eng. An
// engine that reports false (rather than erroring) surfaces as
// ErrPayloadRejected, and a non-nil call error is wrapped and returned
// directly: both are Oracle-kind failures the transition driver treats
// as fatal to the current block.
func ProcessExecutionPayload(ctx context.Context, st *state.BeaconState, payload *state.ExecutionPayload, parentBeaconBlockRoot [32]byte, blobKZGCommitments [][48]byte, eng Engine) error {
	if st.LatestExecutionPayloadHeader != nil && payload.ParentHash != st.LatestExecutionPayloadHeader.BlockHash {
		return errors.Wrap(ErrInvalidBlockHash, "execution_payload.parent_hash does not match latest header block_hash")
	}
	if payload.PrevRandao != st.RandaoMixAtEpoch(st.CurrentEpoch()) {
		return errors.New("execution: execution_payload.prev_randao does not match current randao mix")
	}
	if uint64(payload.Timestamp) != expectedTimestamp(st) {
		return errors.New("execution: execution_payload.timestamp does not match computed slot timestamp")
	}

	req := &NewPayloadRequest{
		Payload:               payload,
		VersionedHashes:       VersionedHashes(blobKZGCommitments),
		ParentBeaconBlockRoot: parentBeaconBlockRoot,
	}

	ok, err := eng.VerifyAndNotifyNewPayload(ctx, req)
	if err != nil {
		return errors.Wrap(err, "execution: engine call failed")
	}
	if !ok {
		return ErrPayloadRejected
	}

	st.LatestExecutionPayloadHeader = headerFromPayload(payload)
	return nil
}

func expectedTimestamp(st *state.BeaconState) uint64 {
	cfg := params.BeaconConfig()
	return st.GenesisTime + uint64(st.Slot)*cfg.SecondsPerSlot
}

func kzgCommitmentHash(c [48]byte) [32]byte {
	return hash.Hash(c[:])
}

// transactionsRootWrapper/withdrawalsRootWrapper let sszutil compute a
// List[...]'s own hash_tree_root: a single-field container's root equals
// merkleize([field_root]), i.e. the field root itself.
type transactionsRootWrapper struct {
	Transactions [][]byte `ssz-max:"1048576,1073741824"`
}

type withdrawalsRootWrapper struct {
	Withdrawals []*state.Withdrawal `dynssz-max:"MAX_WITHDRAWALS_PER_PAYLOAD"`
}

func transactionsRoot(txs [][]byte) state.Root {
	root, err := sszutil.HashTreeRoot(&transactionsRootWrapper{Transactions: txs})
	if err != nil {
		panic("execution: unreachable transactions_root merkleization failure")
	}
	return state.Root(root)
}

func withdrawalsRoot(ws []*state.Withdrawal) state.Root {
	root, err := sszutil.HashTreeRoot(&withdrawalsRootWrapper{Withdrawals: ws})
	if err != nil {
		panic("execution: unreachable withdrawals_root merkleization failure")
	}
	return state.Root(root)
}

func headerFromPayload(p *state.ExecutionPayload) *state.ExecutionPayloadHeader {
	return &state.ExecutionPayloadHeader{
		ParentHash:       p.ParentHash,
		FeeRecipient:     p.FeeRecipient,
		StateRoot:        p.StateRoot,
		ReceiptsRoot:     p.ReceiptsRoot,
		LogsBloom:        p.LogsBloom,
		PrevRandao:       p.PrevRandao,
		BlockNumber:      p.BlockNumber,
		GasLimit:         p.GasLimit,
		GasUsed:          p.GasUsed,
		Timestamp:        p.Timestamp,
		ExtraData:        p.ExtraData,
		BaseFeePerGas:    p.BaseFeePerGas,
		BlockHash:        p.BlockHash,
		TransactionsRoot: transactionsRoot(p.Transactions),
		WithdrawalsRoot:  withdrawalsRoot(p.Withdrawals),
		BlobGasUsed:      p.BlobGasUsed,
		ExcessBlobGas:    p.ExcessBlobGas,
	}
}
