package transition

import (
	"context"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/blocks"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/execution"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
)

// ProcessBlock runs the seven per-block processors in their fixed order:
// header, withdrawals, execution payload, randao, eth1 data, the
// operation lists, and the sync aggregate.
func ProcessBlock(ctx context.Context, st *state.BeaconState, blk *state.BeaconBlock, eng execution.Engine) error {
	if err := blocks.ProcessBlockHeader(st, blk); err != nil {
		return err
	}

	body := blk.Body
	if err := blocks.ProcessWithdrawals(st, body.ExecutionPayload); err != nil {
		return err
	}

	if err := execution.ProcessExecutionPayload(ctx, st, body.ExecutionPayload, [32]byte(blk.ParentRoot), body.BlobKZGCommitments, eng); err != nil {
		return err
	}

	if err := blocks.ProcessRandao(st, body.RandaoReveal); err != nil {
		return err
	}

	blocks.ProcessEth1Data(st, body.Eth1Data)

	if err := blocks.ProcessOperations(st, body); err != nil {
		return err
	}

	if err := blocks.ProcessSyncAggregate(st, body.SyncAggregate); err != nil {
		return err
	}
	return nil
}
