package blocks

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
)

// ErrInvalidOperations marks a block-level operation-count violation.
var ErrInvalidOperations = errors.New("blocks: invalid operations")

// ProcessOperations runs every operation in body against st in the fixed
// kind order proposer slashings, attester slashings, attestations,
// deposits, voluntary exits, BLS-to-execution changes — and, within each
// kind, in the block's declared order.
func ProcessOperations(st *state.BeaconState, body *state.BeaconBlockBody) error {
	outstanding := st.Eth1Data.DepositCount - st.Eth1DepositIndex
	expectedDeposits := outstanding
	if maxDeposits := params.BeaconConfig().MaxDeposits; maxDeposits < outstanding {
		expectedDeposits = maxDeposits
	}
	if uint64(len(body.Deposits)) != expectedDeposits {
		log.Debugf("Rejecting block: got %d deposits, expected %d", len(body.Deposits), expectedDeposits)
		return errors.Wrap(ErrInvalidOperations, "deposit count does not match outstanding eth1 deposits")
	}

	for _, ps := range body.ProposerSlashings {
		if err := ProcessProposerSlashing(st, ps); err != nil {
			return err
		}
	}
	for _, as := range body.AttesterSlashings {
		if err := ProcessAttesterSlashing(st, as); err != nil {
			return err
		}
	}
	for _, att := range body.Attestations {
		if err := ProcessAttestation(st, att); err != nil {
			return err
		}
	}
	for _, d := range body.Deposits {
		if err := ProcessDeposit(st, d); err != nil {
			return err
		}
	}
	for _, se := range body.VoluntaryExits {
		if err := ProcessVoluntaryExit(st, se); err != nil {
			return err
		}
	}
	for _, sc := range body.BLSToExecutionChanges {
		if err := ProcessBLSToExecutionChange(st, sc); err != nil {
			return err
		}
	}
	return nil
}
