package blocks

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/signing"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/bls"
	"github.com/ethsentry/beacon-transition/crypto/hash"
)

// ErrInvalidDeposit marks a bad Merkle branch; an invalid deposit
// signature is NOT an error (see ApplyDeposit) but a silent no-op.
var ErrInvalidDeposit = errors.New("blocks: invalid deposit Merkle proof")

// DepositMessageSigningRoot computes the signing root a deposit's BLS
// signature is checked against: compute_signing_root(DepositMessage,
// DOMAIN_DEPOSIT), using the genesis fork version and an all-zero
// genesis_validators_root (DOMAIN_DEPOSIT is not fork-scoped).
func DepositMessageSigningRoot(msg *state.DepositMessage) ([32]byte, error) {
	cfg := params.BeaconConfig()
	domain, err := signing.ComputeDomain(cfg.DomainDeposit, cfg.GenesisForkVersion, [32]byte{})
	if err != nil {
		return [32]byte{}, err
	}
	return signing.ComputeSigningRoot(msg, domain)
}

// ProcessDeposit verifies d's Merkle inclusion proof against
// eth1_data.deposit_root at depth DEPOSIT_CONTRACT_TREE_DEPTH+1, advances
// eth1_deposit_index, and applies the deposit.
func ProcessDeposit(st *state.BeaconState, d *state.Deposit) error {
	cfg := params.BeaconConfig()

	leaf, err := d.Data.HashTreeRoot()
	if err != nil {
		return err
	}
	ok := hash.IsValidMerkleBranch(leaf, d.Proof, cfg.DepositContractTreeDepth+1,
		st.Eth1DepositIndex, [32]byte(st.Eth1Data.DepositRoot))
	if !ok {
		return ErrInvalidDeposit
	}

	st.Eth1DepositIndex++
	return ApplyDeposit(st, d.Data)
}

// ApplyDeposit appends a new validator on a fresh pubkey with a valid
// DepositMessage signature, silently skips on an invalid signature (the
// one documented error-free failure mode in the whole core), and
// otherwise credits the existing validator's balance.
func ApplyDeposit(st *state.BeaconState, data *state.DepositData) error {
	for i, v := range st.Validators {
		if v.Pubkey == data.Pubkey {
			st.Balances[i] += data.Amount
			return nil
		}
	}

	root, err := DepositMessageSigningRoot(&state.DepositMessage{
		Pubkey:                data.Pubkey,
		WithdrawalCredentials: data.WithdrawalCredentials,
		Amount:                data.Amount,
	})
	if err != nil {
		return err
	}
	valid, err := bls.Verify(bls.PublicKey(data.Pubkey), root, bls.Signature(data.Signature))
	if err != nil || !valid {
		return nil
	}

	cfg := params.BeaconConfig()
	increment := cfg.EffectiveBalanceIncrement
	effectiveBalance := uint64(data.Amount) - uint64(data.Amount)%increment
	if effectiveBalance > cfg.MaxEffectiveBalance {
		effectiveBalance = cfg.MaxEffectiveBalance
	}
	farFuture := primitives.Epoch(cfg.FarFutureEpoch)

	st.Validators = append(st.Validators, &state.Validator{
		Pubkey:                     data.Pubkey,
		WithdrawalCredentials:      data.WithdrawalCredentials,
		EffectiveBalance:           state.Gwei(effectiveBalance),
		ActivationEligibilityEpoch: farFuture,
		ActivationEpoch:            farFuture,
		ExitEpoch:                  farFuture,
		WithdrawableEpoch:          farFuture,
	})
	st.Balances = append(st.Balances, data.Amount)
	st.PreviousEpochParticipation = append(st.PreviousEpochParticipation, 0)
	st.CurrentEpochParticipation = append(st.CurrentEpochParticipation, 0)
	st.InactivityScores = append(st.InactivityScores, 0)
	return nil
}
