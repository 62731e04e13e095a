package blocks

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/signing"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/crypto/bls"
	"github.com/ethsentry/beacon-transition/crypto/hash"
)

// ErrInvalidBLSToExecutionChange marks a precondition or signature failure.
var ErrInvalidBLSToExecutionChange = errors.New("blocks: invalid BLS-to-execution change")

// ProcessBLSToExecutionChange rewrites a validator's withdrawal
// credentials from a BLS pubkey hash to an eth1 execution address, once
// the declared from-pubkey hashes to the currently stored credentials and
// the signature verifies under the fork-agnostic
// DOMAIN_BLS_TO_EXECUTION_CHANGE (scoped by genesis_validators_root, not
// a fork version).
func ProcessBLSToExecutionChange(st *state.BeaconState, sc *state.SignedBLSToExecutionChange) error {
	cfg := params.BeaconConfig()
	change := sc.Change

	if int(change.ValidatorIndex) >= len(st.Validators) {
		return errors.Wrap(ErrInvalidBLSToExecutionChange, "validator index out of range")
	}
	v := st.Validators[change.ValidatorIndex]

	if v.WithdrawalCredentials[0] != cfg.BLSWithdrawalPrefixByte {
		return errors.Wrap(ErrInvalidBLSToExecutionChange, "credentials are not BLS-prefixed")
	}
	pubkeyHash := hash.Hash(change.FromBLSPubkey[:])
	if [31]byte(v.WithdrawalCredentials[1:]) != [31]byte(pubkeyHash[1:]) {
		return errors.Wrap(ErrInvalidBLSToExecutionChange, "from_bls_pubkey does not match stored credentials")
	}

	domain, err := signing.ComputeDomain(cfg.DomainBLSToExecutionChange, cfg.GenesisForkVersion, st.GenesisValidatorsRoot)
	if err != nil {
		return err
	}
	valid, err := signing.VerifySigningRoot(bls.PublicKey(change.FromBLSPubkey), change, domain, bls.Signature(sc.Signature))
	if err != nil {
		return err
	}
	if !valid {
		return errors.Wrap(ErrInvalidBLSToExecutionChange, "signature verification failed")
	}

	var newCreds [32]byte
	newCreds[0] = cfg.ETH1AddressWithdrawalPrefixByte
	copy(newCreds[12:], change.ToExecutionAddress[:])
	v.WithdrawalCredentials = newCreds
	return nil
}
