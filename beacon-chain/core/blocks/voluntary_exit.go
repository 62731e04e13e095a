package blocks

import (
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/signing"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/validators"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

// ErrInvalidVoluntaryExit marks a precondition or signature failure.
var ErrInvalidVoluntaryExit = errors.New("blocks: invalid voluntary exit")

// ProcessVoluntaryExit validates se (the validator is active with no
// pending exit, past both its minimum eligibility epoch and the shard
// committee period, and the signature verifies under
// DOMAIN_VOLUNTARY_EXIT pinned to CAPELLA_FORK_VERSION) and initiates
// the validator's exit.
func ProcessVoluntaryExit(st *state.BeaconState, se *state.SignedVoluntaryExit) error {
	cfg := params.BeaconConfig()
	exit := se.Exit
	currentEpoch := st.CurrentEpoch()

	if int(exit.ValidatorIndex) >= len(st.Validators) {
		return errors.Wrap(ErrInvalidVoluntaryExit, "validator index out of range")
	}
	v := st.Validators[exit.ValidatorIndex]

	if !helpers.IsActiveValidator(v, currentEpoch) {
		return errors.Wrap(ErrInvalidVoluntaryExit, "validator is not active")
	}
	if v.ExitEpoch != primitives.Epoch(cfg.FarFutureEpoch) {
		return errors.Wrap(ErrInvalidVoluntaryExit, "validator already has a pending exit")
	}
	if currentEpoch < exit.Epoch {
		return errors.Wrap(ErrInvalidVoluntaryExit, "exit epoch is in the future")
	}
	if currentEpoch < v.ActivationEpoch+primitives.Epoch(cfg.ShardCommitteePeriod) {
		return errors.Wrap(ErrInvalidVoluntaryExit, "validator has not served the shard committee period")
	}

	domain, err := signing.ComputeDomain(cfg.DomainVoluntaryExit, cfg.CapellaForkVersion, st.GenesisValidatorsRoot)
	if err != nil {
		return err
	}
	valid, err := signing.VerifySigningRoot(bls.PublicKey(v.Pubkey), exit, domain, bls.Signature(se.Signature))
	if err != nil {
		return err
	}
	if !valid {
		return errors.Wrap(ErrInvalidVoluntaryExit, "signature verification failed")
	}

	validators.InitiateValidatorExit(st, exit.ValidatorIndex)
	return nil
}
