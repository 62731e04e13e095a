package blocks

import (
	"golang.org/x/sync/errgroup"

	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/signing"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/validators"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
	"github.com/ethsentry/beacon-transition/crypto/bls"
)

// ErrInvalidAttesterSlashing marks a precondition or signature failure.
var ErrInvalidAttesterSlashing = errors.New("blocks: invalid attester slashing")

// IsSlashableAttestationData reports a double-vote (same target epoch,
// different data) or surround-vote between a1 and a2.
func IsSlashableAttestationData(a1, a2 *state.AttestationData) bool {
	doubleVote := a1.Target.Epoch == a2.Target.Epoch && *a1 != *a2
	surroundVote := a1.Source.Epoch < a2.Source.Epoch && a2.Target.Epoch < a1.Target.Epoch
	return doubleVote || surroundVote
}

// IsValidIndexedAttestation checks the index-set shape and the aggregate
// BLS signature of ia under DOMAIN_BEACON_ATTESTER at ia.Data.Target.Epoch.
func IsValidIndexedAttestation(st *state.BeaconState, ia *state.IndexedAttestation) (bool, error) {
	if len(ia.AttestingIndices) == 0 {
		return false, nil
	}
	if !helpers.IsSortedAndUnique(ia.AttestingIndices) {
		return false, nil
	}

	pks := make([]bls.PublicKey, len(ia.AttestingIndices))
	for i, idx := range ia.AttestingIndices {
		if int(idx) >= len(st.Validators) {
			return false, nil
		}
		pks[i] = bls.PublicKey(st.Validators[idx].Pubkey)
	}

	cfg := params.BeaconConfig()
	domain, err := signing.Domain(st.Fork, ia.Data.Target.Epoch, cfg.DomainBeaconAttester, st.GenesisValidatorsRoot)
	if err != nil {
		return false, err
	}
	return signing.VerifyAggregateSigningRoot(pks, ia.Data, domain, bls.Signature(ia.Signature))
}

// ProcessAttesterSlashing validates as's two indexed attestations
// concurrently, confirms they are mutually slashable, and slashes every
// index present in both attesting-index sets that is still slashable.
// At least one validator must be slashed.
func ProcessAttesterSlashing(st *state.BeaconState, as *state.AttesterSlashing) error {
	if !IsSlashableAttestationData(as.Attestation1.Data, as.Attestation2.Data) {
		return errors.Wrap(ErrInvalidAttesterSlashing, "attestations are not mutually slashable")
	}

	var g errgroup.Group
	valid := make([]bool, 2)
	attestations := []*state.IndexedAttestation{as.Attestation1, as.Attestation2}
	for i := range attestations {
		i := i
		g.Go(func() error {
			ok, err := IsValidIndexedAttestation(st, attestations[i])
			if err != nil {
				return err
			}
			valid[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if !valid[0] || !valid[1] {
		return errors.Wrap(ErrInvalidAttesterSlashing, "an indexed attestation is invalid")
	}

	intersection := intersectSortedIndices(as.Attestation1.AttestingIndices, as.Attestation2.AttestingIndices)

	proposer, err := helpers.BeaconProposerIndex(st)
	if err != nil {
		return err
	}

	currentEpoch := st.CurrentEpoch()
	slashedAny := false
	for _, idx := range intersection {
		if helpers.IsSlashableValidator(st.Validators[idx], currentEpoch) {
			validators.SlashValidator(st, idx, proposer, proposer)
			slashedAny = true
		}
	}
	if !slashedAny {
		return errors.Wrap(ErrInvalidAttesterSlashing, "no validator was slashable")
	}
	return nil
}

func intersectSortedIndices(a, b []primitives.ValidatorIndex) []primitives.ValidatorIndex {
	out := make([]primitives.ValidatorIndex, 0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
