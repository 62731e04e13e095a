// Package bls exposes BLS signature verification as a capability rather
// than an algorithm: the core never touches pairing arithmetic directly,
// only the Provider interface below. Two concrete backends are provided
// (blst and herumi) so either can be swapped in without touching a
// single call site elsewhere in the module.
package bls

import "github.com/pkg/errors"

// PublicKey is an opaque 48-byte compressed G1 point.
type PublicKey [48]byte

// Signature is an opaque 96-byte compressed G2 point.
type Signature [96]byte

// InfinitySignature is the identity element of G2, used only by
// EthFastAggregateVerify's empty-pubkey-set special case.
var InfinitySignature = Signature{0xc0}

// ErrVerificationFailed marks a syntactically valid signature that simply
// does not verify; distinguishing this from a malformed-input error lets
// callers apply the same error-kind handling uniformly at call sites.
var ErrVerificationFailed = errors.New("bls: signature verification failed")

// Provider is the capability set required of a BLS backend.
type Provider interface {
	// Verify reports whether sig is pk's signature over msg.
	Verify(pk PublicKey, msg [32]byte, sig Signature) (bool, error)
	// FastAggregateVerify reports whether sig is the aggregate signature of
	// every key in pks over the same msg.
	FastAggregateVerify(pks []PublicKey, msg [32]byte, sig Signature) (bool, error)
	// Aggregate combines pks into a single aggregate public key.
	Aggregate(pks []PublicKey) (PublicKey, error)
}

// active is the process-wide active backend; production wiring selects one
// of blst.Provider{} or herumi.Provider{} at startup, outside this core,
// and installs it with SetProvider.
var active Provider

// SetProvider installs the backend the rest of the core calls through.
func SetProvider(p Provider) { active = p }

// ActiveProvider returns the currently installed backend, or nil if none
// has been installed yet.
func ActiveProvider() Provider { return active }

// EthFastAggregateVerify implements the empty-pubkey-set special case:
// true iff pks is empty and sig equals the infinity signature; otherwise
// it delegates to the active Provider's FastAggregateVerify.
func EthFastAggregateVerify(pks []PublicKey, msg [32]byte, sig Signature) (bool, error) {
	if len(pks) == 0 {
		return sig == InfinitySignature, nil
	}
	if active == nil {
		return false, errors.New("bls: no provider installed")
	}
	return active.FastAggregateVerify(pks, msg, sig)
}

// Verify delegates to the active Provider.
func Verify(pk PublicKey, msg [32]byte, sig Signature) (bool, error) {
	if active == nil {
		return false, errors.New("bls: no provider installed")
	}
	return active.Verify(pk, msg, sig)
}

// Aggregate delegates to the active Provider.
func Aggregate(pks []PublicKey) (PublicKey, error) {
	if active == nil {
		return PublicKey{}, errors.New("bls: no provider installed")
	}
	return active.Aggregate(pks)
}
