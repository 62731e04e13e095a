package blst

import "github.com/pkg/errors"

var (
	errInvalidPublicKey = errors.New("blst: could not uncompress public key")
	errInvalidSignature = errors.New("blst: could not uncompress signature")
	errEmptyAggregate   = errors.New("blst: cannot aggregate an empty key set")
)
